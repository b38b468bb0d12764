package http_auth

import (
	"errors"
	"log/slog"
	"net/http"

	http_common "github.com/PheeraponT/nightnice/core/internal/delivery/http/common"
	http_auth_middleware "github.com/PheeraponT/nightnice/core/internal/delivery/http/middleware/auth"
	service_token_auth "github.com/PheeraponT/nightnice/core/internal/service/auth/token"
	"github.com/gin-gonic/gin"
)

type Controller struct {
	service *service_token_auth.Service
	logger  *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(service *service_token_auth.Service, opts ...ControllerOption) *Controller {
	c := &Controller{
		service: service,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	auth.POST("/admin", c.authAdmin)
	auth.POST("/guest", c.authGuest)
	auth.DELETE("/guest", c.revokeGuest)
}

// AdminAuthRequestDTO
type AdminAuthRequestDTO struct {
	Code string `json:"code" binding:"required" example:"secret123"`
}

// GuestAuthResponseDTO
type GuestAuthResponseDTO struct {
	UserID string `json:"user_id" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// @Summary Admin authentication
// @Description Exchanges the admin secret for a management token returned in the X-Admin-Token header
// @Tags Auth operations
// @Accept json
// @Produce json
// @Param request body AdminAuthRequestDTO true "Admin secret"
// @Success 202
// @Header 202 {string} X-Admin-Token "Token for venue management endpoints"
// @Failure 400 {object} http_common.ErrorResponse "Invalid request format"
// @Failure 403 {object} http_common.ErrorResponse "Wrong code"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /auth/admin [post]
func (c *Controller) authAdmin(ctx *gin.Context) {
	var req AdminAuthRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request format", "error", err)
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "Invalid request format",
		})
		return
	}

	token, err := c.service.AuthAdmin(req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service_token_auth.ErrWrongCode):
			c.logger.Warn("wrong admin code")
			ctx.JSON(http.StatusForbidden, http_common.ErrorResponse{
				Message: "forbidden",
			})
		default:
			c.logger.Error("internal auth error", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
		}
		return
	}

	ctx.Header(http_auth_middleware.AdminTokenHeader, token)
	ctx.Status(http.StatusAccepted)
}

// @Summary Guest identity
// @Description Issues an anonymous visitor token in the X-User-Token header; the body carries the bound user id
// @Tags Auth operations
// @Produce json
// @Success 201 {object} GuestAuthResponseDTO "Guest identity created"
// @Header 201 {string} X-User-Token "Token for feedback submission"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /auth/guest [post]
func (c *Controller) authGuest(ctx *gin.Context) {
	token, userID, err := c.service.IssueGuest()
	if err != nil {
		c.logger.Error("failed to issue guest token", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.Header(http_auth_middleware.UserTokenHeader, token)
	ctx.JSON(http.StatusCreated, GuestAuthResponseDTO{UserID: userID.String()})
}

// @Summary Revoke guest identity
// @Description Invalidates the presented guest token
// @Tags Auth operations
// @Success 204
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /auth/guest [delete]
func (c *Controller) revokeGuest(ctx *gin.Context) {
	t := ctx.GetHeader(http_auth_middleware.UserTokenHeader)
	if t == "" {
		ctx.Status(http.StatusNoContent)
		return
	}

	if err := c.service.RevokeGuest(t); err != nil {
		c.logger.Error("failed to revoke guest token", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}
