package http_auth_middleware

import (
	"errors"
	"log/slog"
	"net/http"

	http_common "github.com/PheeraponT/nightnice/core/internal/delivery/http/common"
	service_token_auth "github.com/PheeraponT/nightnice/core/internal/service/auth/token"
	"github.com/gin-gonic/gin"
)

const (
	AdminTokenHeader = "X-Admin-Token"
	UserTokenHeader  = "X-User-Token"

	// Gin context key holding the resolved guest user id.
	ContextUserID = "user_id"
)

type Middleware struct {
	auth   *service_token_auth.Service
	logger *slog.Logger
}

type MiddlewareOption func(*Middleware)

func WithLogger(logger *slog.Logger) MiddlewareOption {
	return func(m *Middleware) {
		m.logger = logger
	}
}

func New(auth *service_token_auth.Service, opts ...MiddlewareOption) *Middleware {
	m := &Middleware{
		auth:   auth,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AdminRequired gates venue-management endpoints behind an admin token.
func (m *Middleware) AdminRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		t := ctx.GetHeader(AdminTokenHeader)
		if t == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Message: "missing " + AdminTokenHeader + " header",
			})
			return
		}

		ok, err := m.auth.IsAdmin(t)
		if err != nil {
			m.logger.Error("admin token check failed", slog.String("error", err.Error()))
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
			return
		}
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Message: "invalid admin token",
			})
			return
		}

		ctx.Next()
	}
}

// UserRequired resolves a guest token into a user id and stores it in the
// request context for the handler.
func (m *Middleware) UserRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		t := ctx.GetHeader(UserTokenHeader)
		if t == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Message: "missing " + UserTokenHeader + " header",
			})
			return
		}

		userID, err := m.auth.ResolveGuest(t)
		if err != nil {
			switch {
			case errors.Is(err, service_token_auth.ErrUnknownToken):
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, http_common.ErrorResponse{
					Message: "unknown or expired token",
				})
			default:
				m.logger.Error("guest token check failed", slog.String("error", err.Error()))
				ctx.AbortWithStatusJSON(http.StatusInternalServerError, http_common.ErrorResponse{
					Message: "internal error",
				})
			}
			return
		}

		ctx.Set(ContextUserID, userID)
		ctx.Next()
	}
}
