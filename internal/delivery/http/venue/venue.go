package http_venue

import (
	"errors"
	"log/slog"
	"net/http"

	http_common "github.com/PheeraponT/nightnice/core/internal/delivery/http/common"
	http_auth_middleware "github.com/PheeraponT/nightnice/core/internal/delivery/http/middleware/auth"
	"github.com/PheeraponT/nightnice/core/internal/model"
	usecase_venue "github.com/PheeraponT/nightnice/core/internal/usecase/venue"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateVenueRequestDTO
type CreateVenueRequestDTO struct {
	Name        string   `json:"name" binding:"required" example:"Moonshine Bar"`
	Description string   `json:"description" example:"เพลงแจ๊สเบาๆ นั่งชิลได้ทั้งคืน"`
	Categories  []string `json:"categories" example:"bar,jazz bar"`
	PriceTier   int      `json:"price_tier" example:"2"`
}

// UpdateVenueRequestDTO
type UpdateVenueRequestDTO struct {
	Name        string   `json:"name" binding:"required" example:"Moonshine Bar"`
	Description string   `json:"description" example:"Updated description"`
	Categories  []string `json:"categories" example:"bar,cocktail bar"`
	PriceTier   int      `json:"price_tier" example:"3"`
}

// VenueResponseDTO
type VenueResponseDTO struct {
	ID          uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name        string    `json:"name" example:"Moonshine Bar"`
	Description string    `json:"description" example:"เพลงแจ๊สเบาๆ นั่งชิลได้ทั้งคืน"`
	Categories  []string  `json:"categories" example:"bar,jazz bar"`
	PriceTier   int       `json:"price_tier" example:"2"`
}

// VenuesListResponseDTO
type VenuesListResponseDTO struct {
	Venues []VenueResponseDTO `json:"venues"`
	Total  int                `json:"total"`
}

func (r *CreateVenueRequestDTO) ConvertToVenue() model.Venue {
	return model.Venue{
		ID:            uuid.New(),
		Name:          r.Name,
		Description:   r.Description,
		CategoryNames: r.Categories,
		PriceTier:     r.PriceTier,
	}
}

func (r *UpdateVenueRequestDTO) ConvertToVenue(id uuid.UUID) model.Venue {
	return model.Venue{
		ID:            id,
		Name:          r.Name,
		Description:   r.Description,
		CategoryNames: r.Categories,
		PriceTier:     r.PriceTier,
	}
}

func ConvertFromVenue(v model.Venue) VenueResponseDTO {
	return VenueResponseDTO{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Categories:  v.CategoryNames,
		PriceTier:   v.PriceTier,
	}
}

type Controller struct {
	uc         *usecase_venue.Usecase
	middleware *http_auth_middleware.Middleware
	logger     *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_venue.Usecase,
	middleware *http_auth_middleware.Middleware,
	opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:         uc,
		middleware: middleware,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	venues := router.Group("/venues")
	venues.GET("", c.getVenues)
	venues.GET("/:venue_id", c.getVenue)

	admin := venues.Group("", c.middleware.AdminRequired())
	admin.POST("", c.createVenue)
	admin.PUT("/:venue_id", c.updateVenue)
	admin.DELETE("/:venue_id", c.deleteVenue)
}

// @Summary Create venue
// @Description Creates a new venue listing
// @Tags Venue operations
// @Accept json
// @Produce json
// @Param request body CreateVenueRequestDTO true "Venue data"
// @Success 201 {object} VenueResponseDTO "Venue created"
// @Failure 400 {object} http_common.ErrorResponse "Invalid request body"
// @Failure 401 {object} http_common.ErrorResponse "Missing or invalid admin token"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /venues [post]
func (c *Controller) createVenue(ctx *gin.Context) {
	var req CreateVenueRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request body", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "Invalid request body",
		})
		return
	}

	venue := req.ConvertToVenue()

	if err := c.uc.Store(ctx.Request.Context(), venue); err != nil {
		if errors.Is(err, usecase_venue.ErrInvalidVenue) {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: err.Error(),
			})
			return
		}
		c.logger.Error("failed to create venue",
			slog.String("error", err.Error()),
			slog.String("name", req.Name),
		)
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "Failed to create venue",
		})
		return
	}

	ctx.JSON(http.StatusCreated, ConvertFromVenue(venue))
}

// @Summary List venues
// @Description Returns all venue listings
// @Tags Venue operations
// @Produce json
// @Success 200 {object} VenuesListResponseDTO "Venue list"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /venues [get]
func (c *Controller) getVenues(ctx *gin.Context) {
	venues, err := c.uc.Load(ctx.Request.Context())
	if err != nil {
		c.logger.Error("failed to load venues", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "Failed to load venues",
		})
		return
	}

	out := make([]VenueResponseDTO, len(venues))
	for i, v := range venues {
		out[i] = ConvertFromVenue(v)
	}

	ctx.JSON(http.StatusOK, VenuesListResponseDTO{
		Venues: out,
		Total:  len(out),
	})
}

// @Summary Get venue
// @Description Returns one venue by id
// @Tags Venue operations
// @Produce json
// @Param venue_id path string true "Venue UUID"
// @Success 200 {object} VenueResponseDTO "Venue"
// @Failure 400 {object} http_common.ErrorResponse "Invalid venue UUID"
// @Failure 404 {object} http_common.ErrorResponse "Venue not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /venues/{venue_id} [get]
func (c *Controller) getVenue(ctx *gin.Context) {
	venueID, err := uuid.Parse(ctx.Param("venue_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "Invalid venue id",
		})
		return
	}

	venue, err := c.uc.LoadByID(ctx.Request.Context(), venueID)
	if err != nil {
		if errors.Is(err, usecase_venue.ErrVenueNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "Venue not found",
			})
			return
		}
		c.logger.Error("failed to load venue", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "Failed to load venue",
		})
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromVenue(venue))
}

// @Summary Update venue
// @Description Replaces a venue listing
// @Tags Venue operations
// @Accept json
// @Produce json
// @Param venue_id path string true "Venue UUID"
// @Param request body UpdateVenueRequestDTO true "Venue data"
// @Success 200 {object} VenueResponseDTO "Venue updated"
// @Failure 400 {object} http_common.ErrorResponse "Invalid request"
// @Failure 401 {object} http_common.ErrorResponse "Missing or invalid admin token"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /venues/{venue_id} [put]
func (c *Controller) updateVenue(ctx *gin.Context) {
	venueID, err := uuid.Parse(ctx.Param("venue_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "Invalid venue id",
		})
		return
	}

	var req UpdateVenueRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "Invalid request body",
		})
		return
	}

	venue := req.ConvertToVenue(venueID)

	if err := c.uc.Store(ctx.Request.Context(), venue); err != nil {
		if errors.Is(err, usecase_venue.ErrInvalidVenue) {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: err.Error(),
			})
			return
		}
		c.logger.Error("failed to update venue", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "Failed to update venue",
		})
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromVenue(venue))
}

// @Summary Delete venue
// @Description Removes a venue listing
// @Tags Venue operations
// @Produce json
// @Param venue_id path string true "Venue UUID"
// @Success 204 "Venue deleted"
// @Failure 400 {object} http_common.ErrorResponse "Invalid venue UUID"
// @Failure 401 {object} http_common.ErrorResponse "Missing or invalid admin token"
// @Failure 404 {object} http_common.ErrorResponse "Venue not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /venues/{venue_id} [delete]
func (c *Controller) deleteVenue(ctx *gin.Context) {
	venueID, err := uuid.Parse(ctx.Param("venue_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "Invalid venue id",
		})
		return
	}

	if err := c.uc.DeleteByID(ctx.Request.Context(), venueID); err != nil {
		if errors.Is(err, usecase_venue.ErrVenueNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "Venue not found",
			})
			return
		}
		c.logger.Error("failed to delete venue", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "Failed to delete venue",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}
