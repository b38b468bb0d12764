package http_vibe

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	http_common "github.com/PheeraponT/nightnice/core/internal/delivery/http/common"
	http_auth_middleware "github.com/PheeraponT/nightnice/core/internal/delivery/http/middleware/auth"
	ws_venue "github.com/PheeraponT/nightnice/core/internal/delivery/ws/venue"
	"github.com/PheeraponT/nightnice/core/internal/model"
	usecase_feedback "github.com/PheeraponT/nightnice/core/internal/usecase/feedback"
	usecase_insight "github.com/PheeraponT/nightnice/core/internal/usecase/insight"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MoodMatchDTO is one archetype entry of a snapshot.
type MoodMatchDTO struct {
	Mood            string   `json:"mood" example:"chill"`
	Title           string   `json:"title" example:"Chill"`
	Score           float64  `json:"score" example:"66.7"`
	Votes           int      `json:"votes,omitempty" example:"2"`
	Reason          string   `json:"reason" example:"2 of 3 visitors picked this mood"`
	MatchedKeywords []string `json:"matched_keywords,omitempty" example:"ชิล"`
}

// DimensionScoreDTO is one vibe axis entry of a snapshot.
type DimensionScoreDTO struct {
	Dimension string  `json:"dimension" example:"energy"`
	Label     string  `json:"label" example:"Energy"`
	Score     float64 `json:"score" example:"6.0"`
	Emphasis  string  `json:"emphasis" example:"A laid-back spot where nobody is in a hurry"`
}

// SnapshotMetaDTO
type SnapshotMetaDTO struct {
	Source         string     `json:"source" example:"community" enums:"synthetic,community"`
	TotalResponses int        `json:"total_responses,omitempty" example:"3"`
	LastUpdated    *time.Time `json:"last_updated,omitempty"`
}

// SnapshotResponseDTO is the full vibe profile of a venue.
type SnapshotResponseDTO struct {
	PrimaryMood       string              `json:"primary_mood" example:"party"`
	SecondaryMood     string              `json:"secondary_mood" example:"chill"`
	PrimaryMatchScore int                 `json:"primary_match_score" example:"67"`
	Moods             []MoodMatchDTO      `json:"moods"`
	Dimensions        []DimensionScoreDTO `json:"dimensions"`
	Quote             string              `json:"quote" example:"เพลงแจ๊สเบาๆ นั่งชิลได้ทั้งคืน"`
	Summary           string              `json:"summary" example:"Visitors most often feel Party here (67% of 3 responses)."`
	Meta              SnapshotMetaDTO     `json:"meta"`
}

// VibeScoresDTO carries the six dimension scores of a submission. Pointers
// distinguish a missing field from a deliberate zero; zeros are clamped up
// to the score floor, absent fields are rejected.
type VibeScoresDTO struct {
	Energy       *int `json:"energy" binding:"required" example:"8"`
	Music        *int `json:"music" binding:"required" example:"7"`
	Crowd        *int `json:"crowd" binding:"required" example:"6"`
	Conversation *int `json:"conversation" binding:"required" example:"5"`
	Creativity   *int `json:"creativity" binding:"required" example:"7"`
	Service      *int `json:"service" binding:"required" example:"8"`
}

// SubmitFeedbackRequestDTO
type SubmitFeedbackRequestDTO struct {
	MoodCode       string        `json:"mood_code" binding:"required" example:"chill"`
	Scores         VibeScoresDTO `json:"scores" binding:"required"`
	HighlightQuote string        `json:"highlight_quote,omitempty" example:"บรรยากาศดีมาก"`
	ReviewID       *uuid.UUID    `json:"review_id,omitempty"`
}

func ConvertFromSnapshot(s model.MoodSnapshot) SnapshotResponseDTO {
	moods := make([]MoodMatchDTO, len(s.Moods))
	for i, m := range s.Moods {
		moods[i] = MoodMatchDTO{
			Mood:            string(m.Mood),
			Title:           m.Title,
			Score:           m.Score,
			Votes:           m.Votes,
			Reason:          m.Reason,
			MatchedKeywords: m.MatchedKeywords,
		}
	}

	dims := make([]DimensionScoreDTO, len(s.Dimensions))
	for i, d := range s.Dimensions {
		dims[i] = DimensionScoreDTO{
			Dimension: string(d.Dimension),
			Label:     d.Label,
			Score:     d.Score,
			Emphasis:  d.Emphasis,
		}
	}

	return SnapshotResponseDTO{
		PrimaryMood:       string(s.PrimaryMood),
		SecondaryMood:     string(s.SecondaryMood),
		PrimaryMatchScore: s.PrimaryMatchScore,
		Moods:             moods,
		Dimensions:        dims,
		Quote:             s.Quote,
		Summary:           s.Summary,
		Meta: SnapshotMetaDTO{
			Source:         string(s.Meta.Source),
			TotalResponses: s.Meta.TotalResponses,
			LastUpdated:    s.Meta.LastUpdated,
		},
	}
}

type Controller struct {
	insight    *usecase_insight.Usecase
	feedback   *usecase_feedback.Usecase
	hub        *ws_venue.Hub
	middleware *http_auth_middleware.Middleware
	logger     *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(insight *usecase_insight.Usecase,
	feedback *usecase_feedback.Usecase,
	hub *ws_venue.Hub,
	middleware *http_auth_middleware.Middleware,
	opts ...ControllerOption) *Controller {
	c := &Controller{
		insight:    insight,
		feedback:   feedback,
		hub:        hub,
		middleware: middleware,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	vibe := router.Group("/venues/:venue_id/vibe")
	vibe.GET("", c.getSnapshot)
	vibe.POST("/feedback", c.middleware.UserRequired(), c.submitFeedback)
}

// @Summary Venue vibe snapshot
// @Description Returns the venue's mood/vibe profile: community data when submissions exist, deterministic synthetic data otherwise
// @Tags Vibe operations
// @Produce json
// @Param venue_id path string true "Venue UUID"
// @Success 200 {object} SnapshotResponseDTO "Vibe snapshot"
// @Failure 400 {object} http_common.ErrorResponse "Invalid venue UUID"
// @Failure 404 {object} http_common.ErrorResponse "Venue not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /venues/{venue_id}/vibe [get]
func (c *Controller) getSnapshot(ctx *gin.Context) {
	venueID, err := uuid.Parse(ctx.Param("venue_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "Invalid venue id",
		})
		return
	}

	snapshot, err := c.insight.GetSnapshot(ctx.Request.Context(), venueID)
	if err != nil {
		if errors.Is(err, usecase_insight.ErrVenueNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "Venue not found",
			})
			return
		}
		c.logger.Error("failed to build vibe snapshot",
			slog.String("error", err.Error()),
			slog.String("venue_id", venueID.String()),
		)
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "Failed to build vibe snapshot",
		})
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromSnapshot(snapshot))
}

// @Summary Submit mood feedback
// @Description Upserts the caller's mood submission for the venue; resubmission replaces the prior one
// @Tags Vibe operations
// @Accept json
// @Produce json
// @Param venue_id path string true "Venue UUID"
// @Param request body SubmitFeedbackRequestDTO true "Mood submission"
// @Success 204 "Feedback stored"
// @Failure 400 {object} http_common.ErrorResponse "Invalid request"
// @Failure 401 {object} http_common.ErrorResponse "Missing or invalid user token"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /venues/{venue_id}/vibe/feedback [post]
func (c *Controller) submitFeedback(ctx *gin.Context) {
	venueID, err := uuid.Parse(ctx.Param("venue_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "Invalid venue id",
		})
		return
	}

	var req SubmitFeedbackRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request body", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "Invalid request body",
		})
		return
	}

	v, exists := ctx.Get(http_auth_middleware.ContextUserID)
	userID, ok := v.(uuid.UUID)
	if !exists || !ok {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
			Message: "Missing user identity",
		})
		return
	}

	sub := model.FeedbackSubmission{
		VenueID:  venueID,
		UserID:   userID,
		MoodCode: req.MoodCode,
		Scores: model.VibeScores{
			Energy:       *req.Scores.Energy,
			Music:        *req.Scores.Music,
			Crowd:        *req.Scores.Crowd,
			Conversation: *req.Scores.Conversation,
			Creativity:   *req.Scores.Creativity,
			Service:      *req.Scores.Service,
		},
		HighlightQuote: req.HighlightQuote,
		ReviewID:       req.ReviewID,
	}

	if err := c.feedback.Submit(ctx.Request.Context(), sub); err != nil {
		switch {
		case errors.Is(err, usecase_feedback.ErrInvalidMood),
			errors.Is(err, usecase_feedback.ErrInvalidSubmission):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: err.Error(),
			})
		default:
			c.logger.Error("failed to store feedback",
				slog.String("error", err.Error()),
				slog.String("venue_id", venueID.String()),
			)
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "Failed to store feedback",
			})
		}
		return
	}

	c.hub.NotifyVibeUpdated(venueID)

	ctx.Status(http.StatusNoContent)
}
