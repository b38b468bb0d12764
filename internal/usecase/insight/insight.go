package usecase_insight

import (
	"context"
	"errors"
	"fmt"

	"github.com/PheeraponT/nightnice/core/internal/model"
	usecase_venue "github.com/PheeraponT/nightnice/core/internal/usecase/venue"
	"github.com/google/uuid"
)

var (
	ErrVenueNotFound       = errors.New("venue not found")
	ErrFailedToGetSnapshot = errors.New("failed to get vibe snapshot")
)

//go:generate mockery --name=VenueRepository --output=./mocks/repository --filename=venue_repository.go
type VenueRepository interface {
	LoadByID(ctx context.Context, id uuid.UUID) (model.Venue, error)
}

//go:generate mockery --name=FeedbackRepository --output=./mocks/repository --filename=feedback_repository.go
type FeedbackRepository interface {
	LoadByVenue(ctx context.Context, venueID uuid.UUID) ([]model.MoodFeedback, error)
}

type Generator interface {
	Generate(v model.Venue) model.MoodSnapshot
}

type Aggregator interface {
	Aggregate(rows []model.MoodFeedback) model.MoodSnapshot
}

// Usecase is the single read entry point for vibe insights. It applies the
// precedence rule between community data and the synthetic fallback: a venue
// with at least one submission shows real data only, a venue with none shows
// the deterministic stand-in. The two are never blended.
type Usecase struct {
	venueRepository    VenueRepository
	feedbackRepository FeedbackRepository
	generator          Generator
	aggregator         Aggregator
}

func New(
	venues VenueRepository,
	feedback FeedbackRepository,
	generator Generator,
	aggregator Aggregator,
) *Usecase {
	return &Usecase{
		venueRepository:    venues,
		feedbackRepository: feedback,
		generator:          generator,
		aggregator:         aggregator,
	}
}

func (u *Usecase) GetSnapshot(ctx context.Context, venueID uuid.UUID) (model.MoodSnapshot, error) {
	venue, err := u.venueRepository.LoadByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, usecase_venue.ErrVenueNotFound) {
			return model.MoodSnapshot{}, fmt.Errorf("%w: %s", ErrVenueNotFound, venueID)
		}
		return model.MoodSnapshot{}, fmt.Errorf("%w: %w", ErrFailedToGetSnapshot, err)
	}

	rows, err := u.feedbackRepository.LoadByVenue(ctx, venueID)
	if err != nil {
		return model.MoodSnapshot{}, fmt.Errorf("%w: %w", ErrFailedToGetSnapshot, err)
	}

	if len(rows) == 0 {
		return u.generator.Generate(venue), nil
	}
	return u.aggregator.Aggregate(rows), nil
}
