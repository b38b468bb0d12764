package usecase_venue

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PheeraponT/nightnice/core/internal/model"
	"github.com/google/uuid"
)

var (
	ErrVenueNotFound      = errors.New("venue not found")
	ErrInvalidVenue       = errors.New("invalid venue")
	ErrFailedToStoreVenue = errors.New("failed to store venue")
	ErrFailedToLoadVenues = errors.New("failed to load venues")
)

//go:generate mockery --name=VenueRepository --output=./mocks/repository --filename=venue_repository.go
type VenueRepository interface {
	Store(ctx context.Context, v model.Venue) error
	Load(ctx context.Context) ([]model.Venue, error)
	LoadByID(ctx context.Context, id uuid.UUID) (model.Venue, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type Usecase struct {
	venueRepository VenueRepository
}

func New(r VenueRepository) *Usecase {
	return &Usecase{venueRepository: r}
}

func (u *Usecase) Store(ctx context.Context, v model.Venue) error {
	if strings.TrimSpace(v.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidVenue)
	}
	if v.PriceTier != model.PriceTierUnknown &&
		(v.PriceTier < model.PriceTierMin || v.PriceTier > model.PriceTierMax) {
		return fmt.Errorf("%w: price tier out of range", ErrInvalidVenue)
	}

	if err := u.venueRepository.Store(ctx, v); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToStoreVenue, err)
	}
	return nil
}

func (u *Usecase) Load(ctx context.Context) ([]model.Venue, error) {
	venues, err := u.venueRepository.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadVenues, err)
	}
	return venues, nil
}

func (u *Usecase) LoadByID(ctx context.Context, id uuid.UUID) (model.Venue, error) {
	venue, err := u.venueRepository.LoadByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrVenueNotFound) {
			return model.Venue{}, err
		}
		return model.Venue{}, fmt.Errorf("%w: %w", ErrFailedToLoadVenues, err)
	}
	return venue, nil
}

func (u *Usecase) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if err := u.venueRepository.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, ErrVenueNotFound) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrFailedToStoreVenue, err)
	}
	return nil
}
