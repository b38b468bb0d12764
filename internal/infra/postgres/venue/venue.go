package infra_postgres_venue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/PheeraponT/nightnice/core/internal/model"
	usecase_venue "github.com/PheeraponT/nightnice/core/internal/usecase/venue"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Store(ctx context.Context, v model.Venue) error {
	venueDB := FromDomain(v)

	query := `
		INSERT INTO venues (id, name, description, categories, price_tier)
		VALUES (:id, :name, :description, :categories, :price_tier)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			categories = EXCLUDED.categories,
			price_tier = EXCLUDED.price_tier
	`

	_, err := r.db.NamedExecContext(ctx, query, venueDB)
	if err != nil {
		return fmt.Errorf("failed to store venue: %w", err)
	}

	return nil
}

func (r *Repository) Load(ctx context.Context) ([]model.Venue, error) {
	query := `
		SELECT id, name, description, categories, price_tier
		FROM venues
		ORDER BY name
	`

	var venuesDB []VenueDB
	err := r.db.SelectContext(ctx, &venuesDB, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query venues: %w", err)
	}

	venues := make([]model.Venue, len(venuesDB))
	for i, venueDB := range venuesDB {
		venues[i] = venueDB.ToDomain()
	}

	return venues, nil
}

func (r *Repository) LoadByID(ctx context.Context, id uuid.UUID) (model.Venue, error) {
	query := `
		SELECT id, name, description, categories, price_tier
		FROM venues
		WHERE id = $1
	`

	var venueDB VenueDB
	err := r.db.GetContext(ctx, &venueDB, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Venue{}, usecase_venue.ErrVenueNotFound
		}
		return model.Venue{}, fmt.Errorf("failed to load venue by id: %w", err)
	}

	return venueDB.ToDomain(), nil
}

func (r *Repository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM venues WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete venue: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return usecase_venue.ErrVenueNotFound
	}

	return nil
}
