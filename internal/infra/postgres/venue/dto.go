package infra_postgres_venue

import (
	"github.com/PheeraponT/nightnice/core/internal/model"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type VenueDB struct {
	ID          uuid.UUID      `db:"id"`
	Name        string         `db:"name"`
	Description string         `db:"description"`
	Categories  pq.StringArray `db:"categories"`
	PriceTier   int            `db:"price_tier"`
}

func FromDomain(v model.Venue) VenueDB {
	return VenueDB{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Categories:  pq.StringArray(v.CategoryNames),
		PriceTier:   v.PriceTier,
	}
}

func (v VenueDB) ToDomain() model.Venue {
	return model.Venue{
		ID:            v.ID,
		Name:          v.Name,
		Description:   v.Description,
		CategoryNames: []string(v.Categories),
		PriceTier:     v.PriceTier,
	}
}
