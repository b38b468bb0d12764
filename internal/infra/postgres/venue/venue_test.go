package infra_postgres_venue

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/PheeraponT/nightnice/core/internal/model"
	usecase_venue "github.com/PheeraponT/nightnice/core/internal/usecase/venue"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type VenueInfraUnitSuite struct {
	suite.Suite
}

type resources struct {
	db         *sqlx.DB
	mock       sqlmock.Sqlmock
	repository *Repository
	ctx        context.Context
}

func initResources(t provider.T) *resources {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repository := New(sqlxDB)

	return &resources{
		db:         sqlxDB,
		mock:       mock,
		repository: repository,
		ctx:        context.Background(),
	}
}

func validVenue() model.Venue {
	return model.Venue{
		ID:            uuid.New(),
		Name:          "Moonlight Terrace",
		Description:   "Rooftop bar with craft cocktails",
		CategoryNames: []string{"Rooftop", "Cocktail Bar"},
		PriceTier:     3,
	}
}

func venueColumns() []string {
	return []string{"id", "name", "description", "categories", "price_tier"}
}

func venueRow(rows *sqlmock.Rows, v model.Venue) {
	rows.AddRow(v.ID.String(), v.Name, v.Description,
		[]byte(`{Rooftop,"Cocktail Bar"}`), v.PriceTier)
}

func (s *VenueInfraUnitSuite) TestStore(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		setupMocks    func(r *resources)
		expectError   bool
		errorContains string
	}{
		{
			name: "Should store venue successfully",
			setupMocks: func(r *resources) {
				r.mock.ExpectExec("INSERT INTO venues").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expectError: false,
		},
		{
			name: "Should return error when insert fails",
			setupMocks: func(r *resources) {
				r.mock.ExpectExec("INSERT INTO venues").
					WillReturnError(errors.New("insert error"))
			},
			expectError:   true,
			errorContains: "insert error",
		},
	}

	for _, tc := range testCases {

		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			err := r.repository.Store(r.ctx, validVenue())

			if tc.expectError {
				assert.Error(t, err)
				assert.ErrorContains(t, err, tc.errorContains)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, r.mock.ExpectationsWereMet())
		})
	}
}

func (s *VenueInfraUnitSuite) TestLoadByID(t provider.T) {
	t.Parallel()

	t.Run("Should load venue by id", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		venue := validVenue()

		rows := sqlmock.NewRows(venueColumns())
		venueRow(rows, venue)
		r.mock.ExpectQuery("SELECT (.+) FROM venues").
			WithArgs(venue.ID).
			WillReturnRows(rows)

		result, err := r.repository.LoadByID(r.ctx, venue.ID)

		assert.NoError(t, err)
		assert.Equal(t, venue, result)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should return not found when no rows", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		id := uuid.New()

		r.mock.ExpectQuery("SELECT (.+) FROM venues").
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(venueColumns()))

		_, err := r.repository.LoadByID(r.ctx, id)

		assert.ErrorIs(t, err, usecase_venue.ErrVenueNotFound)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})
}

func (s *VenueInfraUnitSuite) TestLoad(t provider.T) {
	t.Parallel()

	t.Run("Should load venues ordered by name", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		rows := sqlmock.NewRows(venueColumns())
		venueRow(rows, validVenue())
		venueRow(rows, validVenue())
		r.mock.ExpectQuery("SELECT (.+) FROM venues").WillReturnRows(rows)

		result, err := r.repository.Load(r.ctx)

		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should return error when query fails", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		r.mock.ExpectQuery("SELECT (.+) FROM venues").
			WillReturnError(errors.New("query error"))

		_, err := r.repository.Load(r.ctx)

		assert.Error(t, err)
		assert.ErrorContains(t, err, "query error")
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})
}

func (s *VenueInfraUnitSuite) TestDeleteByID(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		setupMocks  func(r *resources, id uuid.UUID)
		expectedErr error
	}{
		{
			name: "Should delete venue successfully",
			setupMocks: func(r *resources, id uuid.UUID) {
				r.mock.ExpectExec("DELETE FROM venues").
					WithArgs(id).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "Should return not found when nothing deleted",
			setupMocks: func(r *resources, id uuid.UUID) {
				r.mock.ExpectExec("DELETE FROM venues").
					WithArgs(id).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedErr: usecase_venue.ErrVenueNotFound,
		},
	}

	for _, tc := range testCases {

		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			id := uuid.New()
			tc.setupMocks(r, id)

			err := r.repository.DeleteByID(r.ctx, id)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, r.mock.ExpectationsWereMet())
		})
	}
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(VenueInfraUnitSuite))
}
