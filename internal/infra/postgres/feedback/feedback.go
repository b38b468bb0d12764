package infra_postgres_feedback

import (
	"context"
	"fmt"

	"github.com/PheeraponT/nightnice/core/internal/model"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

// Upsert writes one submission keyed by (venue_id, user_id). The conflict
// clause is what resolves concurrent submissions by the same user: one writer
// wins entirely, no duplicate rows, and created_at survives the overwrite.
func (d *Driver) Upsert(ctx context.Context, fb model.MoodFeedback) error {
	feedbackDB := FromDomain(fb)

	query := `
		INSERT INTO mood_feedback (
			id, venue_id, user_id, mood_code,
			energy_score, music_score, crowd_score,
			conversation_score, creativity_score, service_score,
			highlight_quote, review_id, created_at, updated_at
		)
		VALUES (
			:id, :venue_id, :user_id, :mood_code,
			:energy_score, :music_score, :crowd_score,
			:conversation_score, :creativity_score, :service_score,
			:highlight_quote, :review_id, :created_at, :updated_at
		)
		ON CONFLICT (venue_id, user_id) DO UPDATE SET
			mood_code = EXCLUDED.mood_code,
			energy_score = EXCLUDED.energy_score,
			music_score = EXCLUDED.music_score,
			crowd_score = EXCLUDED.crowd_score,
			conversation_score = EXCLUDED.conversation_score,
			creativity_score = EXCLUDED.creativity_score,
			service_score = EXCLUDED.service_score,
			highlight_quote = EXCLUDED.highlight_quote,
			review_id = EXCLUDED.review_id,
			updated_at = EXCLUDED.updated_at
	`

	_, err := d.db.NamedExecContext(ctx, query, feedbackDB)
	if err != nil {
		return fmt.Errorf("failed to upsert mood feedback: %w", err)
	}

	return nil
}

func (d *Driver) LoadByVenue(ctx context.Context, venueID uuid.UUID) ([]model.MoodFeedback, error) {
	query := `
		SELECT id, venue_id, user_id, mood_code,
			energy_score, music_score, crowd_score,
			conversation_score, creativity_score, service_score,
			highlight_quote, review_id, created_at, updated_at
		FROM mood_feedback
		WHERE venue_id = $1
		ORDER BY updated_at, created_at
	`

	var rowsDB []FeedbackDB
	err := d.db.SelectContext(ctx, &rowsDB, query, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to query mood feedback: %w", err)
	}

	rows := make([]model.MoodFeedback, len(rowsDB))
	for i, rowDB := range rowsDB {
		rows[i] = rowDB.ToDomain()
	}

	return rows, nil
}

// DeleteByReviewID removes the submission linked to a review. Deleting a
// review that never carried a mood submission is a no-op.
func (d *Driver) DeleteByReviewID(ctx context.Context, reviewID uuid.UUID) error {
	query := `DELETE FROM mood_feedback WHERE review_id = $1`

	_, err := d.db.ExecContext(ctx, query, reviewID)
	if err != nil {
		return fmt.Errorf("failed to delete mood feedback by review: %w", err)
	}

	return nil
}
