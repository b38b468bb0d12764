package infra_postgres_feedback

import (
	"database/sql"
	"time"

	"github.com/PheeraponT/nightnice/core/internal/model"
	"github.com/google/uuid"
)

type FeedbackDB struct {
	ID                uuid.UUID      `db:"id"`
	VenueID           uuid.UUID      `db:"venue_id"`
	UserID            uuid.UUID      `db:"user_id"`
	MoodCode          string         `db:"mood_code"`
	EnergyScore       int            `db:"energy_score"`
	MusicScore        int            `db:"music_score"`
	CrowdScore        int            `db:"crowd_score"`
	ConversationScore int            `db:"conversation_score"`
	CreativityScore   int            `db:"creativity_score"`
	ServiceScore      int            `db:"service_score"`
	HighlightQuote    sql.NullString `db:"highlight_quote"`
	ReviewID          uuid.NullUUID  `db:"review_id"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

func FromDomain(fb model.MoodFeedback) FeedbackDB {
	dto := FeedbackDB{
		ID:                fb.ID,
		VenueID:           fb.VenueID,
		UserID:            fb.UserID,
		MoodCode:          fb.MoodCode,
		EnergyScore:       fb.Scores.Energy,
		MusicScore:        fb.Scores.Music,
		CrowdScore:        fb.Scores.Crowd,
		ConversationScore: fb.Scores.Conversation,
		CreativityScore:   fb.Scores.Creativity,
		ServiceScore:      fb.Scores.Service,
		CreatedAt:         fb.CreatedAt,
		UpdatedAt:         fb.UpdatedAt,
	}
	if fb.HighlightQuote != "" {
		dto.HighlightQuote = sql.NullString{String: fb.HighlightQuote, Valid: true}
	}
	if fb.ReviewID != nil {
		dto.ReviewID = uuid.NullUUID{UUID: *fb.ReviewID, Valid: true}
	}
	return dto
}

func (f FeedbackDB) ToDomain() model.MoodFeedback {
	fb := model.MoodFeedback{
		ID:       f.ID,
		VenueID:  f.VenueID,
		UserID:   f.UserID,
		MoodCode: f.MoodCode,
		Scores: model.VibeScores{
			Energy:       f.EnergyScore,
			Music:        f.MusicScore,
			Crowd:        f.CrowdScore,
			Conversation: f.ConversationScore,
			Creativity:   f.CreativityScore,
			Service:      f.ServiceScore,
		},
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
	if f.HighlightQuote.Valid {
		fb.HighlightQuote = f.HighlightQuote.String
	}
	if f.ReviewID.Valid {
		id := f.ReviewID.UUID
		fb.ReviewID = &id
	}
	return fb
}
