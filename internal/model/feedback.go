package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	VibeScoreMin = 1
	VibeScoreMax = 10
)

func ClampVibeScore(v int) int {
	if v < VibeScoreMin {
		return VibeScoreMin
	}
	if v > VibeScoreMax {
		return VibeScoreMax
	}
	return v
}

// VibeScores holds one value per vibe dimension, each within
// [VibeScoreMin, VibeScoreMax] once clamped at ingestion.
type VibeScores struct {
	Energy       int
	Music        int
	Crowd        int
	Conversation int
	Creativity   int
	Service      int
}

func (s VibeScores) Get(id DimensionID) int {
	switch id {
	case DimensionEnergy:
		return s.Energy
	case DimensionMusic:
		return s.Music
	case DimensionCrowd:
		return s.Crowd
	case DimensionConversation:
		return s.Conversation
	case DimensionCreativity:
		return s.Creativity
	case DimensionService:
		return s.Service
	}
	return 0
}

func (s VibeScores) Clamped() VibeScores {
	return VibeScores{
		Energy:       ClampVibeScore(s.Energy),
		Music:        ClampVibeScore(s.Music),
		Crowd:        ClampVibeScore(s.Crowd),
		Conversation: ClampVibeScore(s.Conversation),
		Creativity:   ClampVibeScore(s.Creativity),
		Service:      ClampVibeScore(s.Service),
	}
}

// MoodFeedback is one user's live mood submission for one venue.
// At most one row exists per (VenueID, UserID); a resubmission overwrites
// the row in place and only UpdatedAt moves.
type MoodFeedback struct {
	ID       uuid.UUID
	VenueID  uuid.UUID
	UserID   uuid.UUID
	MoodCode string
	Scores   VibeScores

	// Empty string means no quote was left.
	HighlightQuote string

	// Set when the submission arrived inline with a review.
	ReviewID *uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FeedbackSubmission is the raw, not yet normalized input to ingestion.
type FeedbackSubmission struct {
	VenueID        uuid.UUID
	UserID         uuid.UUID
	MoodCode       string
	Scores         VibeScores
	HighlightQuote string
	ReviewID       *uuid.UUID
}
