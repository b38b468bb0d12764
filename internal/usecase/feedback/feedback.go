package usecase_feedback

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PheeraponT/nightnice/core/internal/model"
	"github.com/google/uuid"
)

const quoteMaxRunes = 200

var (
	ErrInvalidMood        = errors.New("invalid mood code")
	ErrInvalidSubmission  = errors.New("invalid submission")
	ErrFailedToSave       = errors.New("failed to save feedback")
	ErrFailedToDropReview = errors.New("failed to remove review feedback")
)

//go:generate mockery --name=FeedbackRepository --output=./mocks/repository --filename=feedback_repository.go
type FeedbackRepository interface {
	// Upsert must enforce last-write-wins on the (venue, user) key and
	// preserve created_at on overwrite.
	Upsert(ctx context.Context, fb model.MoodFeedback) error
	DeleteByReviewID(ctx context.Context, reviewID uuid.UUID) error
}

type Usecase struct {
	feedbackRepository FeedbackRepository
}

func New(r FeedbackRepository) *Usecase {
	return &Usecase{feedbackRepository: r}
}

// Submit validates, normalizes and upserts one user's mood submission for one
// venue. Scores outside [1,10] are clamped rather than rejected; the mood code
// only has to be non-empty after normalization, unknown codes are kept as-is
// and folded into a fallback archetype at aggregation time.
func (u *Usecase) Submit(ctx context.Context, sub model.FeedbackSubmission) error {
	if sub.VenueID == uuid.Nil || sub.UserID == uuid.Nil {
		return fmt.Errorf("%w: missing venue or user id", ErrInvalidSubmission)
	}

	code := strings.ToLower(strings.TrimSpace(sub.MoodCode))
	if code == "" {
		return fmt.Errorf("%w: empty after normalization", ErrInvalidMood)
	}

	now := time.Now().UTC()
	fb := model.MoodFeedback{
		ID:             uuid.New(),
		VenueID:        sub.VenueID,
		UserID:         sub.UserID,
		MoodCode:       code,
		Scores:         sub.Scores.Clamped(),
		HighlightQuote: normalizeQuote(sub.HighlightQuote),
		ReviewID:       sub.ReviewID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := u.feedbackRepository.Upsert(ctx, fb); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToSave, err)
	}
	return nil
}

// RemoveForReview drops the mood submission linked to a deleted review.
// Called by the review collaborator; removing nothing is not an error.
func (u *Usecase) RemoveForReview(ctx context.Context, reviewID uuid.UUID) error {
	if reviewID == uuid.Nil {
		return fmt.Errorf("%w: missing review id", ErrInvalidSubmission)
	}
	if err := u.feedbackRepository.DeleteByReviewID(ctx, reviewID); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToDropReview, err)
	}
	return nil
}

func normalizeQuote(q string) string {
	q = strings.TrimSpace(q)
	if q == "" {
		return ""
	}
	if utf8.RuneCountInString(q) > quoteMaxRunes {
		q = string([]rune(q)[:quoteMaxRunes])
	}
	return q
}
