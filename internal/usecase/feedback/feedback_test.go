package usecase_feedback

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/PheeraponT/nightnice/core/internal/model"
	mocks "github.com/PheeraponT/nightnice/core/internal/usecase/feedback/mocks/repository"
	"github.com/google/uuid"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UsecaseFeedbackUnitSuite struct {
	suite.Suite

	mockRepo *mocks.FeedbackRepository
	usecase  *Usecase
	ctx      context.Context
}

func validSubmission() model.FeedbackSubmission {
	return model.FeedbackSubmission{
		VenueID:  uuid.New(),
		UserID:   uuid.New(),
		MoodCode: "party",
		Scores: model.VibeScores{
			Energy: 8, Music: 7, Crowd: 6,
			Conversation: 4, Creativity: 5, Service: 6,
		},
		HighlightQuote: "best dj set in town",
	}
}

func (s *UsecaseFeedbackUnitSuite) BeforeEach(t provider.T) {
	s.mockRepo = mocks.NewFeedbackRepository(t)
	s.usecase = New(s.mockRepo)
	s.ctx = context.Background()
}

func (s *UsecaseFeedbackUnitSuite) capturedUpsert() *model.MoodFeedback {
	captured := &model.MoodFeedback{}
	s.mockRepo.On("Upsert", s.ctx, mock.AnythingOfType("model.MoodFeedback")).
		Run(func(args mock.Arguments) {
			*captured = args.Get(1).(model.MoodFeedback)
		}).
		Return(nil).Once()
	return captured
}

func (s *UsecaseFeedbackUnitSuite) TestSubmit(t provider.T) {
	t.Run("Should save normalized submission", func(t provider.T) {
		sub := validSubmission()
		captured := s.capturedUpsert()

		err := s.usecase.Submit(s.ctx, sub)

		assert.NoError(t, err)
		assert.Equal(t, sub.VenueID, captured.VenueID)
		assert.Equal(t, sub.UserID, captured.UserID)
		assert.Equal(t, "party", captured.MoodCode)
		assert.Equal(t, sub.Scores, captured.Scores)
		assert.NotEqual(t, uuid.Nil, captured.ID)
		assert.Equal(t, captured.CreatedAt, captured.UpdatedAt)
	})

	t.Run("Should lowercase and trim the mood code", func(t provider.T) {
		sub := validSubmission()
		sub.MoodCode = "  PARTY "
		captured := s.capturedUpsert()

		err := s.usecase.Submit(s.ctx, sub)

		assert.NoError(t, err)
		assert.Equal(t, "party", captured.MoodCode)
	})

	t.Run("Should keep unknown mood codes as-is", func(t provider.T) {
		sub := validSubmission()
		sub.MoodCode = "nostalgic"
		captured := s.capturedUpsert()

		err := s.usecase.Submit(s.ctx, sub)

		assert.NoError(t, err)
		assert.Equal(t, "nostalgic", captured.MoodCode)
	})

	t.Run("Should clamp out-of-range scores", func(t provider.T) {
		sub := validSubmission()
		sub.Scores.Energy = 15
		sub.Scores.Service = 0
		sub.Scores.Crowd = -3
		captured := s.capturedUpsert()

		err := s.usecase.Submit(s.ctx, sub)

		assert.NoError(t, err)
		assert.Equal(t, model.VibeScoreMax, captured.Scores.Energy)
		assert.Equal(t, model.VibeScoreMin, captured.Scores.Service)
		assert.Equal(t, model.VibeScoreMin, captured.Scores.Crowd)
	})

	t.Run("Should store blank quote as absent", func(t provider.T) {
		sub := validSubmission()
		sub.HighlightQuote = "   "
		captured := s.capturedUpsert()

		err := s.usecase.Submit(s.ctx, sub)

		assert.NoError(t, err)
		assert.Empty(t, captured.HighlightQuote)
	})

	t.Run("Should cap quote length", func(t provider.T) {
		sub := validSubmission()
		sub.HighlightQuote = strings.Repeat("ม", 300)
		captured := s.capturedUpsert()

		err := s.usecase.Submit(s.ctx, sub)

		assert.NoError(t, err)
		assert.Equal(t, quoteMaxRunes, utf8.RuneCountInString(captured.HighlightQuote))
	})

	t.Run("Should reject empty mood code without touching the repository", func(t provider.T) {
		sub := validSubmission()
		sub.MoodCode = "   "

		err := s.usecase.Submit(s.ctx, sub)

		assert.ErrorIs(t, err, ErrInvalidMood)
		s.mockRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("Should reject missing venue or user id", func(t provider.T) {
		sub := validSubmission()
		sub.VenueID = uuid.Nil

		err := s.usecase.Submit(s.ctx, sub)

		assert.ErrorIs(t, err, ErrInvalidSubmission)

		sub = validSubmission()
		sub.UserID = uuid.Nil

		err = s.usecase.Submit(s.ctx, sub)

		assert.ErrorIs(t, err, ErrInvalidSubmission)
	})

	t.Run("Should wrap repository failures", func(t provider.T) {
		sub := validSubmission()

		s.mockRepo.On("Upsert", s.ctx, mock.AnythingOfType("model.MoodFeedback")).
			Return(errors.New("connection refused")).Once()

		err := s.usecase.Submit(s.ctx, sub)

		assert.ErrorIs(t, err, ErrFailedToSave)
	})
}

func (s *UsecaseFeedbackUnitSuite) TestRemoveForReview(t provider.T) {
	t.Run("Should delete feedback linked to a review", func(t provider.T) {
		reviewID := uuid.New()

		s.mockRepo.On("DeleteByReviewID", s.ctx, reviewID).Return(nil).Once()

		err := s.usecase.RemoveForReview(s.ctx, reviewID)

		assert.NoError(t, err)
	})

	t.Run("Should reject nil review id", func(t provider.T) {
		err := s.usecase.RemoveForReview(s.ctx, uuid.Nil)

		assert.ErrorIs(t, err, ErrInvalidSubmission)
		s.mockRepo.AssertNotCalled(t, "DeleteByReviewID", mock.Anything, mock.Anything)
	})

	t.Run("Should wrap repository failures", func(t provider.T) {
		reviewID := uuid.New()

		s.mockRepo.On("DeleteByReviewID", s.ctx, reviewID).
			Return(errors.New("connection refused")).Once()

		err := s.usecase.RemoveForReview(s.ctx, reviewID)

		assert.ErrorIs(t, err, ErrFailedToDropReview)
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseFeedbackUnitSuite))
}
