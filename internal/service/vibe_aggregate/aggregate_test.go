package vibe_aggregate

import (
	"testing"
	"time"

	"github.com/PheeraponT/nightnice/core/internal/model"
	"github.com/PheeraponT/nightnice/core/internal/service/vibe_catalog"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAggregator() *Aggregator {
	return New(vibe_catalog.New())
}

func feedbackRow(mood string, energy int, updatedAt time.Time) model.MoodFeedback {
	return model.MoodFeedback{
		ID:       uuid.New(),
		VenueID:  uuid.New(),
		UserID:   uuid.New(),
		MoodCode: mood,
		Scores: model.VibeScores{
			Energy:       energy,
			Music:        5,
			Crowd:        5,
			Conversation: 5,
			Creativity:   5,
			Service:      5,
		},
		CreatedAt: updatedAt,
		UpdatedAt: updatedAt,
	}
}

func TestAggregatePercentages(t *testing.T) {
	a := newAggregator()
	at := time.Date(2026, 5, 10, 22, 0, 0, 0, time.UTC)

	rows := []model.MoodFeedback{
		feedbackRow("party", 8, at),
		feedbackRow("party", 6, at.Add(time.Minute)),
		feedbackRow("chill", 4, at.Add(2*time.Minute)),
	}
	snap := a.Aggregate(rows)

	require.Len(t, snap.Moods, 6)
	assert.Equal(t, model.MoodParty, snap.Moods[0].Mood)
	assert.Equal(t, 66.7, snap.Moods[0].Score)
	assert.Equal(t, 2, snap.Moods[0].Votes)
	assert.Equal(t, model.MoodChill, snap.Moods[1].Mood)
	assert.Equal(t, 33.3, snap.Moods[1].Score)

	// Moods nobody picked still show up at 0%, ordered by mood code.
	zeros := snap.Moods[2:]
	expected := []model.MoodID{
		model.MoodAdventurous,
		model.MoodRomantic,
		model.MoodSocial,
		model.MoodSolo,
	}
	for i, m := range zeros {
		assert.Equal(t, expected[i], m.Mood)
		assert.Zero(t, m.Score)
		assert.Zero(t, m.Votes)
	}

	assert.Equal(t, model.MoodParty, snap.PrimaryMood)
	assert.Equal(t, model.MoodChill, snap.SecondaryMood)
	assert.Equal(t, 67, snap.PrimaryMatchScore)
	assert.Equal(t, "2 of 3 visitors picked this mood", snap.Moods[0].Reason)
}

func TestAggregateDimensionMeans(t *testing.T) {
	a := newAggregator()
	at := time.Now().UTC()

	rows := []model.MoodFeedback{
		feedbackRow("party", 8, at),
		feedbackRow("party", 6, at),
		feedbackRow("chill", 4, at),
	}
	snap := a.Aggregate(rows)

	require.Len(t, snap.Dimensions, 6)
	assert.Equal(t, model.DimensionEnergy, snap.Dimensions[0].Dimension)
	assert.Equal(t, 6.0, snap.Dimensions[0].Score)
	for _, d := range snap.Dimensions[1:] {
		assert.Equal(t, 5.0, d.Score)
	}
}

func TestAggregateEmphasisThreshold(t *testing.T) {
	a := newAggregator()
	catalog := vibe_catalog.New()
	at := time.Now().UTC()

	rows := []model.MoodFeedback{
		feedbackRow("party", 9, at),
		feedbackRow("party", 7, at),
	}
	snap := a.Aggregate(rows)

	energy := snap.Dimensions[0]
	require.Equal(t, model.DimensionEnergy, energy.Dimension)
	assert.Equal(t, 8.0, energy.Score)
	assert.Equal(t, catalog.Dimensions()[0].HighMessage, energy.Emphasis)

	music := snap.Dimensions[1]
	assert.Equal(t, catalog.Dimensions()[1].LowMessage, music.Emphasis)
}

func TestAggregateUnknownMoodFallsBack(t *testing.T) {
	a := newAggregator()
	at := time.Now().UTC()

	rows := []model.MoodFeedback{
		feedbackRow("nostalgic", 5, at),
	}
	snap := a.Aggregate(rows)

	assert.Equal(t, model.MoodSocial, snap.PrimaryMood)
	assert.Equal(t, 100, snap.PrimaryMatchScore)
}

func TestAggregateSingleRowIsCommunityOnly(t *testing.T) {
	a := newAggregator()
	at := time.Now().UTC()

	snap := a.Aggregate([]model.MoodFeedback{feedbackRow("solo", 3, at)})

	assert.Equal(t, model.MoodSolo, snap.PrimaryMood)
	assert.Equal(t, 100.0, snap.Moods[0].Score)
	assert.Equal(t, model.SnapshotSourceCommunity, snap.Meta.Source)
	assert.Equal(t, 1, snap.Meta.TotalResponses)
}

func TestAggregateHighlightQuote(t *testing.T) {
	a := newAggregator()
	at := time.Date(2026, 5, 10, 22, 0, 0, 0, time.UTC)

	older := feedbackRow("party", 5, at)
	older.HighlightQuote = "old quote"
	newer := feedbackRow("party", 5, at.Add(time.Hour))
	newer.HighlightQuote = "new quote"
	blankLatest := feedbackRow("chill", 5, at.Add(2*time.Hour))

	snap := a.Aggregate([]model.MoodFeedback{older, newer, blankLatest})
	assert.Equal(t, "new quote", snap.Quote)

	snap = a.Aggregate([]model.MoodFeedback{blankLatest})
	assert.Equal(t, "No highlight quote from visitors yet.", snap.Quote)
}

func TestAggregateLastUpdated(t *testing.T) {
	a := newAggregator()
	at := time.Date(2026, 5, 10, 22, 0, 0, 0, time.UTC)

	rows := []model.MoodFeedback{
		feedbackRow("party", 5, at.Add(time.Hour)),
		feedbackRow("chill", 5, at),
	}
	snap := a.Aggregate(rows)

	require.NotNil(t, snap.Meta.LastUpdated)
	assert.Equal(t, at.Add(time.Hour), *snap.Meta.LastUpdated)
	assert.Equal(t, 2, snap.Meta.TotalResponses)
}
