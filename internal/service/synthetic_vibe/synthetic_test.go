package synthetic_vibe

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/PheeraponT/nightnice/core/internal/model"
	"github.com/PheeraponT/nightnice/core/internal/service/vibe_catalog"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenerator() *Generator {
	return New(vibe_catalog.New())
}

func validVenue() model.Venue {
	return model.Venue{
		ID:            uuid.MustParse("7f8d2c1e-4b5a-4e6f-8a9b-0c1d2e3f4a5b"),
		Name:          "Moonlight Terrace",
		Description:   "Rooftop bar with craft cocktails and a live dj on weekends",
		CategoryNames: []string{"Rooftop", "Cocktail Bar", "Lounge"},
		PriceTier:     3,
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	g := newGenerator()
	v := validVenue()

	first := g.Generate(v)
	second := g.Generate(v)

	assert.Equal(t, first, second)
}

func TestGenerateChangesWithPriceTier(t *testing.T) {
	g := newGenerator()

	a := validVenue()
	b := validVenue()
	b.PriceTier = 1

	assert.NotEqual(t, g.Generate(a).Moods, g.Generate(b).Moods)
}

func TestGenerateCoversAllMoodsAndDimensions(t *testing.T) {
	g := newGenerator()

	snap := g.Generate(validVenue())

	require.Len(t, snap.Moods, 6)
	seenMoods := make(map[model.MoodID]bool, 6)
	for _, m := range snap.Moods {
		assert.False(t, seenMoods[m.Mood], "duplicate mood %s", m.Mood)
		seenMoods[m.Mood] = true
		assert.GreaterOrEqual(t, m.Score, float64(moodScoreMin))
		assert.LessOrEqual(t, m.Score, float64(moodScoreMax))
		assert.NotEmpty(t, m.Reason)
	}

	require.Len(t, snap.Dimensions, 6)
	seenDims := make(map[model.DimensionID]bool, 6)
	for _, d := range snap.Dimensions {
		assert.False(t, seenDims[d.Dimension], "duplicate dimension %s", d.Dimension)
		seenDims[d.Dimension] = true
		assert.GreaterOrEqual(t, d.Score, float64(model.VibeScoreMin))
		assert.LessOrEqual(t, d.Score, float64(model.VibeScoreMax))
		assert.NotEmpty(t, d.Emphasis)
	}
}

func TestGenerateOrdersMoodsByScore(t *testing.T) {
	g := newGenerator()

	snap := g.Generate(validVenue())

	for i := 1; i < len(snap.Moods); i++ {
		assert.GreaterOrEqual(t, snap.Moods[i-1].Score, snap.Moods[i].Score)
	}
	assert.Equal(t, snap.Moods[0].Mood, snap.PrimaryMood)
	assert.Equal(t, snap.Moods[1].Mood, snap.SecondaryMood)
	assert.Equal(t, int(snap.Moods[0].Score), snap.PrimaryMatchScore)
}

func TestGenerateMatchesThaiKeywords(t *testing.T) {
	g := newGenerator()

	v := model.Venue{
		ID:          uuid.New(),
		Name:        "บาร์ลับ",
		Description: "เพลงแจ๊สเบาๆ นั่งชิลได้ทั้งคืน",
		PriceTier:   2,
	}
	snap := g.Generate(v)

	var chill model.MoodMatch
	for _, m := range snap.Moods {
		if m.Mood == model.MoodChill {
			chill = m
		}
	}
	require.Equal(t, model.MoodChill, chill.Mood)
	assert.Contains(t, chill.MatchedKeywords, "ชิล")
	assert.Contains(t, chill.MatchedKeywords, "แจ๊ส")
	assert.Contains(t, chill.Reason, chill.MatchedKeywords[0])
}

func TestGenerateBareVenue(t *testing.T) {
	g := newGenerator()
	catalog := vibe_catalog.New()

	snap := g.Generate(model.Venue{ID: uuid.New(), Name: "Unnamed", PriceTier: 1})

	taglines := make(map[model.MoodID]string, 6)
	for _, m := range catalog.Moods() {
		taglines[m.ID] = m.Tagline
	}
	for _, m := range snap.Moods {
		assert.Empty(t, m.MatchedKeywords)
		assert.Equal(t, taglines[m.Mood], m.Reason)
	}
	assert.Equal(t, "This venue keeps its story for those who walk in.", snap.Quote)
}

func TestGenerateSyntheticMeta(t *testing.T) {
	g := newGenerator()

	snap := g.Generate(validVenue())

	assert.Equal(t, model.SnapshotSourceSynthetic, snap.Meta.Source)
	assert.Zero(t, snap.Meta.TotalResponses)
	assert.Nil(t, snap.Meta.LastUpdated)
	assert.NotEmpty(t, snap.Summary)
}

func TestGenerateQuoteTruncation(t *testing.T) {
	g := newGenerator()

	v := validVenue()
	v.Description = strings.Repeat("ก", 150)
	snap := g.Generate(v)

	assert.Equal(t, quoteMaxRunes+1, utf8.RuneCountInString(snap.Quote))
	assert.True(t, strings.HasSuffix(snap.Quote, "…"))

	v.Description = strings.Repeat("a", quoteMaxRunes)
	assert.Equal(t, v.Description, g.Generate(v).Quote)
}

func TestGenerateNilIDFallsBackToName(t *testing.T) {
	g := newGenerator()

	v := validVenue()
	v.ID = uuid.Nil

	assert.Equal(t, g.Generate(v), g.Generate(v))
}
