package synthetic_vibe

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/PheeraponT/nightnice/core/internal/model"
	"github.com/PheeraponT/nightnice/core/internal/service/vibe_catalog"
	"github.com/google/uuid"
)

const (
	moodScoreMin  = 32
	moodScoreMax  = 98
	quoteMaxRunes = 110
)

var (
	energeticPattern = regexp.MustCompile(`dj|live|band|party|ดีเจ|วงดนตรี|ปาร์ตี้|แดนซ์|เต้น`)
	calmPattern      = regexp.MustCompile(`chill|jazz|acoustic|quiet|cozy|ชิล|แจ๊ส|เงียบ|สบาย|อะคูสติก`)
)

// Generator produces a full mood/vibe snapshot for a venue from its static
// attributes alone. The output is a pure function of the input: the same
// venue always yields byte-identical snapshots, with no entropy source
// anywhere in the path. This is what keeps a cold-start venue's profile
// stable across requests and deploys.
type Generator struct {
	catalog *vibe_catalog.Catalog
}

func New(catalog *vibe_catalog.Catalog) *Generator {
	return &Generator{catalog: catalog}
}

func (g *Generator) Generate(v model.Venue) model.MoodSnapshot {
	text := searchText(v)
	tokens := tokenize(text)
	seed := venueSeed(v)

	moods := g.catalog.Moods()
	entries := make([]model.MoodMatch, 0, len(moods))
	for i, mood := range moods {
		base := 48 + int((seed+int64(i)*17)%34)
		matched := matchedKeywords(text, tokens, mood.Keywords)

		score := base + 7*len(matched)
		score += priceBonus(mood, v.PriceTier)
		score += energyBonus(mood, text)
		score += categoryBonus(mood, len(v.CategoryNames))
		score = clampInt(score, moodScoreMin, moodScoreMax)

		reason := mood.Tagline
		if len(matched) > 0 {
			reason = fmt.Sprintf("Guests keep mentioning \"%s\" when they talk about this place", matched[0])
		}

		entries = append(entries, model.MoodMatch{
			Mood:            mood.ID,
			Title:           mood.Title,
			Score:           float64(score),
			Reason:          reason,
			MatchedKeywords: matched,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	primary := entries[0]
	secondary := primary
	if len(entries) > 1 {
		secondary = entries[1]
	}

	snapshot := model.MoodSnapshot{
		PrimaryMood:       primary.Mood,
		SecondaryMood:     secondary.Mood,
		PrimaryMatchScore: int(primary.Score),
		Moods:             entries,
		Dimensions:        g.dimensionScores(seed, primary.Mood),
		Quote:             venueQuote(v),
		Summary:           summary(primary, secondary),
		Meta: model.SnapshotMeta{
			Source: model.SnapshotSourceSynthetic,
		},
	}
	return snapshot
}

func (g *Generator) dimensionScores(seed int64, primary model.MoodID) []model.DimensionScore {
	adjust := g.catalog.DimensionAdjustments(primary)
	dims := g.catalog.Dimensions()

	out := make([]model.DimensionScore, 0, len(dims))
	for j, d := range dims {
		dimSeed := seed >> uint(j+1)
		score := 3 + int(dimSeed%7) + adjust[d.ID]
		score = clampInt(score, model.VibeScoreMin, model.VibeScoreMax)

		emphasis := d.LowMessage
		if score >= 7 {
			emphasis = d.HighMessage
		}

		out = append(out, model.DimensionScore{
			Dimension: d.ID,
			Label:     d.Label,
			Score:     float64(score),
			Emphasis:  emphasis,
		})
	}
	return out
}

// venueSeed hashes the venue's identity and price tier into a stable
// non-negative seed. FNV-1a keeps identical input mapping to identical
// output, which is the whole contract.
func venueSeed(v model.Venue) int64 {
	identity := v.ID.String()
	if v.ID == uuid.Nil {
		identity = v.Name
	}

	h := fnv.New32a()
	h.Write([]byte(fmt.Sprintf("%s-%d", identity, v.PriceTier)))
	return int64(h.Sum32())
}

func searchText(v model.Venue) string {
	parts := make([]string, 0, 1+len(v.CategoryNames))
	if v.Description != "" {
		parts = append(parts, v.Description)
	}
	parts = append(parts, v.CategoryNames...)
	return strings.ToLower(strings.Join(parts, " "))
}

func tokenize(text string) map[string]struct{} {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	tokens := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		tokens[f] = struct{}{}
	}
	return tokens
}

// matchedKeywords finds a mood's keywords in the venue text, both as whole
// tokens and as substrings. Substring matching is what makes Thai keywords
// work: Thai text carries no word boundaries to split on.
func matchedKeywords(text string, tokens map[string]struct{}, keywords []string) []string {
	var matched []string
	for _, kw := range keywords {
		if _, ok := tokens[kw]; ok {
			matched = append(matched, kw)
			continue
		}
		if strings.Contains(text, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}

func priceBonus(mood model.MoodArchetype, tier int) int {
	switch {
	case mood.PriceBias == model.PriceBiasPremium && tier >= 3:
		return 6
	case mood.PriceBias == model.PriceBiasValue && tier >= model.PriceTierMin && tier <= 2:
		return 4
	}
	return 0
}

func energyBonus(mood model.MoodArchetype, text string) int {
	switch {
	case mood.EnergyBias == model.EnergyBiasHigh && energeticPattern.MatchString(text):
		return 4
	case mood.EnergyBias == model.EnergyBiasLow && calmPattern.MatchString(text):
		return 4
	}
	return 0
}

func categoryBonus(mood model.MoodArchetype, categoryCount int) int {
	if categoryCount >= 3 && (mood.ID == model.MoodSocial || mood.ID == model.MoodAdventurous) {
		return 4
	}
	return 0
}

func venueQuote(v model.Venue) string {
	desc := strings.TrimSpace(v.Description)
	if desc == "" {
		return "This venue keeps its story for those who walk in."
	}

	runes := []rune(desc)
	if len(runes) <= quoteMaxRunes {
		return desc
	}
	return string(runes[:quoteMaxRunes]) + "…"
}

func summary(primary, secondary model.MoodMatch) string {
	qualifier := "interestingly"
	switch {
	case primary.Score >= 85:
		qualifier = "notably"
	case primary.Score >= 70:
		qualifier = "harmoniously"
	}
	return fmt.Sprintf("A place that %s leans %s with a %s undertone.",
		qualifier, primary.Title, secondary.Title)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
