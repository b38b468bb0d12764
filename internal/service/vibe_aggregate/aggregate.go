package vibe_aggregate

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/PheeraponT/nightnice/core/internal/model"
	"github.com/PheeraponT/nightnice/core/internal/service/vibe_catalog"
)

// Aggregator folds a venue's raw mood submissions into the same snapshot
// shape the synthetic generator produces. Callers must not pass an empty
// row set; the selector guards that boundary.
type Aggregator struct {
	catalog *vibe_catalog.Catalog
}

func New(catalog *vibe_catalog.Catalog) *Aggregator {
	return &Aggregator{catalog: catalog}
}

func (a *Aggregator) Aggregate(rows []model.MoodFeedback) model.MoodSnapshot {
	total := len(rows)

	votes := make(map[model.MoodID]int, len(rows))
	for _, row := range rows {
		mood, ok := a.catalog.MoodByCode(row.MoodCode)
		if !ok {
			// Unrecognized codes slipped in at ingestion still count;
			// they surface under the fallback archetype.
			mood = a.catalog.FallbackMood()
		}
		votes[mood.ID]++
	}

	moods := a.catalog.Moods()
	entries := make([]model.MoodMatch, 0, len(moods))
	for _, mood := range moods {
		count := votes[mood.ID]
		reason := mood.Tagline
		if count > 0 {
			reason = fmt.Sprintf("%d of %d visitors picked this mood", count, total)
		}
		entries = append(entries, model.MoodMatch{
			Mood:   mood.ID,
			Title:  mood.Title,
			Score:  round1(100 * float64(count) / float64(total)),
			Votes:  count,
			Reason: reason,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Mood < entries[j].Mood
	})

	primary := entries[0]
	secondary := primary
	if len(entries) > 1 {
		secondary = entries[1]
	}

	lastUpdated := maxUpdatedAt(rows)
	matchScore := int(math.Round(100 * float64(primary.Votes) / float64(total)))

	return model.MoodSnapshot{
		PrimaryMood:       primary.Mood,
		SecondaryMood:     secondary.Mood,
		PrimaryMatchScore: matchScore,
		Moods:             entries,
		Dimensions:        a.dimensionScores(rows),
		Quote:             highlightQuote(rows),
		Summary: fmt.Sprintf("Visitors most often feel %s here (%d%% of %d responses).",
			primary.Title, matchScore, total),
		Meta: model.SnapshotMeta{
			Source:         model.SnapshotSourceCommunity,
			TotalResponses: total,
			LastUpdated:    &lastUpdated,
		},
	}
}

func (a *Aggregator) dimensionScores(rows []model.MoodFeedback) []model.DimensionScore {
	dims := a.catalog.Dimensions()
	out := make([]model.DimensionScore, 0, len(dims))
	for _, d := range dims {
		sum := 0
		for _, row := range rows {
			sum += row.Scores.Get(d.ID)
		}
		score := round1(float64(sum) / float64(len(rows)))

		emphasis := d.LowMessage
		if score >= 7 {
			emphasis = d.HighMessage
		}

		out = append(out, model.DimensionScore{
			Dimension: d.ID,
			Label:     d.Label,
			Score:     score,
			Emphasis:  emphasis,
		})
	}
	return out
}

// highlightQuote returns the most recently updated non-blank quote.
// Equal timestamps resolve to the later row, so the most recent write wins.
func highlightQuote(rows []model.MoodFeedback) string {
	var (
		quote string
		at    time.Time
	)
	for _, row := range rows {
		q := strings.TrimSpace(row.HighlightQuote)
		if q == "" {
			continue
		}
		if quote == "" || !row.UpdatedAt.Before(at) {
			quote = q
			at = row.UpdatedAt
		}
	}
	if quote == "" {
		return "No highlight quote from visitors yet."
	}
	return quote
}

func maxUpdatedAt(rows []model.MoodFeedback) time.Time {
	latest := rows[0].UpdatedAt
	for _, row := range rows[1:] {
		if row.UpdatedAt.After(latest) {
			latest = row.UpdatedAt
		}
	}
	return latest
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
