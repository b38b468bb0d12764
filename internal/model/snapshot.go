package model

import "time"

type SnapshotSource string

const (
	SnapshotSourceSynthetic SnapshotSource = "synthetic"
	SnapshotSourceCommunity SnapshotSource = "community"
)

// MoodMatch is one archetype's entry in a snapshot, scored 0..100.
type MoodMatch struct {
	Mood  MoodID
	Title string
	Score float64

	// Votes is zero for synthetic snapshots.
	Votes           int
	Reason          string
	MatchedKeywords []string
}

// DimensionScore is one vibe axis entry in a snapshot, scored 1..10.
type DimensionScore struct {
	Dimension DimensionID
	Label     string
	Score     float64
	Emphasis  string
}

type SnapshotMeta struct {
	Source         SnapshotSource
	TotalResponses int
	LastUpdated    *time.Time
}

// MoodSnapshot is the full computed vibe profile of a venue. It is rebuilt on
// every read and never persisted; Moods and Dimensions each cover the whole
// six-entry catalog.
type MoodSnapshot struct {
	PrimaryMood   MoodID
	SecondaryMood MoodID

	// The primary mood's rounded match percentage.
	PrimaryMatchScore int

	// Ordered by score descending.
	Moods []MoodMatch

	// Catalog order.
	Dimensions []DimensionScore

	Quote   string
	Summary string
	Meta    SnapshotMeta
}
