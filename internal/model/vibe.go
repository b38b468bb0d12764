package model

type DimensionID string

const (
	DimensionEnergy       DimensionID = "energy"
	DimensionMusic        DimensionID = "music"
	DimensionCrowd        DimensionID = "crowd"
	DimensionConversation DimensionID = "conversation"
	DimensionCreativity   DimensionID = "creativity"
	DimensionService      DimensionID = "service"
)

// VibeDimension is one of the six fixed scoring axes. The set is defined once
// in the catalog service and never changes at runtime.
type VibeDimension struct {
	ID          DimensionID
	Label       string
	Description string
	HighMessage string
	LowMessage  string
}

type MoodID string

const (
	MoodChill       MoodID = "chill"
	MoodSocial      MoodID = "social"
	MoodRomantic    MoodID = "romantic"
	MoodParty       MoodID = "party"
	MoodAdventurous MoodID = "adventurous"
	MoodSolo        MoodID = "solo"
)

type PriceBias string

const (
	PriceBiasNone    PriceBias = ""
	PriceBiasValue   PriceBias = "value"
	PriceBiasPremium PriceBias = "premium"
)

type EnergyBias string

const (
	EnergyBiasNone EnergyBias = ""
	EnergyBiasLow  EnergyBias = "low"
	EnergyBiasHigh EnergyBias = "high"
)

// MoodArchetype is one of the six fixed moods a venue can match.
// Keywords are mixed Thai/English and matched against venue text.
type MoodArchetype struct {
	ID          MoodID
	Title       string
	Description string
	Tagline     string
	Keywords    []string
	PriceBias   PriceBias
	EnergyBias  EnergyBias
}
