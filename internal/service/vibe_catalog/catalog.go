package vibe_catalog

import (
	"strings"

	"github.com/PheeraponT/nightnice/core/internal/model"
)

// Catalog is the single authoritative source for the six vibe dimensions and
// six mood archetypes. Both the synthetic generator and the community
// aggregator receive the same instance, so ids, labels and adjustment tables
// never drift apart.
type Catalog struct{}

func New() *Catalog {
	return &Catalog{}
}

var dimensions = []model.VibeDimension{
	{
		ID:          model.DimensionEnergy,
		Label:       "Energy",
		Description: "How lively the room feels through the night",
		HighMessage: "The place keeps buzzing until closing time",
		LowMessage:  "A laid-back spot where nobody is in a hurry",
	},
	{
		ID:          model.DimensionMusic,
		Label:       "Music",
		Description: "How much the soundtrack defines the night",
		HighMessage: "Music is the heart of this place",
		LowMessage:  "Music stays in the background here",
	},
	{
		ID:          model.DimensionCrowd,
		Label:       "Crowd",
		Description: "How packed and social the floor gets",
		HighMessage: "Expect a full house on most nights",
		LowMessage:  "Usually enough space to claim your own corner",
	},
	{
		ID:          model.DimensionConversation,
		Label:       "Conversation",
		Description: "How easy it is to actually talk",
		HighMessage: "You can hold a real conversation here",
		LowMessage:  "Shouting distance only once the night ramps up",
	},
	{
		ID:          model.DimensionCreativity,
		Label:       "Creativity",
		Description: "How inventive the drinks, decor and program are",
		HighMessage: "The menu and the room keep surprising you",
		LowMessage:  "Sticks to the classics and does them well",
	},
	{
		ID:          model.DimensionService,
		Label:       "Service",
		Description: "How attentive the staff are",
		HighMessage: "Staff remember your order by the second round",
		LowMessage:  "Service is functional rather than warm",
	},
}

var moods = []model.MoodArchetype{
	{
		ID:          model.MoodChill,
		Title:       "Chill",
		Description: "Soft lights, easy music, no rush to be anywhere",
		Tagline:     "A place to sink into a chair and let the evening pass",
		Keywords:    []string{"chill", "ชิล", "jazz", "แจ๊ส", "acoustic", "อะคูสติก", "เบาๆ", "สบาย", "cozy", "นั่ง"},
		EnergyBias:  model.EnergyBiasLow,
	},
	{
		ID:          model.MoodSocial,
		Title:       "Social",
		Description: "Made for big tables and louder laughter",
		Tagline:     "Bring the whole group and let the tables merge",
		Keywords:    []string{"friends", "เพื่อน", "group", "แก๊ง", "hangout", "แฮงเอาท์", "สังสรรค์", "share", "โต๊ะใหญ่"},
		PriceBias:   model.PriceBiasValue,
	},
	{
		ID:          model.MoodRomantic,
		Title:       "Romantic",
		Description: "Dim corners, slow songs and a wine list worth reading",
		Tagline:     "The kind of place you save for a second date",
		Keywords:    []string{"romantic", "โรแมนติก", "date", "เดท", "wine", "ไวน์", "candle", "เทียน", "view", "วิว"},
		PriceBias:   model.PriceBiasPremium,
	},
	{
		ID:          model.MoodParty,
		Title:       "Party",
		Description: "Bass you can feel and a floor that never empties",
		Tagline:     "Come late, dance hard, lose track of time",
		Keywords:    []string{"party", "ปาร์ตี้", "dj", "ดีเจ", "dance", "แดนซ์", "edm", "club", "คลับ", "เต้น"},
		EnergyBias:  model.EnergyBiasHigh,
	},
	{
		ID:          model.MoodAdventurous,
		Title:       "Adventurous",
		Description: "Odd bottles, hidden doors and menus with no map",
		Tagline:     "For nights when the usual order feels too safe",
		Keywords:    []string{"craft", "คราฟท์", "cocktail", "ค็อกเทล", "secret", "ลับ", "signature", "ซิกเนเจอร์", "theme", "ธีม"},
		EnergyBias:  model.EnergyBiasHigh,
	},
	{
		ID:          model.MoodSolo,
		Title:       "Solo",
		Description: "A counter seat, a quiet pour and nobody asking questions",
		Tagline:     "Good company is optional here",
		Keywords:    []string{"bar", "บาร์", "counter", "เคาน์เตอร์", "whisky", "วิสกี้", "quiet", "เงียบ", "คนเดียว"},
		EnergyBias:  model.EnergyBiasLow,
	},
}

// Per-primary-mood dimension deltas applied by the synthetic generator.
// Moods without an entry for a dimension leave it untouched.
var dimensionAdjustments = map[model.MoodID]map[model.DimensionID]int{
	model.MoodChill: {
		model.DimensionEnergy:       -2,
		model.DimensionConversation: 2,
		model.DimensionService:      1,
	},
	model.MoodSocial: {
		model.DimensionCrowd:        2,
		model.DimensionConversation: 2,
		model.DimensionEnergy:       1,
	},
	model.MoodRomantic: {
		model.DimensionConversation: 2,
		model.DimensionService:      2,
		model.DimensionMusic:        1,
		model.DimensionCrowd:        -2,
	},
	model.MoodParty: {
		model.DimensionEnergy:       3,
		model.DimensionMusic:        2,
		model.DimensionCrowd:        2,
		model.DimensionConversation: -2,
	},
	model.MoodAdventurous: {
		model.DimensionCreativity: 3,
		model.DimensionEnergy:     2,
		model.DimensionCrowd:      1,
	},
	model.MoodSolo: {
		model.DimensionConversation: 3,
		model.DimensionCrowd:        -1,
		model.DimensionEnergy:       -1,
	},
}

// Dimensions returns the six axes in fixed catalog order.
func (c *Catalog) Dimensions() []model.VibeDimension {
	out := make([]model.VibeDimension, len(dimensions))
	copy(out, dimensions)
	return out
}

// Moods returns the six archetypes in fixed catalog order.
func (c *Catalog) Moods() []model.MoodArchetype {
	out := make([]model.MoodArchetype, len(moods))
	copy(out, moods)
	return out
}

// MoodByCode resolves a normalized mood code to its archetype.
func (c *Catalog) MoodByCode(code string) (model.MoodArchetype, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, m := range moods {
		if string(m.ID) == code {
			return m, true
		}
	}
	return model.MoodArchetype{}, false
}

// FallbackMood is where votes with unrecognized mood codes land for display.
func (c *Catalog) FallbackMood() model.MoodArchetype {
	m, _ := c.MoodByCode(string(model.MoodSocial))
	return m
}

// DimensionAdjustments returns the delta table for the given primary mood.
func (c *Catalog) DimensionAdjustments(id model.MoodID) map[model.DimensionID]int {
	out := make(map[model.DimensionID]int, len(dimensionAdjustments[id]))
	for k, v := range dimensionAdjustments[id] {
		out[k] = v
	}
	return out
}
