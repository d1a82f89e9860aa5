package models

// AzkarCategory links a religious habit to a built-in azkar detail
// list. The category, not the habit id, drives navigation and content
// lookup so that catalog seeding and screens cannot desynchronize.
type AzkarCategory string

const (
	AzkarNone    AzkarCategory = ""
	AzkarMorning AzkarCategory = "morning"
	AzkarEvening AzkarCategory = "evening"
	AzkarSleep   AzkarCategory = "sleep"
)

// AzkarCategories lists the categories that carry built-in content.
var AzkarCategories = []AzkarCategory{AzkarMorning, AzkarEvening, AzkarSleep}

func (c AzkarCategory) Valid() bool {
	switch c {
	case AzkarNone, AzkarMorning, AzkarEvening, AzkarSleep:
		return true
	}
	return false
}

// ReligiousHabit is a devotional practice, optionally tracked by
// repetition count instead of a done flag.
type ReligiousHabit struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Icon       string        `json:"icon"`
	HasCounter bool          `json:"hasCounter,omitempty"`
	Azkar      AzkarCategory `json:"azkar,omitempty"`
}

// ReligiousHabitLog records the repetition count for a habit on a
// given day. Counts are never negative; a count of zero is not stored.
type ReligiousHabitLog struct {
	Date    string `json:"date"` // YYYY-MM-DD format
	HabitID string `json:"habitId"`
	Count   int    `json:"count"`
}

// ZikrItem is a single remembrance phrase with a target repetition
// count.
type ZikrItem struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
	Note  string `json:"note,omitempty"`
}
