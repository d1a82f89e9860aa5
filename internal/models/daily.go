package models

// Mood is one of six fixed emoji, or empty when not recorded.
type Mood string

const (
	MoodLoved   Mood = "😍"
	MoodHappy   Mood = "😊"
	MoodNeutral Mood = "😐"
	MoodWorried Mood = "😟"
	MoodCrying  Mood = "😭"
	MoodAngry   Mood = "😡"
)

// Moods lists the valid mood values in display order.
var Moods = []Mood{MoodLoved, MoodHappy, MoodNeutral, MoodWorried, MoodCrying, MoodAngry}

func (m Mood) Valid() bool {
	if m == "" {
		return true
	}
	for _, v := range Moods {
		if m == v {
			return true
		}
	}
	return false
}

// Meals holds the free-text description, optional image reference and
// optional estimated calories for each of the three fixed meals.
type Meals struct {
	Breakfast         string `json:"breakfast"`
	Lunch             string `json:"lunch"`
	Dinner            string `json:"dinner"`
	BreakfastImage    string `json:"breakfastImage,omitempty"`
	LunchImage        string `json:"lunchImage,omitempty"`
	DinnerImage       string `json:"dinnerImage,omitempty"`
	BreakfastCalories *int   `json:"breakfastCalories,omitempty"`
	LunchCalories     *int   `json:"lunchCalories,omitempty"`
	DinnerCalories    *int   `json:"dinnerCalories,omitempty"`
}

// MealsPatch is a partial update against a day's Meals. Nil fields are
// left untouched.
type MealsPatch struct {
	Breakfast         *string
	Lunch             *string
	Dinner            *string
	BreakfastImage    *string
	LunchImage        *string
	DinnerImage       *string
	BreakfastCalories *int
	LunchCalories     *int
	DinnerCalories    *int
}

// Apply merges the patch into m.
func (p MealsPatch) Apply(m *Meals) {
	if p.Breakfast != nil {
		m.Breakfast = *p.Breakfast
	}
	if p.Lunch != nil {
		m.Lunch = *p.Lunch
	}
	if p.Dinner != nil {
		m.Dinner = *p.Dinner
	}
	if p.BreakfastImage != nil {
		m.BreakfastImage = *p.BreakfastImage
	}
	if p.LunchImage != nil {
		m.LunchImage = *p.LunchImage
	}
	if p.DinnerImage != nil {
		m.DinnerImage = *p.DinnerImage
	}
	if p.BreakfastCalories != nil {
		m.BreakfastCalories = p.BreakfastCalories
	}
	if p.LunchCalories != nil {
		m.LunchCalories = p.LunchCalories
	}
	if p.DinnerCalories != nil {
		m.DinnerCalories = p.DinnerCalories
	}
}

// Task is one of the three fixed daily task slots.
type Task struct {
	ID   int    `json:"id"` // 1..3, fixed
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// Exercise is a logged workout for a day.
type Exercise struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	DurationMin    int    `json:"durationMinutes"`
	CaloriesBurned int    `json:"caloriesBurned"`
}

type DrinkType string

const (
	DrinkHot        DrinkType = "hot"
	DrinkCold       DrinkType = "cold"
	DrinkFemininity DrinkType = "femininity"
)

// DrinkLog is a logged drink for a day.
type DrinkLog struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      DrinkType `json:"type"`
	Icon      string    `json:"icon"`
	Timestamp string    `json:"timestamp"` // HH:MM format
}

// DailyEntry is the aggregate record of all logged activity for one
// calendar date.
type DailyEntry struct {
	Date         string     `json:"date"` // YYYY-MM-DD format
	Mood         Mood       `json:"mood"`
	WaterCount   int        `json:"waterCount"`
	ChiaWater    bool       `json:"chiaWater"`
	Meals        Meals      `json:"meals"`
	Tasks        []Task     `json:"tasks"`
	Exercises    []Exercise `json:"exercises"`
	Drinks       []DrinkLog `json:"drinks"`
	Notes        string     `json:"notes"`
	Journal      string     `json:"journal"`
	JournalImage string     `json:"journalImage,omitempty"`
	Weight       *float64   `json:"weight,omitempty"`
}

// NewDailyEntry returns the canonical empty entry for a date. Every
// persisted entry is reconciled against this shape at load time.
func NewDailyEntry(date string) DailyEntry {
	return DailyEntry{
		Date:      date,
		Tasks:     []Task{{ID: 1}, {ID: 2}, {ID: 3}},
		Exercises: []Exercise{},
		Drinks:    []DrinkLog{},
	}
}

// Task returns a pointer to the task slot with the given id, or nil.
func (e *DailyEntry) Task(id int) *Task {
	for i := range e.Tasks {
		if e.Tasks[i].ID == id {
			return &e.Tasks[i]
		}
	}
	return nil
}
