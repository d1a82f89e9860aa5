package models

import (
	"fmt"
	"time"

	"github.com/daftar-app/daftar/internal/constants"
)

type HabitType string

const (
	HabitDaily  HabitType = "daily"
	HabitWeekly HabitType = "weekly"
	HabitCustom HabitType = "custom"
)

// Habit represents a recurring practice to track
type Habit struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Icon         string    `json:"icon"`
	Goal         string    `json:"goal"`
	Type         HabitType `json:"type"`
	WeeklyGoal   int       `json:"weeklyGoal,omitempty"`   // e.g. 3 for "3 times a week"
	ReminderTime string    `json:"reminderTime,omitempty"` // HH:MM format
	AccentColor  string    `json:"accentColor"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (h *Habit) Validate() error {
	if h.Name == "" {
		return fmt.Errorf("habit name cannot be empty")
	}

	switch h.Type {
	case HabitDaily, HabitWeekly, HabitCustom:
	default:
		return fmt.Errorf("invalid habit type: %q", h.Type)
	}

	if h.Type == HabitWeekly && h.WeeklyGoal < 1 {
		return fmt.Errorf("weekly goal must be at least 1 for weekly habits")
	}

	if h.ReminderTime != "" {
		if _, err := time.Parse(constants.TimeFormat, h.ReminderTime); err != nil {
			return fmt.Errorf("invalid reminder time format (expected HH:MM): %w", err)
		}
	}

	return nil
}

// HabitLog records whether a habit was completed on a given day.
// At most one log exists per (date, habit) pair.
type HabitLog struct {
	Date    string `json:"date"` // YYYY-MM-DD format
	HabitID string `json:"habitId"`
	Done    bool   `json:"done"`
}
