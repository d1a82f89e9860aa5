// Package validation detects inconsistencies in persisted data: bad
// reminder times, duplicate names, orphaned logs and malformed date
// keys. Loading already repairs what it can; these checks surface what
// survives repair.
package validation

import (
	"fmt"
	"sort"
	"time"

	"github.com/daftar-app/daftar/internal/constants"
	"github.com/daftar-app/daftar/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictDuplicateHabitName  ConflictType = "duplicate_habit_name"
	ConflictInvalidReminderTime ConflictType = "invalid_reminder_time"
	ConflictInvalidDateKey      ConflictType = "invalid_date_key"
	ConflictDateMismatch        ConflictType = "date_mismatch"
	ConflictOrphanedLog         ConflictType = "orphaned_log"
	ConflictInvalidWeeklyGoal   ConflictType = "invalid_weekly_goal"
	ConflictInvalidPeriodData   ConflictType = "invalid_period_data"
)

// Conflict represents a detected inconsistency
type Conflict struct {
	Type        ConflictType
	Description string
	Date        string   // YYYY-MM-DD format (if applicable)
	Items       []string // Habit names or ids involved
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// StoreView is the slice of the domain store the validator reads.
type StoreView interface {
	Habits() []models.Habit
	ReligiousHabits() []models.ReligiousHabit
	DailyEntries() map[string]models.DailyEntry
	HabitLogs() map[string][]models.HabitLog
	ReligiousHabitLogs() map[string][]models.ReligiousHabitLog
	PeriodData() models.PeriodData
}

// Validator checks persisted collections for conflicts
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateAll runs every check against the store.
func (v *Validator) ValidateAll(s StoreView) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}
	result.Conflicts = append(result.Conflicts, v.ValidateHabits(s.Habits()).Conflicts...)
	result.Conflicts = append(result.Conflicts, v.ValidateEntries(s.DailyEntries()).Conflicts...)
	result.Conflicts = append(result.Conflicts, v.ValidateHabitLogs(s.HabitLogs(), s.Habits()).Conflicts...)
	result.Conflicts = append(result.Conflicts, v.ValidateReligiousLogs(s.ReligiousHabitLogs(), s.ReligiousHabits()).Conflicts...)
	result.Conflicts = append(result.Conflicts, v.ValidatePeriod(s.PeriodData()).Conflicts...)
	return result
}

// ValidateHabits checks the habit list for duplicate names, malformed
// reminder times and bad weekly goals.
func (v *Validator) ValidateHabits(habits []models.Habit) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	nameCount := make(map[string][]string)
	for _, habit := range habits {
		if habit.Name == "" {
			continue
		}
		nameCount[habit.Name] = append(nameCount[habit.Name], habit.ID)
	}

	// Map iteration order is random; sort names for a stable report.
	names := make([]string, 0, len(nameCount))
	for name := range nameCount {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ids := nameCount[name]
		if len(ids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateHabitName,
				Description: fmt.Sprintf("Duplicate habit name: %q (IDs: %v)", name, ids),
				Items:       ids,
			})
		}
	}

	for _, habit := range habits {
		if habit.ReminderTime != "" && !isValidTimeFormat(habit.ReminderTime) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidReminderTime,
				Description: fmt.Sprintf("Habit %q has invalid reminder time: %s", habit.Name, habit.ReminderTime),
				Items:       []string{habit.ID},
			})
		}

		if habit.Type == models.HabitWeekly && (habit.WeeklyGoal < 1 || habit.WeeklyGoal > 7) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidWeeklyGoal,
				Description: fmt.Sprintf("Habit %q has weekly goal %d outside 1-7", habit.Name, habit.WeeklyGoal),
				Items:       []string{habit.ID},
			})
		}
	}

	return result
}

// ValidateEntries checks that daily entry map keys are dates and agree
// with the entry's own date field.
func (v *Validator) ValidateEntries(entries map[string]models.DailyEntry) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	for _, key := range sortedKeys(entries) {
		if !isValidDate(key) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDateKey,
				Description: fmt.Sprintf("Daily entry stored under invalid date key: %q", key),
				Date:        key,
			})
			continue
		}
		if entry := entries[key]; entry.Date != key {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDateMismatch,
				Description: fmt.Sprintf("Daily entry under key %s carries date %q", key, entry.Date),
				Date:        key,
			})
		}
	}

	return result
}

// ValidateHabitLogs checks habit log date keys and flags logs pointing
// at habits that no longer exist.
func (v *Validator) ValidateHabitLogs(logs map[string][]models.HabitLog, habits []models.Habit) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	known := make(map[string]bool, len(habits))
	for _, habit := range habits {
		known[habit.ID] = true
	}

	for _, date := range sortedKeys(logs) {
		if !isValidDate(date) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDateKey,
				Description: fmt.Sprintf("Habit logs stored under invalid date key: %q", date),
				Date:        date,
			})
			continue
		}
		for _, log := range logs[date] {
			if !known[log.HabitID] {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictOrphanedLog,
					Description: fmt.Sprintf("%s: habit log references missing habit ID: %s", date, log.HabitID),
					Date:        date,
					Items:       []string{log.HabitID},
				})
			}
		}
	}

	return result
}

// ValidateReligiousLogs is ValidateHabitLogs for the religious side.
func (v *Validator) ValidateReligiousLogs(logs map[string][]models.ReligiousHabitLog, habits []models.ReligiousHabit) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	known := make(map[string]bool, len(habits))
	for _, habit := range habits {
		known[habit.ID] = true
	}

	for _, date := range sortedKeys(logs) {
		if !isValidDate(date) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDateKey,
				Description: fmt.Sprintf("Religious habit logs stored under invalid date key: %q", date),
				Date:        date,
			})
			continue
		}
		for _, log := range logs[date] {
			if !known[log.HabitID] {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictOrphanedLog,
					Description: fmt.Sprintf("%s: religious log references missing habit ID: %s", date, log.HabitID),
					Date:        date,
					Items:       []string{log.HabitID},
				})
			}
		}
	}

	return result
}

// ValidatePeriod checks cycle tracking settings for sane values.
func (v *Validator) ValidatePeriod(period models.PeriodData) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	if period.LastPeriodStart != "" && !isValidDate(period.LastPeriodStart) {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidPeriodData,
			Description: fmt.Sprintf("Invalid last period start date: %q", period.LastPeriodStart),
		})
	}
	if period.CycleLength < 20 || period.CycleLength > 45 {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidPeriodData,
			Description: fmt.Sprintf("Cycle length %d outside 20-45 days", period.CycleLength),
		})
	}
	if period.PeriodLength < 1 || period.PeriodLength > 10 {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidPeriodData,
			Description: fmt.Sprintf("Period length %d outside 1-10 days", period.PeriodLength),
		})
	}

	return result
}

func isValidTimeFormat(timeStr string) bool {
	_, err := time.Parse(constants.TimeFormat, timeStr)
	return err == nil
}

func isValidDate(dateStr string) bool {
	_, err := time.Parse(constants.DateFormat, dateStr)
	return err == nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
