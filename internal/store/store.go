// Package store is the single source of truth for all domain
// collections. It loads and repairs persisted data, serves today-scoped
// reads and mutations, and writes every touched collection back to
// storage in full.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/daftar-app/daftar/internal/constants"
	"github.com/daftar-app/daftar/internal/models"
	"github.com/daftar-app/daftar/internal/storage"
)

// Clock returns the current time. Injected so tests can pin the day.
type Clock func() time.Time

// Store owns every persisted collection in memory.
//
// Concurrency note:
//   - Store is not safe for concurrent use by multiple goroutines
//     without external synchronization. The application has exactly one
//     writer (the interactive session), matching the storage layer.
type Store struct {
	kv  storage.KV
	now Clock

	userName        string
	habits          []models.Habit
	dailyEntries    map[string]models.DailyEntry
	habitLogs       map[string][]models.HabitLog
	religiousHabits []models.ReligiousHabit
	religiousLogs   map[string][]models.ReligiousHabitLog
	profile         models.Profile
	period          models.PeriodData
	customMasks     []models.DiyMask
	customRecipes   []models.Recipe
}

// Open loads all collections from kv, repairing or discarding malformed
// values, and guarantees today's entry exists. A nil clock defaults to
// time.Now.
func Open(kv storage.KV, now Clock) (*Store, error) {
	if now == nil {
		now = time.Now
	}

	s := &Store{kv: kv, now: now}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Today returns the current local calendar date key.
func (s *Store) Today() string {
	return s.now().Format(constants.DateFormat)
}

func (s *Store) UserName() string { return s.userName }

// Onboarded reports whether a user name has been set. Until then the
// application shows only the onboarding flow.
func (s *Store) Onboarded() bool { return s.userName != "" }

func (s *Store) Habits() []models.Habit { return s.habits }

func (s *Store) Habit(id string) (models.Habit, bool) {
	for _, h := range s.habits {
		if h.ID == id {
			return h, true
		}
	}
	return models.Habit{}, false
}

func (s *Store) ReligiousHabits() []models.ReligiousHabit { return s.religiousHabits }

func (s *Store) ReligiousHabit(id string) (models.ReligiousHabit, bool) {
	for _, h := range s.religiousHabits {
		if h.ID == id {
			return h, true
		}
	}
	return models.ReligiousHabit{}, false
}

// DailyEntries returns the per-day entry map keyed by date.
func (s *Store) DailyEntries() map[string]models.DailyEntry { return s.dailyEntries }

// HabitLogs returns the per-day habit log map keyed by date.
func (s *Store) HabitLogs() map[string][]models.HabitLog { return s.habitLogs }

// ReligiousHabitLogs returns the per-day counter log map keyed by date.
func (s *Store) ReligiousHabitLogs() map[string][]models.ReligiousHabitLog {
	return s.religiousLogs
}

// Entry returns the stored entry for a date, or false when the day has
// never been touched.
func (s *Store) Entry(date string) (models.DailyEntry, bool) {
	e, ok := s.dailyEntries[date]
	return e, ok
}

// TodayEntry returns today's entry. The entry is guaranteed to exist
// after Open, but a fresh one is synthesized if the day has rolled over
// since load.
func (s *Store) TodayEntry() models.DailyEntry {
	today := s.Today()
	if e, ok := s.dailyEntries[today]; ok {
		return e
	}
	return models.NewDailyEntry(today)
}

// HabitLogForToday returns today's log for a habit, or false when the
// habit has no log today.
func (s *Store) HabitLogForToday(habitID string) (models.HabitLog, bool) {
	for _, log := range s.habitLogs[s.Today()] {
		if log.HabitID == habitID {
			return log, true
		}
	}
	return models.HabitLog{}, false
}

// ReligiousHabitLogForToday returns today's counter log for a habit, or
// false when nothing has been counted today.
func (s *Store) ReligiousHabitLogForToday(habitID string) (models.ReligiousHabitLog, bool) {
	for _, log := range s.religiousLogs[s.Today()] {
		if log.HabitID == habitID {
			return log, true
		}
	}
	return models.ReligiousHabitLog{}, false
}

// AllHabitsDoneToday reports whether every habit has a done log today.
func (s *Store) AllHabitsDoneToday() bool {
	for _, h := range s.habits {
		log, ok := s.HabitLogForToday(h.ID)
		if !ok || !log.Done {
			return false
		}
	}
	return true
}

func (s *Store) Profile() models.Profile { return s.profile }

func (s *Store) PeriodData() models.PeriodData { return s.period }

// CycleStatus derives the current cycle position from the period
// singleton.
func (s *Store) CycleStatus() models.CycleStatus {
	return s.period.Status(s.now())
}

func (s *Store) CustomMasks() []models.DiyMask { return s.customMasks }
func (s *Store) CustomRecipes() []models.Recipe { return s.customRecipes }

// persist writes one collection back to storage in full.
func (s *Store) persist(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	if err := s.kv.Set(key, data); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}

// persistOptional writes a scalar or removes its key when nil.
func (s *Store) persistOptional(key string, v any, present bool) error {
	if !present {
		if err := s.kv.Delete(key); err != nil {
			return fmt.Errorf("failed to clear %s: %w", key, err)
		}
		return nil
	}
	return s.persist(key, v)
}
