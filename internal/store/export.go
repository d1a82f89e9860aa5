package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/daftar-app/daftar/internal/models"
	"github.com/daftar-app/daftar/internal/storage"
)

// ErrNotBackup is returned by Import when the document carries neither
// of the anchor collections and therefore cannot be a daftar backup.
var ErrNotBackup = errors.New("not a daftar backup: missing habits and dailyEntries")

// backupDocument is the export artifact. Keys match the persisted
// storage keys; the body metrics beyond the two weights are
// deliberately not part of the backup, matching the original format.
type backupDocument struct {
	UserName           string                                `json:"userName"`
	Habits             []models.Habit                        `json:"habits"`
	DailyEntries       map[string]models.DailyEntry          `json:"dailyEntries"`
	HabitLogs          map[string][]models.HabitLog          `json:"habitLogs"`
	CurrentWeight      *float64                              `json:"currentWeight"`
	TargetWeight       *float64                              `json:"targetWeight"`
	ReligiousHabits    []models.ReligiousHabit               `json:"religiousHabits"`
	ReligiousHabitLogs map[string][]models.ReligiousHabitLog `json:"religiousHabitLogs"`
	PeriodData         models.PeriodData                     `json:"periodData"`
	CustomMasks        []models.DiyMask                      `json:"customMasks"`
	CustomRecipes      []models.Recipe                       `json:"customRecipes"`
}

// Export serializes the full persisted state into a single backup
// document.
func (s *Store) Export() ([]byte, error) {
	doc := backupDocument{
		UserName:           s.userName,
		Habits:             s.habits,
		DailyEntries:       s.dailyEntries,
		HabitLogs:          s.habitLogs,
		CurrentWeight:      s.profile.CurrentWeight,
		TargetWeight:       s.profile.TargetWeight,
		ReligiousHabits:    s.religiousHabits,
		ReligiousHabitLogs: s.religiousLogs,
		PeriodData:         s.period,
		CustomMasks:        s.customMasks,
		CustomRecipes:      s.customRecipes,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize backup: %w", err)
	}
	return data, nil
}

// Verify reports whether data looks like a daftar backup: it must
// parse as a JSON object and carry at least one anchor collection.
func Verify(data []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse backup: %w", err)
	}
	_, hasHabits := doc[storage.KeyHabits]
	_, hasEntries := doc[storage.KeyDailyEntries]
	if !hasHabits && !hasEntries {
		return ErrNotBackup
	}
	return nil
}

// Import replaces collections from a backup document. The document is
// untrusted: it must parse and carry at least one anchor collection
// (habits or dailyEntries) before any state is touched. Only keys
// present in the document are applied; each applied collection is
// sanitized and persisted immediately. Absent keys leave the current
// state alone.
func (s *Store) Import(data []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse backup: %w", err)
	}

	_, hasHabits := doc[storage.KeyHabits]
	_, hasEntries := doc[storage.KeyDailyEntries]
	if !hasHabits && !hasEntries {
		return ErrNotBackup
	}

	if raw, ok := doc[storage.KeyUserName]; ok {
		var name string
		if err := json.Unmarshal(raw, &name); err == nil && name != "" {
			if err := s.SetUserName(name); err != nil {
				return err
			}
		}
	}

	if raw, ok := doc[storage.KeyHabits]; ok {
		if habits := sanitizeHabits(raw); habits != nil {
			s.habits = habits
			if err := s.persist(storage.KeyHabits, s.habits); err != nil {
				return err
			}
		}
	}

	if raw, ok := doc[storage.KeyDailyEntries]; ok {
		s.dailyEntries = sanitizeDailyEntries(raw)
		if err := s.persist(storage.KeyDailyEntries, s.dailyEntries); err != nil {
			return err
		}
	}

	if raw, ok := doc[storage.KeyHabitLogs]; ok {
		s.habitLogs = sanitizeHabitLogs(raw)
		if err := s.persist(storage.KeyHabitLogs, s.habitLogs); err != nil {
			return err
		}
	}

	if raw, ok := doc[storage.KeyReligiousHabits]; ok {
		if habits := sanitizeReligiousHabits(raw); habits != nil {
			s.religiousHabits = habits
			if err := s.persist(storage.KeyReligiousHabits, s.religiousHabits); err != nil {
				return err
			}
		}
	}

	if raw, ok := doc[storage.KeyReligiousLogs]; ok {
		s.religiousLogs = sanitizeReligiousLogs(raw)
		if err := s.persist(storage.KeyReligiousLogs, s.religiousLogs); err != nil {
			return err
		}
	}

	if raw, ok := doc[storage.KeyCurrentWeight]; ok {
		var w *float64
		if err := json.Unmarshal(raw, &w); err == nil {
			s.profile.CurrentWeight = w
			if err := s.persistOptional(storage.KeyCurrentWeight, w, w != nil); err != nil {
				return err
			}
		}
	}

	if raw, ok := doc[storage.KeyTargetWeight]; ok {
		var w *float64
		if err := json.Unmarshal(raw, &w); err == nil {
			s.profile.TargetWeight = w
			if err := s.persistOptional(storage.KeyTargetWeight, w, w != nil); err != nil {
				return err
			}
		}
	}

	if raw, ok := doc[storage.KeyPeriodData]; ok {
		s.period = sanitizePeriod(raw)
		if err := s.persist(storage.KeyPeriodData, s.period); err != nil {
			return err
		}
	}

	if raw, ok := doc[storage.KeyCustomMasks]; ok {
		s.customMasks = sanitizeMasks(raw)
		if err := s.persist(storage.KeyCustomMasks, s.customMasks); err != nil {
			return err
		}
	}

	if raw, ok := doc[storage.KeyCustomRecipes]; ok {
		s.customRecipes = sanitizeRecipes(raw)
		if err := s.persist(storage.KeyCustomRecipes, s.customRecipes); err != nil {
			return err
		}
	}

	return nil
}
