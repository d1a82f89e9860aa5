package store

import (
	"encoding/json"

	"github.com/daftar-app/daftar/internal/catalog"
	"github.com/daftar-app/daftar/internal/logger"
	"github.com/daftar-app/daftar/internal/models"
	"github.com/daftar-app/daftar/internal/storage"
)

// load reads every collection, substituting typed defaults for absent
// or unusable values. A raw value that fails to parse is deleted from
// storage so it cannot fail again on the next start. Malformed elements
// inside otherwise usable collections are dropped silently.
func (s *Store) load() error {
	s.userName = s.loadString(storage.KeyUserName)

	s.habits = sanitizeHabits(s.loadRaw(storage.KeyHabits))
	if s.habits == nil {
		s.habits = catalog.InitialHabits()
	}

	s.religiousHabits = sanitizeReligiousHabits(s.loadRaw(storage.KeyReligiousHabits))
	if s.religiousHabits == nil {
		s.religiousHabits = catalog.InitialReligiousHabits()
	}

	s.habitLogs = sanitizeHabitLogs(s.loadRaw(storage.KeyHabitLogs))
	s.religiousLogs = sanitizeReligiousLogs(s.loadRaw(storage.KeyReligiousLogs))
	s.dailyEntries = sanitizeDailyEntries(s.loadRaw(storage.KeyDailyEntries))

	s.profile = models.Profile{
		CurrentWeight: loadScalar[float64](s, storage.KeyCurrentWeight),
		TargetWeight:  loadScalar[float64](s, storage.KeyTargetWeight),
		Height:        loadScalar[int](s, storage.KeyHeight),
		Age:           loadScalar[int](s, storage.KeyAge),
		ActivityLevel: loadScalar[float64](s, storage.KeyActivityLevel),
	}

	s.period = sanitizePeriod(s.loadRaw(storage.KeyPeriodData))
	s.customMasks = sanitizeMasks(s.loadRaw(storage.KeyCustomMasks))
	s.customRecipes = sanitizeRecipes(s.loadRaw(storage.KeyCustomRecipes))

	// Today's entry must exist after load.
	today := s.Today()
	if _, ok := s.dailyEntries[today]; !ok {
		s.dailyEntries[today] = models.NewDailyEntry(today)
		if err := s.persist(storage.KeyDailyEntries, s.dailyEntries); err != nil {
			return err
		}
	}

	return nil
}

// loadRaw returns the raw stored value for key, or nil when absent or
// unreadable. Unreadable values are removed from storage.
func (s *Store) loadRaw(key string) json.RawMessage {
	data, ok, err := s.kv.Get(key)
	if err != nil {
		logger.Warn("Failed to read stored value", "key", key, "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	if !json.Valid(data) {
		logger.Warn("Discarding corrupt stored value", "key", key)
		if err := s.kv.Delete(key); err != nil {
			logger.Warn("Failed to remove corrupt value", "key", key, "error", err)
		}
		return nil
	}
	return json.RawMessage(data)
}

// loadString reads a plain-string key. The user name is stored as a
// bare string, not JSON, matching the original storage contract.
func (s *Store) loadString(key string) string {
	data, ok, err := s.kv.Get(key)
	if err != nil || !ok {
		return ""
	}
	return string(data)
}

// loadScalar reads an optional numeric singleton; nil means unset. A
// value of the wrong shape is discarded and removed.
func loadScalar[T float64 | int](s *Store, key string) *T {
	raw := s.loadRaw(key)
	if raw == nil {
		return nil
	}
	var v *T
	if err := json.Unmarshal(raw, &v); err != nil {
		logger.Warn("Discarding malformed scalar", "key", key)
		if err := s.kv.Delete(key); err != nil {
			logger.Warn("Failed to remove malformed scalar", "key", key, "error", err)
		}
		return nil
	}
	return v
}

// sanitizeHabits keeps only elements that are objects with a non-empty
// id and name. Returns nil when the whole value is missing or not an
// array, so the caller can fall back to the seed catalog.
func sanitizeHabits(raw json.RawMessage) []models.Habit {
	if raw == nil {
		return nil
	}
	var loose []json.RawMessage
	if err := json.Unmarshal(raw, &loose); err != nil {
		return nil
	}

	habits := make([]models.Habit, 0, len(loose))
	for _, item := range loose {
		var h models.Habit
		if err := json.Unmarshal(item, &h); err != nil {
			continue
		}
		if h.ID == "" || h.Name == "" {
			continue
		}
		habits = append(habits, h)
	}
	if len(habits) == 0 {
		// Nothing usable survived filtering; reseed from the catalog.
		return nil
	}
	return habits
}

func sanitizeReligiousHabits(raw json.RawMessage) []models.ReligiousHabit {
	if raw == nil {
		return nil
	}
	var loose []json.RawMessage
	if err := json.Unmarshal(raw, &loose); err != nil {
		return nil
	}

	habits := make([]models.ReligiousHabit, 0, len(loose))
	for _, item := range loose {
		var h models.ReligiousHabit
		if err := json.Unmarshal(item, &h); err != nil {
			continue
		}
		if h.ID == "" || h.Name == "" {
			continue
		}
		if !h.Azkar.Valid() {
			h.Azkar = models.AzkarNone
		}
		habits = append(habits, h)
	}
	if len(habits) == 0 {
		return nil
	}
	return habits
}

// sanitizeHabitLogs corrects the date→logs map: non-array values reset
// to empty, elements without habitId and done are dropped.
func sanitizeHabitLogs(raw json.RawMessage) map[string][]models.HabitLog {
	logs := make(map[string][]models.HabitLog)
	if raw == nil {
		return logs
	}
	var loose map[string]json.RawMessage
	if err := json.Unmarshal(raw, &loose); err != nil {
		return logs
	}

	for date, rawList := range loose {
		var items []json.RawMessage
		if err := json.Unmarshal(rawList, &items); err != nil {
			logs[date] = []models.HabitLog{}
			continue
		}
		kept := make([]models.HabitLog, 0, len(items))
		for _, item := range items {
			var fields map[string]json.RawMessage
			if err := json.Unmarshal(item, &fields); err != nil {
				continue
			}
			if _, ok := fields["habitId"]; !ok {
				continue
			}
			if _, ok := fields["done"]; !ok {
				continue
			}
			var log models.HabitLog
			if err := json.Unmarshal(item, &log); err != nil {
				continue
			}
			kept = append(kept, log)
		}
		logs[date] = kept
	}
	return logs
}

func sanitizeReligiousLogs(raw json.RawMessage) map[string][]models.ReligiousHabitLog {
	logs := make(map[string][]models.ReligiousHabitLog)
	if raw == nil {
		return logs
	}
	var loose map[string]json.RawMessage
	if err := json.Unmarshal(raw, &loose); err != nil {
		return logs
	}

	for date, rawList := range loose {
		var items []json.RawMessage
		if err := json.Unmarshal(rawList, &items); err != nil {
			logs[date] = []models.ReligiousHabitLog{}
			continue
		}
		kept := make([]models.ReligiousHabitLog, 0, len(items))
		for _, item := range items {
			var fields map[string]json.RawMessage
			if err := json.Unmarshal(item, &fields); err != nil {
				continue
			}
			if _, ok := fields["habitId"]; !ok {
				continue
			}
			if _, ok := fields["count"]; !ok {
				continue
			}
			var log models.ReligiousHabitLog
			if err := json.Unmarshal(item, &log); err != nil {
				continue
			}
			if log.Count < 0 {
				log.Count = 0
			}
			kept = append(kept, log)
		}
		logs[date] = kept
	}
	return logs
}

// sanitizeDailyEntries reconciles every stored entry against the
// canonical new-day shape so entries written under older or partial
// schemas gain any missing fields.
func sanitizeDailyEntries(raw json.RawMessage) map[string]models.DailyEntry {
	entries := make(map[string]models.DailyEntry)
	if raw == nil {
		return entries
	}
	var loose map[string]json.RawMessage
	if err := json.Unmarshal(raw, &loose); err != nil {
		return entries
	}

	for date, item := range loose {
		entries[date] = normalizeEntry(date, item)
	}
	return entries
}

// normalizeEntry deep-merges a stored entry into the default shape:
// top-level fields overlay the defaults, meals merge key by key, the
// three task slots merge positionally keeping their default ids, and
// exercises/drinks are coerced to arrays.
func normalizeEntry(date string, raw json.RawMessage) models.DailyEntry {
	entry := models.NewDailyEntry(date)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return entry
	}

	unmarshalField(fields, "mood", &entry.Mood)
	if !entry.Mood.Valid() {
		entry.Mood = ""
	}
	unmarshalField(fields, "waterCount", &entry.WaterCount)
	unmarshalField(fields, "chiaWater", &entry.ChiaWater)
	unmarshalField(fields, "notes", &entry.Notes)
	unmarshalField(fields, "journal", &entry.Journal)
	unmarshalField(fields, "journalImage", &entry.JournalImage)
	unmarshalField(fields, "weight", &entry.Weight)

	// Meals merge key by key over the defaults.
	if rawMeals, ok := fields["meals"]; ok {
		meals := entry.Meals
		if err := json.Unmarshal(rawMeals, &meals); err == nil {
			entry.Meals = meals
		}
	}

	// Fixed task slots merge positionally; each slot keeps its default
	// id, text and done unless overridden.
	if rawTasks, ok := fields["tasks"]; ok {
		var looseTasks []json.RawMessage
		if err := json.Unmarshal(rawTasks, &looseTasks); err == nil {
			for i := range entry.Tasks {
				if i >= len(looseTasks) {
					break
				}
				slot := entry.Tasks[i]
				if err := json.Unmarshal(looseTasks[i], &slot); err != nil {
					continue
				}
				slot.ID = entry.Tasks[i].ID
				entry.Tasks[i] = slot
			}
		}
	}

	if rawList, ok := fields["exercises"]; ok {
		var exercises []models.Exercise
		if err := json.Unmarshal(rawList, &exercises); err == nil && exercises != nil {
			entry.Exercises = exercises
		}
	}
	if rawList, ok := fields["drinks"]; ok {
		var drinks []models.DrinkLog
		if err := json.Unmarshal(rawList, &drinks); err == nil && drinks != nil {
			entry.Drinks = drinks
		}
	}

	return entry
}

func unmarshalField[T any](fields map[string]json.RawMessage, key string, dst *T) {
	raw, ok := fields[key]
	if !ok {
		return
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return
	}
	*dst = v
}

func sanitizePeriod(raw json.RawMessage) models.PeriodData {
	period := models.DefaultPeriodData()
	if raw == nil {
		return period
	}
	var stored models.PeriodData
	if err := json.Unmarshal(raw, &stored); err != nil {
		return period
	}
	if stored.CycleLength > 0 {
		period.CycleLength = stored.CycleLength
	}
	if stored.PeriodLength > 0 {
		period.PeriodLength = stored.PeriodLength
	}
	period.LastPeriodStart = stored.LastPeriodStart
	return period
}

func sanitizeMasks(raw json.RawMessage) []models.DiyMask {
	if raw == nil {
		return []models.DiyMask{}
	}
	var masks []models.DiyMask
	if err := json.Unmarshal(raw, &masks); err != nil || masks == nil {
		return []models.DiyMask{}
	}
	return masks
}

func sanitizeRecipes(raw json.RawMessage) []models.Recipe {
	if raw == nil {
		return []models.Recipe{}
	}
	var recipes []models.Recipe
	if err := json.Unmarshal(raw, &recipes); err != nil || recipes == nil {
		return []models.Recipe{}
	}
	return recipes
}
