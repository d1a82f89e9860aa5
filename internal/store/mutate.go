package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/daftar-app/daftar/internal/constants"
	"github.com/daftar-app/daftar/internal/models"
	"github.com/daftar-app/daftar/internal/storage"
)

func parseDate(s string) (time.Time, error) {
	return time.Parse(constants.DateFormat, s)
}

// SetUserName records the display name that unlocks the app.
func (s *Store) SetUserName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	s.userName = name
	if err := s.kv.Set(storage.KeyUserName, []byte(name)); err != nil {
		return fmt.Errorf("failed to persist user name: %w", err)
	}
	return nil
}

// AddHabit appends a habit with a fresh id. Habits are additive only;
// there is no edit or delete operation.
func (s *Store) AddHabit(h models.Habit) (models.Habit, error) {
	h.ID = uuid.New().String()
	h.CreatedAt = s.now()
	if h.Type == "" {
		h.Type = models.HabitDaily
	}
	if err := h.Validate(); err != nil {
		return models.Habit{}, err
	}

	s.habits = append(s.habits, h)
	if err := s.persist(storage.KeyHabits, s.habits); err != nil {
		return models.Habit{}, err
	}
	return h, nil
}

// AddReligiousHabit appends a devotional habit with a fresh id.
func (s *Store) AddReligiousHabit(h models.ReligiousHabit) (models.ReligiousHabit, error) {
	if h.Name == "" {
		return models.ReligiousHabit{}, fmt.Errorf("habit name cannot be empty")
	}
	h.ID = "r_" + uuid.New().String()
	h.Azkar = models.AzkarNone // user additions never carry built-in azkar content

	s.religiousHabits = append(s.religiousHabits, h)
	if err := s.persist(storage.KeyReligiousHabits, s.religiousHabits); err != nil {
		return models.ReligiousHabit{}, err
	}
	return h, nil
}

// LogHabit records a habit as done or not done for today. Calling it
// twice with the same value is idempotent: today's log list holds at
// most one entry per habit.
//
// Weekly habits behave differently on unmark: done=false removes the
// log entry entirely instead of keeping a done=false record. The
// asymmetry is preserved from the original behavior; whether it is
// intentional is an open question, so do not "fix" it here.
func (s *Store) LogHabit(habitID string, done bool) error {
	habit, ok := s.Habit(habitID)
	if !ok {
		return fmt.Errorf("habit not found: %s", habitID)
	}

	today := s.Today()
	logs := s.habitLogs[today]
	idx := -1
	for i, log := range logs {
		if log.HabitID == habitID {
			idx = i
			break
		}
	}

	if habit.Type == models.HabitWeekly && !done {
		if idx >= 0 {
			logs = append(logs[:idx], logs[idx+1:]...)
		}
	} else if idx >= 0 {
		logs[idx].Done = done
	} else {
		logs = append(logs, models.HabitLog{Date: today, HabitID: habitID, Done: done})
	}

	if len(logs) == 0 {
		delete(s.habitLogs, today)
	} else {
		s.habitLogs[today] = logs
	}
	return s.persist(storage.KeyHabitLogs, s.habitLogs)
}

// SetReligiousCount writes today's repetition count for a habit.
// Negative counts clamp to zero, and zero removes the log entry so an
// undone count is indistinguishable from never counting.
func (s *Store) SetReligiousCount(habitID string, count int) error {
	if _, ok := s.ReligiousHabit(habitID); !ok {
		return fmt.Errorf("habit not found: %s", habitID)
	}
	if count < 0 {
		count = 0
	}

	today := s.Today()
	logs := s.religiousLogs[today]
	idx := -1
	for i, log := range logs {
		if log.HabitID == habitID {
			idx = i
			break
		}
	}

	switch {
	case idx >= 0 && count > 0:
		logs[idx].Count = count
	case idx >= 0:
		logs = append(logs[:idx], logs[idx+1:]...)
	case count > 0:
		logs = append(logs, models.ReligiousHabitLog{Date: today, HabitID: habitID, Count: count})
	}

	if len(logs) == 0 {
		delete(s.religiousLogs, today)
	} else {
		s.religiousLogs[today] = logs
	}
	return s.persist(storage.KeyReligiousLogs, s.religiousLogs)
}

// mutateToday applies fn to today's entry, creating the entry on
// demand, and persists the entries collection.
func (s *Store) mutateToday(fn func(*models.DailyEntry)) error {
	today := s.Today()
	entry, ok := s.dailyEntries[today]
	if !ok {
		entry = models.NewDailyEntry(today)
	}
	fn(&entry)
	s.dailyEntries[today] = entry
	return s.persist(storage.KeyDailyEntries, s.dailyEntries)
}

func (s *Store) SetMood(mood models.Mood) error {
	if !mood.Valid() {
		return fmt.Errorf("invalid mood: %q", mood)
	}
	return s.mutateToday(func(e *models.DailyEntry) { e.Mood = mood })
}

func (s *Store) SetWater(count int) error {
	if count < 0 {
		count = 0
	}
	return s.mutateToday(func(e *models.DailyEntry) { e.WaterCount = count })
}

func (s *Store) ToggleChiaWater() error {
	return s.mutateToday(func(e *models.DailyEntry) { e.ChiaWater = !e.ChiaWater })
}

func (s *Store) SetTaskDone(taskID int, done bool) error {
	return s.setTask(taskID, func(t *models.Task) { t.Done = done })
}

func (s *Store) SetTaskText(taskID int, text string) error {
	return s.setTask(taskID, func(t *models.Task) { t.Text = text })
}

func (s *Store) setTask(taskID int, fn func(*models.Task)) error {
	if taskID < 1 || taskID > constants.TaskSlots {
		return fmt.Errorf("task slot out of range: %d", taskID)
	}
	return s.mutateToday(func(e *models.DailyEntry) {
		if t := e.Task(taskID); t != nil {
			fn(t)
		}
	})
}

// UpdateMeals merges a partial meals update into today's entry.
func (s *Store) UpdateMeals(patch models.MealsPatch) error {
	return s.mutateToday(func(e *models.DailyEntry) { patch.Apply(&e.Meals) })
}

func (s *Store) SetNotes(notes string) error {
	return s.mutateToday(func(e *models.DailyEntry) { e.Notes = notes })
}

// UpdateJournal sets today's journal text. An empty image leaves any
// previously attached image in place.
func (s *Store) UpdateJournal(text, image string) error {
	return s.mutateToday(func(e *models.DailyEntry) {
		e.Journal = text
		if image != "" {
			e.JournalImage = image
		}
	})
}

// AddExercise appends a workout to today's entry.
func (s *Store) AddExercise(name string, durationMin, caloriesBurned int) (models.Exercise, error) {
	if name == "" {
		return models.Exercise{}, fmt.Errorf("exercise name cannot be empty")
	}
	ex := models.Exercise{
		ID:             uuid.New().String(),
		Name:           name,
		DurationMin:    durationMin,
		CaloriesBurned: caloriesBurned,
	}
	err := s.mutateToday(func(e *models.DailyEntry) {
		e.Exercises = append(e.Exercises, ex)
	})
	if err != nil {
		return models.Exercise{}, err
	}
	return ex, nil
}

func (s *Store) DeleteExercise(id string) error {
	return s.mutateToday(func(e *models.DailyEntry) {
		kept := e.Exercises[:0]
		for _, ex := range e.Exercises {
			if ex.ID != id {
				kept = append(kept, ex)
			}
		}
		e.Exercises = kept
	})
}

// AddDrink logs a drink for today, stamped with the current HH:MM.
func (s *Store) AddDrink(name, icon string, drinkType models.DrinkType) (models.DrinkLog, error) {
	if name == "" {
		return models.DrinkLog{}, fmt.Errorf("drink name cannot be empty")
	}
	switch drinkType {
	case models.DrinkHot, models.DrinkCold, models.DrinkFemininity:
	default:
		return models.DrinkLog{}, fmt.Errorf("invalid drink type: %q", drinkType)
	}

	drink := models.DrinkLog{
		ID:        uuid.New().String(),
		Name:      name,
		Icon:      icon,
		Type:      drinkType,
		Timestamp: s.now().Format(constants.TimeFormat),
	}
	err := s.mutateToday(func(e *models.DailyEntry) {
		e.Drinks = append(e.Drinks, drink)
	})
	if err != nil {
		return models.DrinkLog{}, err
	}
	return drink, nil
}

func (s *Store) DeleteDrink(id string) error {
	return s.mutateToday(func(e *models.DailyEntry) {
		kept := e.Drinks[:0]
		for _, d := range e.Drinks {
			if d.ID != id {
				kept = append(kept, d)
			}
		}
		e.Drinks = kept
	})
}

// SetCurrentWeight updates the profile scalar and, when set, also
// stamps the value onto today's entry as a weight sample. This is the
// only profile write that touches the daily aggregate.
func (s *Store) SetCurrentWeight(weight *float64) error {
	s.profile.CurrentWeight = weight
	if err := s.persistOptional(storage.KeyCurrentWeight, weight, weight != nil); err != nil {
		return err
	}
	if weight == nil {
		return nil
	}
	w := *weight
	return s.mutateToday(func(e *models.DailyEntry) { e.Weight = &w })
}

func (s *Store) SetTargetWeight(weight *float64) error {
	s.profile.TargetWeight = weight
	return s.persistOptional(storage.KeyTargetWeight, weight, weight != nil)
}

func (s *Store) SetHeight(height *int) error {
	s.profile.Height = height
	return s.persistOptional(storage.KeyHeight, height, height != nil)
}

func (s *Store) SetAge(age *int) error {
	s.profile.Age = age
	return s.persistOptional(storage.KeyAge, age, age != nil)
}

func (s *Store) SetActivityLevel(level *float64) error {
	s.profile.ActivityLevel = level
	return s.persistOptional(storage.KeyActivityLevel, level, level != nil)
}

// UpdatePeriod merges a partial update into the period singleton.
func (s *Store) UpdatePeriod(patch models.PeriodPatch) error {
	if patch.LastPeriodStart != nil && *patch.LastPeriodStart != "" {
		if _, err := parseDate(*patch.LastPeriodStart); err != nil {
			return fmt.Errorf("invalid period start date: %w", err)
		}
	}
	if patch.CycleLength != nil && *patch.CycleLength < 1 {
		return fmt.Errorf("cycle length must be at least 1")
	}
	if patch.PeriodLength != nil && *patch.PeriodLength < 1 {
		return fmt.Errorf("period length must be at least 1")
	}

	patch.Apply(&s.period)
	return s.persist(storage.KeyPeriodData, s.period)
}

// AddCustomMask appends a user mask to the catalog extension.
func (s *Store) AddCustomMask(mask models.DiyMask) (models.DiyMask, error) {
	if mask.Name == "" {
		return models.DiyMask{}, fmt.Errorf("mask name cannot be empty")
	}
	mask.ID = uuid.New().String()
	mask.IsCustom = true

	s.customMasks = append(s.customMasks, mask)
	if err := s.persist(storage.KeyCustomMasks, s.customMasks); err != nil {
		return models.DiyMask{}, err
	}
	return mask, nil
}

// AddCustomRecipe appends a user recipe to the catalog extension.
func (s *Store) AddCustomRecipe(recipe models.Recipe) (models.Recipe, error) {
	if recipe.Name == "" {
		return models.Recipe{}, fmt.Errorf("recipe name cannot be empty")
	}
	recipe.ID = "custom_" + uuid.New().String()
	recipe.IsCustom = true

	s.customRecipes = append(s.customRecipes, recipe)
	if err := s.persist(storage.KeyCustomRecipes, s.customRecipes); err != nil {
		return models.Recipe{}, err
	}
	return recipe, nil
}
