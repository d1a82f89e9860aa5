package store

import (
	"testing"

	"github.com/daftar-app/daftar/internal/storage"
)

func TestLoadRecoversFromCorruptHabits(t *testing.T) {
	kv := storage.NewFileStore(t.TempDir())
	if err := kv.Set(storage.KeyHabits, []byte("{{{not json")); err != nil {
		t.Fatal(err)
	}

	st, err := Open(kv, testClock)
	if err != nil {
		t.Fatalf("open must not fail on corrupt data: %v", err)
	}

	if got := len(st.Habits()); got != 6 {
		t.Errorf("expected reseeded habits, got %d", got)
	}
	// The corrupt raw value is removed so it cannot fail again.
	if _, ok, _ := kv.Get(storage.KeyHabits); ok {
		t.Error("corrupt habits value should be deleted from storage")
	}
}

func TestLoadFiltersInvalidHabitElements(t *testing.T) {
	kv := storage.NewFileStore(t.TempDir())
	raw := `[
		{"id":"h1","name":"Walk","icon":"🚶","type":"daily"},
		{"name":"missing id"},
		{"id":"h2"},
		42,
		{"id":"h3","name":"Read","type":"daily"}
	]`
	if err := kv.Set(storage.KeyHabits, []byte(raw)); err != nil {
		t.Fatal(err)
	}

	st, err := Open(kv, testClock)
	if err != nil {
		t.Fatal(err)
	}

	habits := st.Habits()
	if len(habits) != 2 {
		t.Fatalf("expected 2 surviving habits, got %d", len(habits))
	}
	if habits[0].ID != "h1" || habits[1].ID != "h3" {
		t.Errorf("survivors = %s, %s", habits[0].ID, habits[1].ID)
	}
}

func TestLoadReseedsWhenNoHabitSurvives(t *testing.T) {
	kv := storage.NewFileStore(t.TempDir())
	if err := kv.Set(storage.KeyHabits, []byte(`[{}]`)); err != nil {
		t.Fatal(err)
	}

	st, err := Open(kv, testClock)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(st.Habits()); got != 6 {
		t.Errorf("a list with zero valid habits should reseed, got %d", got)
	}
}

func TestLoadRepairsLogShapes(t *testing.T) {
	kv := storage.NewFileStore(t.TempDir())
	raw := `{
		"2025-03-01": "not an array",
		"2025-03-02": [
			{"date":"2025-03-02","habitId":"h1","done":true},
			{"date":"2025-03-02","done":true},
			{"date":"2025-03-02","habitId":"h2"}
		]
	}`
	if err := kv.Set(storage.KeyHabitLogs, []byte(raw)); err != nil {
		t.Fatal(err)
	}

	st, err := Open(kv, testClock)
	if err != nil {
		t.Fatal(err)
	}

	logs := st.HabitLogs()
	if got := logs["2025-03-01"]; got == nil || len(got) != 0 {
		t.Errorf("non-array date should reset to empty, got %v", got)
	}
	if got := logs["2025-03-02"]; len(got) != 1 || got[0].HabitID != "h1" {
		t.Errorf("elements missing habitId or done should be dropped, got %v", got)
	}
}

func TestLoadClampsNegativeCounts(t *testing.T) {
	kv := storage.NewFileStore(t.TempDir())
	raw := `{"2025-03-02":[{"date":"2025-03-02","habitId":"r7","count":-3}]}`
	if err := kv.Set(storage.KeyReligiousLogs, []byte(raw)); err != nil {
		t.Fatal(err)
	}

	st, err := Open(kv, testClock)
	if err != nil {
		t.Fatal(err)
	}

	logs := st.ReligiousHabitLogs()["2025-03-02"]
	if len(logs) != 1 || logs[0].Count != 0 {
		t.Errorf("negative count should clamp to 0, got %v", logs)
	}
}

func TestLoadNormalizesPartialEntry(t *testing.T) {
	kv := storage.NewFileStore(t.TempDir())
	// An entry written by an older schema: no chiaWater, one task, meals
	// with only breakfast, exercises as a non-array.
	raw := `{"2025-03-05": {
		"date": "2025-03-05",
		"mood": "😊",
		"waterCount": 4,
		"meals": {"breakfast": "eggs"},
		"tasks": [{"id": 9, "text": "call mom", "done": true}],
		"exercises": "oops"
	}}`
	if err := kv.Set(storage.KeyDailyEntries, []byte(raw)); err != nil {
		t.Fatal(err)
	}

	st, err := Open(kv, testClock)
	if err != nil {
		t.Fatal(err)
	}

	entry, ok := st.Entry("2025-03-05")
	if !ok {
		t.Fatal("entry missing")
	}
	if entry.WaterCount != 4 || entry.Mood != "😊" {
		t.Errorf("kept fields lost: %+v", entry)
	}
	if len(entry.Tasks) != 3 {
		t.Fatalf("task slots should be padded to 3, got %d", len(entry.Tasks))
	}
	if entry.Tasks[0].ID != 1 || entry.Tasks[0].Text != "call mom" || !entry.Tasks[0].Done {
		t.Errorf("first slot should merge positionally keeping id 1, got %+v", entry.Tasks[0])
	}
	if entry.Tasks[1].Text != "" || entry.Tasks[2].Text != "" {
		t.Error("missing slots should stay default")
	}
	if entry.Meals.Breakfast != "eggs" {
		t.Errorf("meals merge lost breakfast: %+v", entry.Meals)
	}
	if entry.Exercises == nil || len(entry.Exercises) != 0 {
		t.Errorf("bad exercises should coerce to empty array, got %v", entry.Exercises)
	}
}

func TestLoadDropsInvalidMoodInEntry(t *testing.T) {
	kv := storage.NewFileStore(t.TempDir())
	raw := `{"2025-03-05": {"date": "2025-03-05", "mood": "banana"}}`
	if err := kv.Set(storage.KeyDailyEntries, []byte(raw)); err != nil {
		t.Fatal(err)
	}

	st, err := Open(kv, testClock)
	if err != nil {
		t.Fatal(err)
	}
	entry, _ := st.Entry("2025-03-05")
	if entry.Mood != "" {
		t.Errorf("invalid mood should reset to unset, got %q", entry.Mood)
	}
}

func TestLoadMalformedScalarDeleted(t *testing.T) {
	kv := storage.NewFileStore(t.TempDir())
	if err := kv.Set(storage.KeyCurrentWeight, []byte(`"sixty"`)); err != nil {
		t.Fatal(err)
	}

	st, err := Open(kv, testClock)
	if err != nil {
		t.Fatal(err)
	}
	if st.Profile().CurrentWeight != nil {
		t.Error("malformed scalar should read as unset")
	}
	if _, ok, _ := kv.Get(storage.KeyCurrentWeight); ok {
		t.Error("malformed scalar should be deleted from storage")
	}
}

func TestLoadPeriodDefaults(t *testing.T) {
	kv := storage.NewFileStore(t.TempDir())
	if err := kv.Set(storage.KeyPeriodData, []byte(`{"lastPeriodStart":"2025-02-20","cycleLength":0}`)); err != nil {
		t.Fatal(err)
	}

	st, err := Open(kv, testClock)
	if err != nil {
		t.Fatal(err)
	}
	period := st.PeriodData()
	if period.LastPeriodStart != "2025-02-20" {
		t.Errorf("start lost: %q", period.LastPeriodStart)
	}
	if period.CycleLength != 28 || period.PeriodLength != 5 {
		t.Errorf("zero lengths should fall back to defaults, got %+v", period)
	}
}
