package store

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/daftar-app/daftar/internal/models"
	"github.com/daftar-app/daftar/internal/storage"
)

func TestExportImportRoundTrip(t *testing.T) {
	st, _ := newTestStore(t)

	if err := st.SetUserName("Sara"); err != nil {
		t.Fatal(err)
	}
	if err := st.LogHabit(st.Habits()[0].ID, true); err != nil {
		t.Fatal(err)
	}
	if err := st.SetReligiousCount(st.ReligiousHabits()[6].ID, 100); err != nil {
		t.Fatal(err)
	}
	if err := st.SetWater(6); err != nil {
		t.Fatal(err)
	}
	w := 60.0
	if err := st.SetCurrentWeight(&w); err != nil {
		t.Fatal(err)
	}
	if _, err := st.AddCustomMask(models.DiyMask{Name: "Avocado", Type: models.MaskFace}); err != nil {
		t.Fatal(err)
	}

	data, err := st.Export()
	if err != nil {
		t.Fatal(err)
	}

	fresh, err := Open(storage.NewFileStore(t.TempDir()), testClock)
	if err != nil {
		t.Fatal(err)
	}
	if err := fresh.Import(data); err != nil {
		t.Fatalf("import: %v", err)
	}

	if fresh.UserName() != "Sara" {
		t.Errorf("userName = %q", fresh.UserName())
	}
	if !reflect.DeepEqual(fresh.Habits(), st.Habits()) {
		t.Error("habits differ after round trip")
	}
	if !reflect.DeepEqual(fresh.HabitLogs(), st.HabitLogs()) {
		t.Error("habit logs differ after round trip")
	}
	if !reflect.DeepEqual(fresh.ReligiousHabitLogs(), st.ReligiousHabitLogs()) {
		t.Error("religious logs differ after round trip")
	}
	if !reflect.DeepEqual(fresh.DailyEntries(), st.DailyEntries()) {
		t.Error("daily entries differ after round trip")
	}
	if !reflect.DeepEqual(fresh.CustomMasks(), st.CustomMasks()) {
		t.Error("custom masks differ after round trip")
	}
	if got := fresh.Profile().CurrentWeight; got == nil || *got != 60.0 {
		t.Error("current weight lost in round trip")
	}
}

func TestImportRejectsNonBackup(t *testing.T) {
	st, _ := newTestStore(t)
	if err := st.SetUserName("Sara"); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name string
		data string
	}{
		{"not json", "{{{"},
		{"no anchors", `{"userName":"Mallory","customMasks":[]}`},
		{"array", `[1,2,3]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := st.Import([]byte(tc.data)); err == nil {
				t.Fatal("expected import to fail")
			}
			// Nothing may have been touched.
			if st.UserName() != "Sara" {
				t.Errorf("state mutated by rejected import: %q", st.UserName())
			}
		})
	}
}

func TestImportAppliesOnlyPresentKeys(t *testing.T) {
	st, _ := newTestStore(t)
	if err := st.SetUserName("Sara"); err != nil {
		t.Fatal(err)
	}
	w := 58.0
	if err := st.SetTargetWeight(&w); err != nil {
		t.Fatal(err)
	}

	doc := `{"habits":[{"id":"x1","name":"Imported","type":"daily","icon":"🧩","accentColor":"#fff","createdAt":"2024-01-01T00:00:00Z"}]}`
	if err := st.Import([]byte(doc)); err != nil {
		t.Fatal(err)
	}

	if len(st.Habits()) != 1 || st.Habits()[0].ID != "x1" {
		t.Errorf("habits not replaced: %v", st.Habits())
	}
	// Absent keys stay untouched.
	if st.UserName() != "Sara" {
		t.Error("userName should survive a document without it")
	}
	if got := st.Profile().TargetWeight; got == nil || *got != 58.0 {
		t.Error("target weight should survive a document without it")
	}
}

func TestImportSanitizesDocument(t *testing.T) {
	st, _ := newTestStore(t)

	doc := `{
		"habits": [{"id":"x1","name":"Good","type":"daily"}, {"bad":true}],
		"religiousHabitLogs": {"2025-03-02":[{"date":"2025-03-02","habitId":"r7","count":-9}]}
	}`
	if err := st.Import([]byte(doc)); err != nil {
		t.Fatal(err)
	}

	if len(st.Habits()) != 1 {
		t.Errorf("invalid habit elements should be dropped, got %d", len(st.Habits()))
	}
	logs := st.ReligiousHabitLogs()["2025-03-02"]
	if len(logs) != 1 || logs[0].Count != 0 {
		t.Errorf("imported counts should clamp, got %v", logs)
	}
}

func TestVerify(t *testing.T) {
	if err := Verify([]byte(`{"habits":[]}`)); err != nil {
		t.Errorf("habits anchor should verify: %v", err)
	}
	if err := Verify([]byte(`{"dailyEntries":{}}`)); err != nil {
		t.Errorf("dailyEntries anchor should verify: %v", err)
	}
	if err := Verify([]byte(`{"userName":"x"}`)); err != ErrNotBackup {
		t.Errorf("expected ErrNotBackup, got %v", err)
	}
	if err := Verify([]byte(`nope`)); err == nil {
		t.Error("expected parse error")
	}
}

// The full journey: onboard, track a day, export, lose everything,
// import into a fresh store and find the day intact.
func TestBackupJourney(t *testing.T) {
	st, _ := newTestStore(t)

	if err := st.SetUserName("Sara"); err != nil {
		t.Fatal(err)
	}
	if err := st.SetMood(models.MoodLoved); err != nil {
		t.Fatal(err)
	}
	if err := st.SetWater(8); err != nil {
		t.Fatal(err)
	}
	if err := st.SetTaskText(1, "journal before bed"); err != nil {
		t.Fatal(err)
	}
	for _, h := range st.Habits() {
		if err := st.LogHabit(h.ID, true); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := st.AddExercise("Yoga", 20, 80); err != nil {
		t.Fatal(err)
	}

	exported, err := st.Export()
	if err != nil {
		t.Fatal(err)
	}

	// Sanity: the export is the documented flat-key document.
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(exported, &doc); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"userName", "habits", "dailyEntries", "habitLogs"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("export missing key %q", key)
		}
	}

	// "New phone": empty storage.
	fresh, err := Open(storage.NewFileStore(t.TempDir()), testClock)
	if err != nil {
		t.Fatal(err)
	}
	if err := fresh.Import(exported); err != nil {
		t.Fatal(err)
	}

	if !fresh.AllHabitsDoneToday() {
		t.Error("restored day should have all habits done")
	}
	entry := fresh.TodayEntry()
	if entry.Mood != models.MoodLoved || entry.WaterCount != 8 {
		t.Errorf("restored entry = %+v", entry)
	}
	if len(entry.Exercises) != 1 || entry.Exercises[0].Name != "Yoga" {
		t.Errorf("restored exercises = %v", entry.Exercises)
	}
}
