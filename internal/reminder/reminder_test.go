package reminder

import (
	"errors"
	"testing"
	"time"

	"github.com/daftar-app/daftar/internal/models"
)

type fakeStore struct {
	habits []models.Habit
	done   map[string]bool
}

func (f *fakeStore) Habits() []models.Habit { return f.habits }

func (f *fakeStore) HabitLogForToday(habitID string) (models.HabitLog, bool) {
	done, ok := f.done[habitID]
	if !ok {
		return models.HabitLog{}, false
	}
	return models.HabitLog{HabitID: habitID, Done: done}, true
}

type fakeSender struct {
	available bool
	failWith  error
	sent      []string
}

func (f *fakeSender) Available() bool { return f.available }

func (f *fakeSender) Notify(text string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.sent = append(f.sent, text)
	return nil
}

func at(hhmm string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", "2025-03-10 "+hhmm)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDue(t *testing.T) {
	store := &fakeStore{
		habits: []models.Habit{
			{ID: "h1", Name: "Walk", ReminderTime: "07:30"},
			{ID: "h2", Name: "Read", ReminderTime: "21:00"},
			{ID: "h3", Name: "Water"},
			{ID: "h4", Name: "Stretch", ReminderTime: "07:30"},
		},
		done: map[string]bool{"h4": true},
	}
	checker := New(store, &fakeSender{available: true})

	due := checker.Due(at("07:30"))
	if len(due) != 1 || due[0].ID != "h1" {
		t.Fatalf("due at 07:30 = %v", due)
	}

	if due := checker.Due(at("07:31")); len(due) != 0 {
		t.Errorf("nothing is due off the exact minute, got %v", due)
	}
	if due := checker.Due(at("21:00")); len(due) != 1 || due[0].ID != "h2" {
		t.Errorf("due at 21:00 = %v", due)
	}
}

func TestDueSkipsUndoneLogEntry(t *testing.T) {
	// A log row with done=false does not suppress the reminder.
	store := &fakeStore{
		habits: []models.Habit{{ID: "h1", Name: "Walk", ReminderTime: "07:30"}},
		done:   map[string]bool{"h1": false},
	}
	checker := New(store, &fakeSender{available: true})
	if due := checker.Due(at("07:30")); len(due) != 1 {
		t.Errorf("unmarked habit should still be due, got %v", due)
	}
}

func TestCheckSends(t *testing.T) {
	store := &fakeStore{
		habits: []models.Habit{{ID: "h1", Name: "Walk", Icon: "🚶‍♀️", ReminderTime: "07:30"}},
	}
	sender := &fakeSender{available: true}
	checker := New(store, sender)

	if sent := checker.Check(at("07:30")); sent != 1 {
		t.Fatalf("sent = %d", sent)
	}
	if len(sender.sent) != 1 || sender.sent[0] != "Time for: Walk 🚶‍♀️" {
		t.Errorf("notification = %v", sender.sent)
	}
}

func TestCheckUnavailableSender(t *testing.T) {
	store := &fakeStore{
		habits: []models.Habit{{ID: "h1", Name: "Walk", ReminderTime: "07:30"}},
	}
	sender := &fakeSender{available: false}
	checker := New(store, sender)

	if sent := checker.Check(at("07:30")); sent != 0 {
		t.Errorf("unavailable sender must short-circuit, sent %d", sent)
	}
	if len(sender.sent) != 0 {
		t.Errorf("notifications delivered anyway: %v", sender.sent)
	}
}

func TestCheckDeliveryFailure(t *testing.T) {
	store := &fakeStore{
		habits: []models.Habit{
			{ID: "h1", Name: "Walk", ReminderTime: "07:30"},
		},
	}
	sender := &fakeSender{available: true, failWith: errors.New("tray gone")}
	checker := New(store, sender)

	// Failures are logged and counted out, never surfaced.
	if sent := checker.Check(at("07:30")); sent != 0 {
		t.Errorf("failed delivery counted as sent: %d", sent)
	}
}
