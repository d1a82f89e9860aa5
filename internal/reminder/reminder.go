// Package reminder evaluates habit reminder times against the clock
// and raises local notifications for habits still undone today.
package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/daftar-app/daftar/internal/constants"
	"github.com/daftar-app/daftar/internal/logger"
	"github.com/daftar-app/daftar/internal/models"
)

// Sender delivers one notification. Satisfied by notifier.Notifier.
type Sender interface {
	Available() bool
	Notify(text string) error
}

// StoreView is the slice of the domain store the checker reads.
type StoreView interface {
	Habits() []models.Habit
	HabitLogForToday(habitID string) (models.HabitLog, bool)
}

// Checker fires habit reminders. Best-effort: a habit is notified when
// its reminder time equals the current HH:MM and it has no done log
// today, at most once per exact minute match.
type Checker struct {
	store  StoreView
	sender Sender
}

func New(store StoreView, sender Sender) *Checker {
	return &Checker{store: store, sender: sender}
}

// Due returns the habits whose reminder matches now and which are not
// already done today.
func (c *Checker) Due(now time.Time) []models.Habit {
	current := now.Format(constants.TimeFormat)

	var due []models.Habit
	for _, habit := range c.store.Habits() {
		if habit.ReminderTime == "" || habit.ReminderTime != current {
			continue
		}
		if log, ok := c.store.HabitLogForToday(habit.ID); ok && log.Done {
			continue
		}
		due = append(due, habit)
	}
	return due
}

// Check evaluates reminders for now and sends a notification per due
// habit. Skipped entirely when the notifier is unavailable; delivery
// failures are logged, never returned.
func (c *Checker) Check(now time.Time) int {
	if !c.sender.Available() {
		return 0
	}

	sent := 0
	for _, habit := range c.Due(now) {
		text := fmt.Sprintf("Time for: %s %s", habit.Name, habit.Icon)
		if err := c.sender.Notify(text); err != nil {
			logger.Warn("Failed to deliver reminder", "habit", habit.Name, "error", err)
			continue
		}
		sent++
	}
	return sent
}

// Watch runs Check once per minute, aligned to minute boundaries so
// each reminder time is evaluated exactly once, until ctx is done.
func (c *Checker) Watch(ctx context.Context) {
	// Align to the next minute boundary before ticking.
	now := time.Now()
	next := now.Truncate(time.Minute).Add(time.Minute)
	select {
	case <-ctx.Done():
		return
	case <-time.After(next.Sub(now)):
	}

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	c.Check(time.Now())
	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			c.Check(t)
		}
	}
}
