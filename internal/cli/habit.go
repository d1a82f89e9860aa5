package cli

import (
	"fmt"

	"github.com/daftar-app/daftar/internal/models"
)

type HabitAddCmd struct {
	Name       string `arg:"" help:"Habit name."`
	Icon       string `short:"i" help:"Emoji icon." default:"⭐"`
	Goal       string `short:"g" help:"Goal description, e.g. '8 cups'."`
	Type       string `short:"t" help:"Habit type (daily|weekly|custom)." default:"daily"`
	WeeklyGoal int    `short:"w" help:"Times per week for weekly habits." default:"1"`
	Remind     string `short:"r" help:"Reminder time (HH:MM)."`
	Color      string `short:"c" help:"Accent color hex." default:"#60a5fa"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := ctx.requireName(); err != nil {
		return err
	}

	habit := models.Habit{
		Name:         c.Name,
		Icon:         c.Icon,
		Goal:         c.Goal,
		Type:         models.HabitType(c.Type),
		ReminderTime: c.Remind,
		AccentColor:  c.Color,
	}
	if habit.Type == models.HabitWeekly {
		habit.WeeklyGoal = c.WeeklyGoal
	}

	added, err := ctx.Store.AddHabit(habit)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s %s (ID: %s)\n", added.Icon, added.Name, added.ID)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	if err := ctx.requireName(); err != nil {
		return err
	}

	habits := ctx.Store.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits yet.")
		return nil
	}

	fmt.Println("Habits:")
	for _, h := range habits {
		log, ok := ctx.Store.HabitLogForToday(h.ID)
		done := ok && log.Done

		detail := string(h.Type)
		if h.Type == models.HabitWeekly {
			detail = fmt.Sprintf("weekly x%d", h.WeeklyGoal)
		}
		if h.ReminderTime != "" {
			detail += ", remind " + h.ReminderTime
		}

		line := fmt.Sprintf("  %s %s %s", checkbox(done), h.Icon, h.Name)
		if h.Goal != "" {
			line += " — " + h.Goal
		}
		fmt.Printf("%s (%s)\n     ID: %s\n", line, detail, h.ID)
	}
	return nil
}

type HabitDoneCmd struct {
	ID   string `arg:"" help:"Habit ID."`
	Undo bool   `short:"u" help:"Unmark instead of marking done."`
}

func (c *HabitDoneCmd) Run(ctx *Context) error {
	if err := ctx.requireName(); err != nil {
		return err
	}

	if err := ctx.Store.LogHabit(c.ID, !c.Undo); err != nil {
		return err
	}

	habit, _ := ctx.Store.Habit(c.ID)
	if c.Undo {
		fmt.Printf("Unmarked: %s\n", habit.Name)
	} else {
		fmt.Printf("Done: %s %s\n", habit.Icon, habit.Name)
		if ctx.Store.AllHabitsDoneToday() {
			fmt.Println("All habits done today! 🎉")
		}
	}
	return nil
}
