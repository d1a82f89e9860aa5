package cli

import (
	"fmt"

	"github.com/daftar-app/daftar/internal/constants"
	"github.com/daftar-app/daftar/internal/models"
)

type MoodCmd struct {
	Mood string `arg:"" help:"Mood emoji or name (loved|happy|neutral|worried|crying|angry)."`
}

// moodNames maps spelled-out names to the emoji values so the command
// works in terminals where typing emoji is awkward.
var moodNames = map[string]models.Mood{
	"loved":   models.MoodLoved,
	"happy":   models.MoodHappy,
	"neutral": models.MoodNeutral,
	"worried": models.MoodWorried,
	"crying":  models.MoodCrying,
	"angry":   models.MoodAngry,
}

func (c *MoodCmd) Run(ctx *Context) error {
	if err := ctx.requireName(); err != nil {
		return err
	}

	mood := models.Mood(c.Mood)
	if named, ok := moodNames[c.Mood]; ok {
		mood = named
	}

	if err := ctx.Store.SetMood(mood); err != nil {
		return err
	}
	fmt.Printf("Mood for today: %s\n", mood)
	return nil
}

type WaterCmd struct {
	Count string `arg:"" optional:"" help:"Cup count, or +/- to adjust by one. Omit to show."`
	Chia  bool   `help:"Toggle the chia water flag instead."`
}

func (c *WaterCmd) Run(ctx *Context) error {
	if err := ctx.requireName(); err != nil {
		return err
	}

	if c.Chia {
		if err := ctx.Store.ToggleChiaWater(); err != nil {
			return err
		}
		entry := ctx.Store.TodayEntry()
		if entry.ChiaWater {
			fmt.Println("Chia water: on")
		} else {
			fmt.Println("Chia water: off")
		}
		return nil
	}

	entry := ctx.Store.TodayEntry()
	switch c.Count {
	case "":
		fmt.Printf("Water: %d/%d cups\n", entry.WaterCount, constants.DefaultWaterGoal)
		return nil
	case "+":
		if err := ctx.Store.SetWater(entry.WaterCount + 1); err != nil {
			return err
		}
	case "-":
		if err := ctx.Store.SetWater(entry.WaterCount - 1); err != nil {
			return err
		}
	default:
		n, err := parsePositiveInt(c.Count, "cup count")
		if err != nil {
			return err
		}
		if err := ctx.Store.SetWater(n); err != nil {
			return err
		}
	}

	entry = ctx.Store.TodayEntry()
	fmt.Printf("Water: %d/%d cups\n", entry.WaterCount, constants.DefaultWaterGoal)
	if entry.WaterCount >= constants.DefaultWaterGoal {
		fmt.Println("Water goal reached! 💧")
	}
	return nil
}

type TaskCmd struct {
	Slot int    `arg:"" help:"Task slot (1-3)."`
	Text string `arg:"" optional:"" help:"Task text to set. Omit to toggle done."`
}

func (c *TaskCmd) Run(ctx *Context) error {
	if err := ctx.requireName(); err != nil {
		return err
	}

	if c.Text != "" {
		if err := ctx.Store.SetTaskText(c.Slot, c.Text); err != nil {
			return err
		}
		fmt.Printf("Task %d: %s\n", c.Slot, c.Text)
		return nil
	}

	entry := ctx.Store.TodayEntry()
	task := entry.Task(c.Slot)
	if task == nil {
		return fmt.Errorf("task slot out of range: %d", c.Slot)
	}

	if err := ctx.Store.SetTaskDone(c.Slot, !task.Done); err != nil {
		return err
	}
	fmt.Printf("Task %d: %s %s\n", c.Slot, checkbox(!task.Done), task.Text)
	return nil
}

type MealCmd struct {
	Meal     string `arg:"" help:"Which meal (breakfast|lunch|dinner)."`
	Text     string `arg:"" help:"Meal description."`
	Calories int    `short:"c" help:"Estimated calories." default:"-1"`
}

func (c *MealCmd) Run(ctx *Context) error {
	if err := ctx.requireName(); err != nil {
		return err
	}

	var patch models.MealsPatch
	switch c.Meal {
	case "breakfast":
		patch.Breakfast = &c.Text
		if c.Calories >= 0 {
			patch.BreakfastCalories = &c.Calories
		}
	case "lunch":
		patch.Lunch = &c.Text
		if c.Calories >= 0 {
			patch.LunchCalories = &c.Calories
		}
	case "dinner":
		patch.Dinner = &c.Text
		if c.Calories >= 0 {
			patch.DinnerCalories = &c.Calories
		}
	default:
		return fmt.Errorf("invalid meal: %q (expected breakfast, lunch or dinner)", c.Meal)
	}

	if err := ctx.Store.UpdateMeals(patch); err != nil {
		return err
	}
	fmt.Printf("Logged %s: %s\n", c.Meal, c.Text)
	return nil
}

type NotesCmd struct {
	Text string `arg:"" help:"Today's notes."`
}

func (c *NotesCmd) Run(ctx *Context) error {
	if err := ctx.requireName(); err != nil {
		return err
	}
	if err := ctx.Store.SetNotes(c.Text); err != nil {
		return err
	}
	fmt.Println("Notes saved.")
	return nil
}

type JournalCmd struct {
	Text  string `arg:"" help:"Journal text for today."`
	Image string `short:"i" help:"Image reference to attach."`
}

func (c *JournalCmd) Run(ctx *Context) error {
	if err := ctx.requireName(); err != nil {
		return err
	}
	if err := ctx.Store.UpdateJournal(c.Text, c.Image); err != nil {
		return err
	}
	fmt.Println("Journal saved.")
	return nil
}
