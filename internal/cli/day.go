package cli

import (
	"fmt"
	"time"

	"github.com/daftar-app/daftar/internal/constants"
	"github.com/daftar-app/daftar/internal/models"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	if err := ctx.requireName(); err != nil {
		return err
	}
	printDay(ctx, ctx.Store.Today(), ctx.Store.TodayEntry())
	return nil
}

type DayCmd struct {
	Date string `arg:"" help:"Date to show (YYYY-MM-DD)."`
}

func (c *DayCmd) Run(ctx *Context) error {
	if err := ctx.requireName(); err != nil {
		return err
	}

	if _, err := time.Parse(constants.DateFormat, c.Date); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", c.Date)
	}

	entry, ok := ctx.Store.Entry(c.Date)
	if !ok {
		fmt.Printf("Nothing recorded on %s.\n", c.Date)
		return nil
	}
	printDay(ctx, c.Date, entry)
	return nil
}

func printDay(ctx *Context, date string, entry models.DailyEntry) {
	fmt.Printf("── %s ──\n", date)

	if entry.Mood != "" {
		fmt.Printf("Mood: %s\n", entry.Mood)
	}

	water := fmt.Sprintf("Water: %d/%d cups", entry.WaterCount, constants.DefaultWaterGoal)
	if entry.ChiaWater {
		water += " (+chia)"
	}
	fmt.Println(water)

	if entry.Weight != nil {
		fmt.Printf("Weight: %.1f kg\n", *entry.Weight)
	}

	fmt.Println("Tasks:")
	for _, t := range entry.Tasks {
		text := t.Text
		if text == "" {
			text = "(empty)"
		}
		fmt.Printf("  %d. %s %s\n", t.ID, checkbox(t.Done), text)
	}

	if meals := formatMeals(entry.Meals); meals != "" {
		fmt.Println("Meals:")
		fmt.Print(meals)
	}

	if len(entry.Exercises) > 0 {
		fmt.Println("Exercises:")
		for _, ex := range entry.Exercises {
			fmt.Printf("  %s — %d min, %d kcal (ID: %s)\n", ex.Name, ex.DurationMin, ex.CaloriesBurned, ex.ID)
		}
	}

	if len(entry.Drinks) > 0 {
		fmt.Println("Drinks:")
		for _, d := range entry.Drinks {
			fmt.Printf("  %s %s %s (ID: %s)\n", d.Timestamp, d.Icon, d.Name, d.ID)
		}
	}

	if entry.Notes != "" {
		fmt.Printf("Notes: %s\n", entry.Notes)
	}
	if entry.Journal != "" {
		fmt.Printf("Journal: %s\n", entry.Journal)
	}

	if date == ctx.Store.Today() {
		done := 0
		habits := ctx.Store.Habits()
		for _, h := range habits {
			if log, ok := ctx.Store.HabitLogForToday(h.ID); ok && log.Done {
				done++
			}
		}
		fmt.Printf("Habits: %d/%d done\n", done, len(habits))
	}
}

func formatMeals(m models.Meals) string {
	out := ""
	for _, meal := range []struct {
		label, text string
		calories    *int
	}{
		{"breakfast", m.Breakfast, m.BreakfastCalories},
		{"lunch", m.Lunch, m.LunchCalories},
		{"dinner", m.Dinner, m.DinnerCalories},
	} {
		if meal.text == "" {
			continue
		}
		out += fmt.Sprintf("  %s: %s", meal.label, meal.text)
		if meal.calories != nil {
			out += fmt.Sprintf(" (~%d kcal)", *meal.calories)
		}
		out += "\n"
	}
	return out
}

type MonthCmd struct {
	Month string `arg:"" optional:"" help:"Month to summarize (YYYY-MM). Defaults to the current month."`
}

func (c *MonthCmd) Run(ctx *Context) error {
	if err := ctx.requireName(); err != nil {
		return err
	}

	month := c.Month
	if month == "" {
		month = ctx.Store.Today()[:7]
	}
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return fmt.Errorf("invalid month %q (expected YYYY-MM)", month)
	}

	entries := ctx.Store.DailyEntries()
	habitLogs := ctx.Store.HabitLogs()
	habitCount := len(ctx.Store.Habits())

	fmt.Printf("── %s ──\n", month)
	days := 0
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		date := d.Format(constants.DateFormat)
		entry, hasEntry := entries[date]
		logs := habitLogs[date]
		if !hasEntry && len(logs) == 0 {
			continue
		}
		days++

		done := 0
		for _, log := range logs {
			if log.Done {
				done++
			}
		}

		mood := string(entry.Mood)
		if mood == "" {
			mood = " "
		}
		fmt.Printf("  %s  %s  water %d  habits %d/%d\n", date, mood, entry.WaterCount, done, habitCount)
	}

	if days == 0 {
		fmt.Println("  nothing recorded")
	}
	return nil
}
