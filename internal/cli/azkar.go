package cli

import (
	"fmt"

	"github.com/daftar-app/daftar/internal/catalog"
	"github.com/daftar-app/daftar/internal/models"
)

type AzkarListCmd struct{}

func (c *AzkarListCmd) Run(ctx *Context) error {
	if err := ctx.requireName(); err != nil {
		return err
	}

	fmt.Println("Religious habits:")
	for _, h := range ctx.Store.ReligiousHabits() {
		if h.HasCounter {
			log, _ := ctx.Store.ReligiousHabitLogForToday(h.ID)
			fmt.Printf("  %s %s — %d today\n     ID: %s\n", h.Icon, h.Name, log.Count, h.ID)
			continue
		}
		fmt.Printf("  %s %s\n     ID: %s\n", h.Icon, h.Name, h.ID)
	}
	return nil
}

type AzkarCountCmd struct {
	ID    string `arg:"" help:"Religious habit ID."`
	Count int    `arg:"" optional:"" help:"Repetition count for today. Omit to increment by one." default:"-1"`
}

func (c *AzkarCountCmd) Run(ctx *Context) error {
	if err := ctx.requireName(); err != nil {
		return err
	}

	habit, ok := ctx.Store.ReligiousHabit(c.ID)
	if !ok {
		return fmt.Errorf("habit not found: %s", c.ID)
	}

	count := c.Count
	if count < 0 {
		log, _ := ctx.Store.ReligiousHabitLogForToday(c.ID)
		count = log.Count + 1
	}

	if err := ctx.Store.SetReligiousCount(c.ID, count); err != nil {
		return err
	}

	log, _ := ctx.Store.ReligiousHabitLogForToday(c.ID)
	fmt.Printf("%s %s: %d today\n", habit.Icon, habit.Name, log.Count)
	return nil
}

type AzkarShowCmd struct {
	Category string `arg:"" help:"Azkar category (morning|evening|sleep)."`
}

func (c *AzkarShowCmd) Run(ctx *Context) error {
	if err := ctx.requireName(); err != nil {
		return err
	}

	category := models.AzkarCategory(c.Category)
	items, ok := catalog.AzkarList(category)
	if !ok {
		return fmt.Errorf("no azkar list for category: %q", c.Category)
	}

	fmt.Printf("%s azkar:\n", c.Category)
	for _, item := range items {
		fmt.Printf("  %s", item.Text)
		if item.Count > 1 {
			fmt.Printf("  (x%d)", item.Count)
		}
		if item.Note != "" {
			fmt.Printf("  [%s]", item.Note)
		}
		fmt.Println()
	}

	// Reading a list counts toward the mapped habit's counter.
	if habit, ok := catalog.AzkarHabit(ctx.Store.ReligiousHabits(), category); ok {
		log, _ := ctx.Store.ReligiousHabitLogForToday(habit.ID)
		if err := ctx.Store.SetReligiousCount(habit.ID, log.Count+1); err != nil {
			return err
		}
		fmt.Printf("\nCounted toward: %s %s\n", habit.Icon, habit.Name)
	}
	return nil
}
