package cli

import "fmt"

type SportAddCmd struct {
	Name     string `arg:"" help:"Exercise name."`
	Duration int    `short:"d" help:"Duration in minutes." required:""`
	Calories int    `short:"c" help:"Calories burned." default:"0"`
}

func (c *SportAddCmd) Run(ctx *Context) error {
	if err := ctx.requireName(); err != nil {
		return err
	}

	ex, err := ctx.Store.AddExercise(c.Name, c.Duration, c.Calories)
	if err != nil {
		return err
	}
	fmt.Printf("Logged exercise: %s — %d min, %d kcal (ID: %s)\n", ex.Name, ex.DurationMin, ex.CaloriesBurned, ex.ID)
	return nil
}

type SportDeleteCmd struct {
	ID string `arg:"" help:"Exercise ID to remove from today."`
}

func (c *SportDeleteCmd) Run(ctx *Context) error {
	if err := ctx.requireName(); err != nil {
		return err
	}
	if err := ctx.Store.DeleteExercise(c.ID); err != nil {
		return err
	}
	fmt.Println("Exercise removed.")
	return nil
}
