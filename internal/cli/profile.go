package cli

import "fmt"

type WeightCmd struct {
	Weight float64 `arg:"" optional:"" help:"Current weight in kg. Omit to show the profile." default:"-1"`
	Clear  bool    `help:"Clear the stored current weight."`
}

func (c *WeightCmd) Run(ctx *Context) error {
	if err := ctx.requireName(); err != nil {
		return err
	}

	if c.Clear {
		if err := ctx.Store.SetCurrentWeight(nil); err != nil {
			return err
		}
		fmt.Println("Current weight cleared.")
		return nil
	}

	if c.Weight >= 0 {
		w := c.Weight
		if err := ctx.Store.SetCurrentWeight(&w); err != nil {
			return err
		}
		fmt.Printf("Current weight: %.1f kg (recorded on today's entry)\n", w)
	}

	profile := ctx.Store.Profile()
	if profile.CurrentWeight != nil && profile.TargetWeight != nil {
		diff := *profile.CurrentWeight - *profile.TargetWeight
		fmt.Printf("Target: %.1f kg (%.1f kg to go)\n", *profile.TargetWeight, diff)
	}
	if calories := profile.DailyCalories(); calories > 0 {
		fmt.Printf("Estimated maintenance: %d kcal/day\n", calories)
	}
	return nil
}

type ProfileCmd struct {
	Target   float64 `help:"Target weight in kg." default:"-1"`
	Height   int     `help:"Height in cm." default:"-1"`
	Age      int     `help:"Age in years." default:"-1"`
	Activity float64 `help:"Activity multiplier (1.2 sedentary .. 1.9 athlete)." default:"-1"`
}

func (c *ProfileCmd) Run(ctx *Context) error {
	if err := ctx.requireName(); err != nil {
		return err
	}

	if c.Target >= 0 {
		w := c.Target
		if err := ctx.Store.SetTargetWeight(&w); err != nil {
			return err
		}
	}
	if c.Height >= 0 {
		h := c.Height
		if err := ctx.Store.SetHeight(&h); err != nil {
			return err
		}
	}
	if c.Age >= 0 {
		a := c.Age
		if err := ctx.Store.SetAge(&a); err != nil {
			return err
		}
	}
	if c.Activity >= 0 {
		lvl := c.Activity
		if err := ctx.Store.SetActivityLevel(&lvl); err != nil {
			return err
		}
	}

	profile := ctx.Store.Profile()
	fmt.Println("Profile:")
	if profile.CurrentWeight != nil {
		fmt.Printf("  weight: %.1f kg\n", *profile.CurrentWeight)
	}
	if profile.TargetWeight != nil {
		fmt.Printf("  target: %.1f kg\n", *profile.TargetWeight)
	}
	if profile.Height != nil {
		fmt.Printf("  height: %d cm\n", *profile.Height)
	}
	if profile.Age != nil {
		fmt.Printf("  age: %d\n", *profile.Age)
	}
	if profile.ActivityLevel != nil {
		fmt.Printf("  activity: %.2f\n", *profile.ActivityLevel)
	}
	if calories := profile.DailyCalories(); calories > 0 {
		fmt.Printf("  maintenance: %d kcal/day\n", calories)
	}
	return nil
}
