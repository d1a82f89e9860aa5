package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/daftar-app/daftar/internal/advisor"
	"github.com/daftar-app/daftar/internal/keyring"
	"github.com/daftar-app/daftar/internal/models"
)

const adviceTimeout = 60 * time.Second

// newAdvisor builds the AI client from the configured endpoint and the
// stored API key.
func newAdvisor(ctx *Context) (*advisor.Advisor, error) {
	key, err := keyring.GetAPIKey()
	if err != nil {
		return nil, fmt.Errorf("no advisor API key (set one with: daftar key set): %w", err)
	}
	return advisor.New(advisor.Options{
		APIKey:  key,
		BaseURL: ctx.Config.Advisor.BaseURL,
		Model:   ctx.Config.Advisor.Model,
	})
}

type AdviceCaloriesCmd struct {
	Meal []string `arg:"" help:"Meal description."`
	Log  string   `short:"l" help:"Also log the estimate onto today's meal (breakfast|lunch|dinner)."`
}

func (c *AdviceCaloriesCmd) Run(ctx *Context) error {
	if err := ctx.requireName(); err != nil {
		return err
	}

	a, err := newAdvisor(ctx)
	if err != nil {
		return err
	}

	description := strings.Join(c.Meal, " ")
	reqCtx, cancel := context.WithTimeout(context.Background(), adviceTimeout)
	defer cancel()

	calories, err := a.EstimateCalories(reqCtx, description)
	if err != nil {
		return err
	}
	fmt.Printf("Estimated: ~%d kcal\n", calories)

	if c.Log != "" {
		var patch models.MealsPatch
		switch c.Log {
		case "breakfast":
			patch.Breakfast, patch.BreakfastCalories = &description, &calories
		case "lunch":
			patch.Lunch, patch.LunchCalories = &description, &calories
		case "dinner":
			patch.Dinner, patch.DinnerCalories = &description, &calories
		default:
			return fmt.Errorf("invalid meal: %q", c.Log)
		}
		if err := ctx.Store.UpdateMeals(patch); err != nil {
			return err
		}
		fmt.Printf("Logged to today's %s.\n", c.Log)
	}
	return nil
}

type AdviceVitaminsCmd struct{}

func (c *AdviceVitaminsCmd) Run(ctx *Context) error {
	if err := ctx.requireName(); err != nil {
		return err
	}

	a, err := newAdvisor(ctx)
	if err != nil {
		return err
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), adviceTimeout)
	defer cancel()

	recs, err := a.VitaminAdvice(reqCtx, ctx.Store.Profile())
	if err != nil {
		return err
	}

	fmt.Println("Vitamin suggestions:")
	for _, rec := range recs {
		fmt.Printf("  %s — %s\n", rec.Name, rec.Benefit)
		fmt.Printf("     pharmacy: %s\n", rec.Pharmacy)
		fmt.Printf("     natural:  %s\n", rec.Natural)
	}
	return nil
}

type AdviceHennaCmd struct {
	HairType string `arg:"" help:"Hair type, e.g. dry, oily, normal."`
	Goal     string `arg:"" help:"Goal, e.g. 'deep red color' or 'strengthening'."`
}

func (c *AdviceHennaCmd) Run(ctx *Context) error {
	if err := ctx.requireName(); err != nil {
		return err
	}

	a, err := newAdvisor(ctx)
	if err != nil {
		return err
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), adviceTimeout)
	defer cancel()

	recipe, err := a.HennaRecipe(reqCtx, c.HairType, c.Goal)
	if err != nil {
		return err
	}
	fmt.Println(recipe)
	return nil
}

type AdviceDietCmd struct {
	Kind string `arg:"" help:"Plan kind (weight-loss|maintenance|weight-gain)." default:"maintenance"`
}

func (c *AdviceDietCmd) Run(ctx *Context) error {
	if err := ctx.requireName(); err != nil {
		return err
	}

	a, err := newAdvisor(ctx)
	if err != nil {
		return err
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), adviceTimeout)
	defer cancel()

	plan, err := a.DietPlan(reqCtx, models.DietPlanKind(c.Kind), ctx.Store.Profile())
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", plan.Title, plan.Calories)
	printPlanSection("Breakfast", plan.Breakfast)
	printPlanSection("Lunch", plan.Lunch)
	printPlanSection("Dinner", plan.Dinner)
	printPlanSection("Snacks", plan.Snacks)
	return nil
}

func printPlanSection(label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("%s:\n", label)
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
}

type KeySetCmd struct {
	Key string `arg:"" help:"Advisor API key to store in the OS keyring."`
}

func (c *KeySetCmd) Run(ctx *Context) error {
	if err := keyring.SetAPIKey(c.Key); err != nil {
		return err
	}
	fmt.Println("API key stored.")
	return nil
}

type KeyDeleteCmd struct{}

func (c *KeyDeleteCmd) Run(ctx *Context) error {
	if err := keyring.DeleteAPIKey(); err != nil {
		return err
	}
	fmt.Println("API key removed.")
	return nil
}
