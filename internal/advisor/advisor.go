// Package advisor wraps the generative-AI text service behind typed
// operations: calorie estimation, vitamin advice, henna recipes and
// diet plans. Every call is a one-shot request; failures are returned
// to the caller with no retry.
package advisor

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/daftar-app/daftar/internal/models"
)

// Options configures the OpenAI-compatible endpoint.
type Options struct {
	APIKey  string
	BaseURL string
	Model   string
}

type Advisor struct {
	model llms.Model
}

func New(opts Options) (*Advisor, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("advisor API key is not set")
	}

	model, err := openai.New(
		openai.WithToken(opts.APIKey),
		openai.WithBaseURL(opts.BaseURL),
		openai.WithModel(opts.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create advisor client: %w", err)
	}

	return &Advisor{model: model}, nil
}

// NewWithModel wires an explicit llms.Model; used by tests.
func NewWithModel(model llms.Model) *Advisor {
	return &Advisor{model: model}
}

func (a *Advisor) complete(ctx context.Context, prompt string) (string, error) {
	out, err := llms.GenerateFromSinglePrompt(ctx, a.model, prompt)
	if err != nil {
		return "", fmt.Errorf("advisor request failed: %w", err)
	}
	return out, nil
}

// EstimateCalories asks the service for a single calorie number for a
// meal description.
func (a *Advisor) EstimateCalories(ctx context.Context, description string) (int, error) {
	if description == "" {
		return 0, fmt.Errorf("meal description cannot be empty")
	}

	out, err := a.complete(ctx, caloriesPrompt(description))
	if err != nil {
		return 0, err
	}

	calories, err := parseCalories(out)
	if err != nil {
		return 0, fmt.Errorf("could not read calorie estimate: %w", err)
	}
	return calories, nil
}

// VitaminAdvice returns vitamin suggestions for the current profile.
func (a *Advisor) VitaminAdvice(ctx context.Context, profile models.Profile) ([]models.VitaminRecommendation, error) {
	out, err := a.complete(ctx, vitaminsPrompt(profile))
	if err != nil {
		return nil, err
	}

	var recs []models.VitaminRecommendation
	if err := parseJSON(out, &recs); err != nil {
		return nil, fmt.Errorf("could not read vitamin advice: %w", err)
	}
	return recs, nil
}

// HennaRecipe returns a free-text natural henna dye recipe.
func (a *Advisor) HennaRecipe(ctx context.Context, hairType, goal string) (string, error) {
	out, err := a.complete(ctx, hennaPrompt(hairType, goal))
	if err != nil {
		return "", err
	}
	return out, nil
}

// DietPlan returns a structured day plan for the requested kind.
func (a *Advisor) DietPlan(ctx context.Context, kind models.DietPlanKind, profile models.Profile) (models.DietPlan, error) {
	switch kind {
	case models.DietWeightLoss, models.DietMaintenance, models.DietWeightGain:
	default:
		return models.DietPlan{}, fmt.Errorf("invalid diet plan kind: %q", kind)
	}

	out, err := a.complete(ctx, dietPrompt(kind, profile))
	if err != nil {
		return models.DietPlan{}, err
	}

	var plan models.DietPlan
	if err := parseJSON(out, &plan); err != nil {
		return models.DietPlan{}, fmt.Errorf("could not read diet plan: %w", err)
	}
	plan.Type = kind
	return plan, nil
}
