package advisor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tmc/langchaingo/llms"

	"github.com/daftar-app/daftar/internal/models"
)

// fakeModel returns a canned reply and records the prompts it saw.
type fakeModel struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	for _, msg := range messages {
		for _, part := range msg.Parts {
			if text, ok := part.(llms.TextContent); ok {
				f.prompts = append(f.prompts, text.Text)
			}
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.reply}},
	}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, _ ...llms.CallOption) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestNewRequiresKey(t *testing.T) {
	if _, err := New(Options{BaseURL: "https://example.test", Model: "m"}); err == nil {
		t.Error("expected error for missing API key")
	}
}

func TestEstimateCalories(t *testing.T) {
	model := &fakeModel{reply: "The meal is about 540 kcal."}
	a := NewWithModel(model)

	got, err := a.EstimateCalories(context.Background(), "chicken freekeh bowl")
	if err != nil {
		t.Fatal(err)
	}
	if got != 540 {
		t.Errorf("calories = %d", got)
	}
	if len(model.prompts) != 1 || !strings.Contains(model.prompts[0], "chicken freekeh bowl") {
		t.Errorf("prompts = %v", model.prompts)
	}

	if _, err := a.EstimateCalories(context.Background(), ""); err == nil {
		t.Error("empty description must be rejected before any request")
	}
}

func TestEstimateCaloriesUnusableReply(t *testing.T) {
	a := NewWithModel(&fakeModel{reply: "I would rather not say."})
	if _, err := a.EstimateCalories(context.Background(), "toast"); err == nil {
		t.Error("expected error for a reply without a number")
	}
}

func TestVitaminAdvice(t *testing.T) {
	reply := "```json\n" + `[{"name":"Iron","pharmacy":"ferrous sulfate","natural":"lentils","benefit":"energy"}]` + "\n```"
	a := NewWithModel(&fakeModel{reply: reply})

	recs, err := a.VitaminAdvice(context.Background(), models.Profile{})
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].Name != "Iron" || recs[0].Natural != "lentils" {
		t.Errorf("recs = %+v", recs)
	}
}

func TestDietPlan(t *testing.T) {
	reply := `{"title":"Light day","calories":"1500-1700 kcal","breakfast":["labneh toast"],"lunch":["lentil soup"],"dinner":["salad"],"snacks":["apple"]}`
	a := NewWithModel(&fakeModel{reply: reply})

	plan, err := a.DietPlan(context.Background(), models.DietWeightLoss, models.Profile{})
	if err != nil {
		t.Fatal(err)
	}
	if plan.Type != models.DietWeightLoss {
		t.Errorf("plan type = %q", plan.Type)
	}
	if plan.Title != "Light day" || len(plan.Breakfast) != 1 {
		t.Errorf("plan = %+v", plan)
	}

	if _, err := a.DietPlan(context.Background(), "keto", models.Profile{}); err == nil {
		t.Error("unknown plan kind must be rejected")
	}
}

func TestRequestFailurePropagates(t *testing.T) {
	a := NewWithModel(&fakeModel{err: errors.New("upstream down")})
	if _, err := a.HennaRecipe(context.Background(), "dry", "auburn shine"); err == nil {
		t.Error("expected upstream error to surface")
	}
}
