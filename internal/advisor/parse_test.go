package advisor

import (
	"strings"
	"testing"

	"github.com/daftar-app/daftar/internal/models"
)

func TestParseCalories(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{"bare number", "450", 450, false},
		{"with whitespace", "  320 \n", 320, false},
		{"with unit", "450 kcal", 450, false},
		{"wrapped in prose", "That meal is roughly 620 calories.", 620, false},
		{"first number wins", "between 400 and 500", 400, false},
		{"zero", "0", 0, false},
		{"no number", "I cannot estimate that.", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCalories(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseCalories(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseCalories(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseJSON(t *testing.T) {
	type item struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"bare array", `[{"name":"iron"},{"name":"d3"}]`, []string{"iron", "d3"}},
		{"json fence", "```json\n[{\"name\":\"iron\"}]\n```", []string{"iron"}},
		{"plain fence", "```\n[{\"name\":\"iron\"}]\n```", []string{"iron"}},
		{"surrounding prose", `Here you go: [{"name":"iron"}] Hope that helps!`, []string{"iron"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var items []item
			if err := parseJSON(tt.in, &items); err != nil {
				t.Fatalf("parseJSON(%q): %v", tt.in, err)
			}
			if len(items) != len(tt.want) {
				t.Fatalf("got %d items, want %d", len(items), len(tt.want))
			}
			for i, want := range tt.want {
				if items[i].Name != want {
					t.Errorf("items[%d].Name = %q, want %q", i, items[i].Name, want)
				}
			}
		})
	}
}

func TestParseJSONObject(t *testing.T) {
	var plan struct {
		Title    string `json:"title"`
		Calories string `json:"calories"`
	}
	in := "```json\n{\"title\":\"Maintenance day\",\"calories\":\"1600 kcal\"}\n```"
	if err := parseJSON(in, &plan); err != nil {
		t.Fatal(err)
	}
	if plan.Title != "Maintenance day" || plan.Calories != "1600 kcal" {
		t.Errorf("plan = %+v", plan)
	}
}

func TestParseJSONMalformed(t *testing.T) {
	var dst any
	if err := parseJSON("no payload here", &dst); err == nil {
		t.Error("expected error for prose with no JSON")
	}
	if err := parseJSON(`{"broken":`, &dst); err == nil {
		t.Error("expected error for truncated JSON")
	}
}

func TestPromptsCarryProfile(t *testing.T) {
	w, target, h, a := 60.0, 55.0, 165, 28
	profile := models.Profile{CurrentWeight: &w, TargetWeight: &target, Height: &h, Age: &a}

	prompt := vitaminsPrompt(profile)
	for _, want := range []string{"60.0 kg", "55.0 kg", "165 cm", "age 28"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("vitamins prompt missing %q:\n%s", want, prompt)
		}
	}

	diet := dietPrompt(models.DietWeightLoss, profile)
	if !strings.Contains(diet, string(models.DietWeightLoss)) {
		t.Errorf("diet prompt missing kind:\n%s", diet)
	}
	if !strings.Contains(diet, "JSON object") {
		t.Errorf("diet prompt missing format instructions:\n%s", diet)
	}

	// An empty profile reads naturally, without dangling fragments.
	bare := vitaminsPrompt(models.Profile{})
	if strings.Contains(bare, "kg") || strings.Contains(bare, "cm") {
		t.Errorf("empty profile leaked metrics:\n%s", bare)
	}
}

func TestCaloriesPromptQuotesMeal(t *testing.T) {
	prompt := caloriesPrompt("2 eggs and toast")
	if !strings.Contains(prompt, `"2 eggs and toast"`) {
		t.Errorf("prompt = %q", prompt)
	}
	if !strings.Contains(prompt, "single integer") {
		t.Errorf("prompt missing reply constraint: %q", prompt)
	}
}
