package catalog

import (
	"testing"

	"github.com/daftar-app/daftar/internal/models"
)

func TestAzkarList(t *testing.T) {
	for _, c := range models.AzkarCategories {
		items, ok := AzkarList(c)
		if !ok || len(items) == 0 {
			t.Errorf("category %q has no built-in list", c)
			continue
		}
		for i, item := range items {
			if item.Text == "" || item.Count < 1 {
				t.Errorf("%s[%d] malformed: %+v", c, i, item)
			}
		}
	}
	if _, ok := AzkarList(models.AzkarNone); ok {
		t.Error("none must not have a list")
	}
}

func TestAzkarHabit(t *testing.T) {
	habits := InitialReligiousHabits()

	for _, tt := range []struct {
		category models.AzkarCategory
		wantID   string
	}{
		{models.AzkarMorning, "r10"},
		{models.AzkarEvening, "r11"},
		{models.AzkarSleep, "r12"},
	} {
		habit, ok := AzkarHabit(habits, tt.category)
		if !ok || habit.ID != tt.wantID {
			t.Errorf("AzkarHabit(%s) = %q, %v", tt.category, habit.ID, ok)
		}
	}

	// The zero category never matches, even though most seeds carry it.
	if _, ok := AzkarHabit(habits, models.AzkarNone); ok {
		t.Error("none must never resolve to a habit")
	}
	if _, ok := AzkarHabit(nil, models.AzkarMorning); ok {
		t.Error("empty habit list cannot match")
	}
}

func TestSeedsAreWellFormed(t *testing.T) {
	habits := InitialHabits()
	if len(habits) != 6 {
		t.Fatalf("expected 6 starter habits, got %d", len(habits))
	}
	seen := map[string]bool{}
	for _, h := range habits {
		if err := h.Validate(); err != nil {
			t.Errorf("seed habit %q invalid: %v", h.Name, err)
		}
		if seen[h.ID] {
			t.Errorf("duplicate seed id %q", h.ID)
		}
		seen[h.ID] = true
	}

	religious := InitialReligiousHabits()
	if len(religious) != 12 {
		t.Fatalf("expected 12 devotional habits, got %d", len(religious))
	}
	counters := 0
	for _, h := range religious {
		if h.ID == "" || h.Name == "" {
			t.Errorf("malformed devotional seed: %+v", h)
		}
		if h.HasCounter {
			counters++
		}
	}
	if counters != 3 {
		t.Errorf("expected 3 counter habits, got %d", counters)
	}
}

func TestBuiltinCatalogs(t *testing.T) {
	types := map[models.MaskType]bool{}
	for _, m := range BuiltinMasks() {
		if m.ID == "" || len(m.Ingredients) == 0 {
			t.Errorf("malformed mask: %+v", m)
		}
		types[m.Type] = true
	}
	for _, want := range []models.MaskType{models.MaskFace, models.MaskHair, models.MaskBody} {
		if !types[want] {
			t.Errorf("no built-in %s mask", want)
		}
	}

	for _, r := range BuiltinRecipes() {
		if r.ID == "" || r.Calories <= 0 || len(r.Steps) == 0 {
			t.Errorf("malformed recipe: %+v", r)
		}
	}

	drinkTypes := map[models.DrinkType]bool{
		models.DrinkHot: true, models.DrinkCold: true, models.DrinkFemininity: true,
	}
	for _, p := range DrinkPresets() {
		if p.Name == "" || !drinkTypes[p.Type] {
			t.Errorf("malformed drink preset: %+v", p)
		}
	}
}
