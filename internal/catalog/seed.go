// Package catalog holds the built-in content the store is seeded with:
// starter habits, devotional habits, azkar lists and the read-only
// self-care and recipe catalogs.
package catalog

import (
	"time"

	"github.com/daftar-app/daftar/internal/models"
)

// InitialHabits is the default habit list used when no habits
// collection exists or the persisted one is unusable.
func InitialHabits() []models.Habit {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []models.Habit{
		{ID: "h1", Name: "Drink water", Icon: "💧", Goal: "8 cups", Type: models.HabitDaily, AccentColor: "#60a5fa", CreatedAt: created},
		{ID: "h2", Name: "Walk", Icon: "🚶‍♀️", Goal: "30 min", Type: models.HabitDaily, AccentColor: "#34d399", CreatedAt: created},
		{ID: "h3", Name: "Read", Icon: "📖", Goal: "10 pages", Type: models.HabitDaily, AccentColor: "#fbbf24", CreatedAt: created},
		{ID: "h4", Name: "Skin care", Icon: "🧴", Goal: "morning & night", Type: models.HabitDaily, AccentColor: "#f472b6", CreatedAt: created},
		{ID: "h5", Name: "Deep clean", Icon: "🧹", Goal: "once a week", Type: models.HabitWeekly, WeeklyGoal: 1, AccentColor: "#a78bfa", CreatedAt: created},
		{ID: "h6", Name: "Call family", Icon: "📞", Goal: "3 times a week", Type: models.HabitWeekly, WeeklyGoal: 3, AccentColor: "#fb923c", CreatedAt: created},
	}
}

// InitialReligiousHabits is the default devotional habit list. The
// r10/r11/r12 ids are kept stable so backups from older versions keep
// resolving; screens navigate by the Azkar category, never by id.
func InitialReligiousHabits() []models.ReligiousHabit {
	return []models.ReligiousHabit{
		{ID: "r1", Name: "Fajr prayer", Icon: "🕌"},
		{ID: "r2", Name: "Dhuhr prayer", Icon: "🕌"},
		{ID: "r3", Name: "Asr prayer", Icon: "🕌"},
		{ID: "r4", Name: "Maghrib prayer", Icon: "🕌"},
		{ID: "r5", Name: "Isha prayer", Icon: "🕌"},
		{ID: "r6", Name: "Quran reading", Icon: "📖"},
		{ID: "r7", Name: "Istighfar", Icon: "📿", HasCounter: true},
		{ID: "r8", Name: "Salawat", Icon: "📿", HasCounter: true},
		{ID: "r9", Name: "Tasbih", Icon: "📿", HasCounter: true},
		{ID: "r10", Name: "Morning azkar", Icon: "🌅", Azkar: models.AzkarMorning},
		{ID: "r11", Name: "Evening azkar", Icon: "🌇", Azkar: models.AzkarEvening},
		{ID: "r12", Name: "Sleep azkar", Icon: "🌙", Azkar: models.AzkarSleep},
	}
}

// BuiltinMasks is the read-only self-care catalog.
func BuiltinMasks() []models.DiyMask {
	return []models.DiyMask{
		{
			ID:          "m1",
			Name:        "Honey & oat glow",
			Icon:        "🍯",
			Type:        models.MaskFace,
			Ingredients: []string{"1 tbsp honey", "2 tbsp ground oats", "1 tsp yogurt"},
			Preparation: "Mix into a paste, apply for 15 minutes, rinse with warm water.",
			Benefits:    "Gentle exfoliation and hydration for dull skin.",
		},
		{
			ID:          "m2",
			Name:        "Coconut repair",
			Icon:        "🥥",
			Type:        models.MaskHair,
			Ingredients: []string{"2 tbsp coconut oil", "1 egg yolk", "1 tsp honey"},
			Preparation: "Warm the oil, whisk everything together, leave on 30 minutes under a cap.",
			Benefits:    "Deep conditioning for dry, brittle ends.",
		},
		{
			ID:          "m3",
			Name:        "Coffee scrub",
			Icon:        "☕",
			Type:        models.MaskBody,
			Ingredients: []string{"3 tbsp ground coffee", "2 tbsp brown sugar", "2 tbsp olive oil"},
			Preparation: "Combine and massage in circular motions before showering.",
			Benefits:    "Smooths skin and boosts circulation.",
		},
	}
}

// BuiltinRecipes is the read-only recipe catalog.
func BuiltinRecipes() []models.Recipe {
	return []models.Recipe{
		{
			ID:          "rc1",
			Name:        "Labneh toast with zaatar",
			Calories:    320,
			Time:        "10 min",
			Ingredients: []string{"2 slices whole-grain bread", "3 tbsp labneh", "1 tsp zaatar", "olive oil", "cucumber"},
			Steps:       []string{"Toast the bread.", "Spread the labneh.", "Top with zaatar, a drizzle of olive oil and cucumber slices."},
			Tags:        []string{"breakfast"},
		},
		{
			ID:          "rc2",
			Name:        "Chicken freekeh bowl",
			Calories:    540,
			Time:        "35 min",
			Ingredients: []string{"1 cup freekeh", "200g chicken breast", "1 onion", "mixed spices", "parsley"},
			Steps:       []string{"Simmer freekeh until tender.", "Sear the spiced chicken.", "Assemble with onion and parsley."},
			Tags:        []string{"lunch"},
		},
		{
			ID:          "rc3",
			Name:        "Lentil soup",
			Calories:    280,
			Time:        "25 min",
			Ingredients: []string{"1 cup red lentils", "1 carrot", "1 onion", "cumin", "lemon"},
			Steps:       []string{"Soften onion and carrot.", "Add lentils and water, simmer 20 minutes.", "Blend, season with cumin and lemon."},
			Tags:        []string{"dinner"},
		},
	}
}

// DrinkPreset is a quick-log drink offered by the drinks screen.
type DrinkPreset struct {
	Name string
	Icon string
	Type models.DrinkType
}

// DrinkPresets is the fixed drink quick-pick list.
func DrinkPresets() []DrinkPreset {
	return []DrinkPreset{
		{Name: "Coffee", Icon: "☕", Type: models.DrinkHot},
		{Name: "Tea", Icon: "🍵", Type: models.DrinkHot},
		{Name: "Green tea", Icon: "🫖", Type: models.DrinkHot},
		{Name: "Juice", Icon: "🧃", Type: models.DrinkCold},
		{Name: "Smoothie", Icon: "🥤", Type: models.DrinkCold},
		{Name: "Raspberry leaf tea", Icon: "🌿", Type: models.DrinkFemininity},
		{Name: "Chamomile", Icon: "🌼", Type: models.DrinkFemininity},
	}
}
