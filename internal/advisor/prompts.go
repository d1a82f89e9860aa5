package advisor

import (
	"fmt"
	"strings"

	"github.com/daftar-app/daftar/internal/models"
)

func caloriesPrompt(description string) string {
	return fmt.Sprintf(
		"Estimate the total calories for this meal: %q. "+
			"Reply with a single integer number of kilocalories and nothing else.",
		description,
	)
}

func vitaminsPrompt(profile models.Profile) string {
	var b strings.Builder
	b.WriteString("Suggest 3 to 5 vitamins or supplements for a woman")
	writeProfile(&b, profile)
	b.WriteString(". Reply with only a JSON array of objects with keys ")
	b.WriteString(`"name", "pharmacy" (a pharmacy product form), "natural" (a food source) and "benefit".`)
	return b.String()
}

func hennaPrompt(hairType, goal string) string {
	return fmt.Sprintf(
		"Give a natural henna hair dye recipe for %s hair with the goal %q. "+
			"Include ingredients with quantities, preparation steps and application time. "+
			"Reply in plain text.",
		hairType, goal,
	)
}

func dietPrompt(kind models.DietPlanKind, profile models.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a one-day %s meal plan for a woman", kind)
	writeProfile(&b, profile)
	b.WriteString(". Reply with only a JSON object with keys ")
	b.WriteString(`"title", "calories" (a display string like "1500-1700 kcal"), `)
	b.WriteString(`"breakfast", "lunch", "dinner" and "snacks" (each an array of strings).`)
	return b.String()
}

func writeProfile(b *strings.Builder, profile models.Profile) {
	if profile.CurrentWeight != nil {
		fmt.Fprintf(b, ", weight %.1f kg", *profile.CurrentWeight)
	}
	if profile.TargetWeight != nil {
		fmt.Fprintf(b, ", target weight %.1f kg", *profile.TargetWeight)
	}
	if profile.Height != nil {
		fmt.Fprintf(b, ", height %d cm", *profile.Height)
	}
	if profile.Age != nil {
		fmt.Fprintf(b, ", age %d", *profile.Age)
	}
}
