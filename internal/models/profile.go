package models

// Profile groups the independent optional body metrics. Each scalar is
// persisted under its own storage key; nil means never set.
type Profile struct {
	CurrentWeight *float64 `json:"currentWeight,omitempty"` // kg
	TargetWeight  *float64 `json:"targetWeight,omitempty"`  // kg
	Height        *int     `json:"height,omitempty"`        // cm
	Age           *int     `json:"age,omitempty"`           // years
	ActivityLevel *float64 `json:"activityLevel,omitempty"` // multiplier, e.g. 1.2 sedentary
}

// Complete reports whether all metrics needed for calorie math are set.
func (p Profile) Complete() bool {
	return p.CurrentWeight != nil && p.Height != nil && p.Age != nil && p.ActivityLevel != nil
}

// DailyCalories estimates maintenance calories with the Mifflin-St Jeor
// equation (female form, matching the original app's audience), scaled
// by the activity level. Returns 0 when the profile is incomplete.
func (p Profile) DailyCalories() int {
	if !p.Complete() {
		return 0
	}
	bmr := 10*(*p.CurrentWeight) + 6.25*float64(*p.Height) - 5*float64(*p.Age) - 161
	if bmr < 0 {
		return 0
	}
	return int(bmr * *p.ActivityLevel)
}
