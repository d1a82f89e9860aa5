package models

type MaskType string

const (
	MaskFace MaskType = "face"
	MaskHair MaskType = "hair"
	MaskBody MaskType = "body"
)

// DiyMask is a self-care mask recipe. Built-in masks ship with the
// catalog; user additions carry IsCustom.
type DiyMask struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	Icon        string   `json:"icon"`
	Type        MaskType `json:"type"`
	Ingredients []string `json:"ingredients"`
	Preparation string   `json:"preparation"`
	Benefits    string   `json:"benefits"`
	IsCustom    bool     `json:"isCustom,omitempty"`
}

// Recipe is a meal recipe, built-in or user-added.
type Recipe struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Calories    int      `json:"calories"`
	Time        string   `json:"time"` // e.g. "20 min"
	Image       string   `json:"image,omitempty"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	Tags        []string `json:"tags"`
	IsCustom    bool     `json:"isCustom,omitempty"`
}

type DietPlanKind string

const (
	DietWeightLoss  DietPlanKind = "weight-loss"
	DietMaintenance DietPlanKind = "maintenance"
	DietWeightGain  DietPlanKind = "weight-gain"
)

// DietPlan is the advisor's structured diet suggestion.
type DietPlan struct {
	Type      DietPlanKind `json:"type"`
	Title     string       `json:"title"`
	Calories  string       `json:"calories"`
	Breakfast []string     `json:"breakfast"`
	Lunch     []string     `json:"lunch"`
	Dinner    []string     `json:"dinner"`
	Snacks    []string     `json:"snacks"`
}

// VitaminRecommendation is one advisor vitamin suggestion.
type VitaminRecommendation struct {
	Name     string `json:"name"`
	Pharmacy string `json:"pharmacy"`
	Natural  string `json:"natural"`
	Benefit  string `json:"benefit"`
}
