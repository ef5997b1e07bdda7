// Package recipe contains the recipe domain model
package recipe

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DifficultyLevel represents recipe difficulty
type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "easy"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHard   DifficultyLevel = "hard"
)

// MealType represents the meal slot a recipe is recommended for
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
)

// NutritionInfo contains nutritional information per serving
type NutritionInfo struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Recipe represents a recipe in the corpus. AI-generated suggestions are
// persisted as regular corpus rows with AIGenerated set.
type Recipe struct {
	ID                 uuid.UUID       `json:"id"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Cuisine            string          `json:"cuisine"`
	Category           string          `json:"category"`
	Difficulty         DifficultyLevel `json:"difficulty"`
	CookingTimeMinutes int             `json:"cookingTimeMinutes"`
	Rating             float64         `json:"rating"`
	ReviewCount        int             `json:"reviewCount"`
	Tags               []string        `json:"tags"`
	Ingredients        []string        `json:"ingredients"`
	Instructions       []string        `json:"instructions"`
	Nutrition          NutritionInfo   `json:"nutrition"`
	ImageURL           string          `json:"imageUrl,omitempty"`
	AIGenerated        bool            `json:"aiGenerated"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// MealTypeForHour maps a wall-clock hour to a meal slot.
// Uses the server clock, not the user's timezone.
func MealTypeForHour(hour int) MealType {
	switch {
	case hour < 11:
		return MealTypeBreakfast
	case hour < 16:
		return MealTypeLunch
	default:
		return MealTypeDinner
	}
}

// HasTag reports whether the recipe carries the given tag (case-insensitive)
func (r *Recipe) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// MatchesDiet reports whether the recipe is compatible with a diet type.
// A recipe matches when the diet appears in its tags, or, for vegan
// recipes checked against vegetarian, via the vegan-implies-vegetarian rule.
func (r *Recipe) MatchesDiet(diet string) bool {
	diet = strings.ToLower(strings.TrimSpace(diet))
	if diet == "" {
		return true
	}
	if r.HasTag(diet) {
		return true
	}
	if diet == "vegetarian" && r.HasTag("vegan") {
		return true
	}
	return false
}

// ContainsAnyIngredient reports whether any of the given ingredient names
// appears in the recipe's ingredient list as a substring match.
func (r *Recipe) ContainsAnyIngredient(names []string) bool {
	for _, ing := range r.Ingredients {
		lower := strings.ToLower(ing)
		for _, name := range names {
			name = strings.ToLower(strings.TrimSpace(name))
			if name != "" && strings.Contains(lower, name) {
				return true
			}
		}
	}
	return false
}
