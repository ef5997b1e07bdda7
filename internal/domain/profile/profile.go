// Package profile contains the user preference and interaction history model.
// The engine only reads these; mutation happens in the preferences service.
package profile

import (
	"github.com/google/uuid"
)

// CookingSkill represents a user's self-reported cooking skill
type CookingSkill string

const (
	SkillBeginner     CookingSkill = "beginner"
	SkillIntermediate CookingSkill = "intermediate"
	SkillAdvanced     CookingSkill = "advanced"
)

// TimeBucket represents the user's preferred cooking-time budget
type TimeBucket string

const (
	TimeBucketQuick    TimeBucket = "under_30"
	TimeBucketStandard TimeBucket = "30_to_60"
	TimeBucketLeisure  TimeBucket = "over_60"
)

// StrictDiets are the diet types enforced as hard constraints.
// Diets outside this set bias generation but never filter.
var StrictDiets = map[string]bool{
	"vegan":      true,
	"vegetarian": true,
	"halal":      true,
	"kosher":     true,
}

// PreferenceProfile is a user's stored food preference profile.
// DietTypes is a list for legacy storage reasons; at most one entry
// is semantically active.
type PreferenceProfile struct {
	UserID               uuid.UUID
	DietTypes            []string
	Allergies            []string
	DislikedIngredients  []string
	PreferredCuisines    []string
	CookingSkill         CookingSkill
	PreferredCookingTime TimeBucket
	PeopleCount          int
	Goals                []string
}

// ActiveDiet returns the single semantically active diet type, if any
func (p *PreferenceProfile) ActiveDiet() string {
	if len(p.DietTypes) == 0 {
		return ""
	}
	return p.DietTypes[0]
}

// StrictDiet returns the active diet if it belongs to the strict set
func (p *PreferenceProfile) StrictDiet() string {
	diet := p.ActiveDiet()
	if StrictDiets[diet] {
		return diet
	}
	return ""
}

// SavedRecipeSummary is a recipe the user bookmarked
type SavedRecipeSummary struct {
	Name     string
	Tags     []string
	Cuisine  string
	Category string
}

// RecentMealEntry is a meal the user cooked recently
type RecentMealEntry struct {
	Name     string
	Cuisine  string
	Category string
	Liked    bool
	DaysAgo  int
}

// CreatedRecipeSummary is a recipe the user authored
type CreatedRecipeSummary struct {
	Name     string
	Tags     []string
	Cuisine  string
	Category string
}

// DislikedRecipeEntry is a recipe the user explicitly rejected.
// Ingredients and tags are carried so generation can reason about
// why to avoid similar dishes, not just the name.
type DislikedRecipeEntry struct {
	ID          uuid.UUID
	Name        string
	Cuisine     string
	Category    string
	Ingredients []string
	Tags        []string
}

// InteractionHistory is a per-request read-only snapshot of the four
// history slices. Missing slices are empty, never nil checks required.
type InteractionHistory struct {
	SavedRecipes   []SavedRecipeSummary
	RecentMeals    []RecentMealEntry
	CreatedRecipes []CreatedRecipeSummary
	Dislikes       []DislikedRecipeEntry
}

// DislikeNames returns the names of all disliked recipes
func (h *InteractionHistory) DislikeNames() []string {
	names := make([]string, 0, len(h.Dislikes))
	for _, d := range h.Dislikes {
		names = append(names, d.Name)
	}
	return names
}
