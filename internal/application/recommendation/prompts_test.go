package recommendation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/platewise/backend/internal/domain/profile"
	"github.com/platewise/backend/internal/domain/recipe"
)

func TestBuildDailyPickPrompts(t *testing.T) {
	prefs := &profile.PreferenceProfile{
		DietTypes: []string{"vegan"},
		Allergies: []string{"peanut"},
	}
	recent := []profile.RecentMealEntry{
		{Name: "Shakshuka", Cuisine: "Middle Eastern", Category: "breakfast", DaysAgo: 2, Liked: true},
	}
	candidate := testRecipe("Buddha Bowl")

	system, user := BuildDailyPickPrompts(prefs, recent, []*recipe.Recipe{candidate}, recipe.MealTypeLunch)

	assert.Contains(t, system, "ONLY a valid JSON object")
	assert.Contains(t, system, "recommendedRecipeId")

	assert.Contains(t, user, "Recommend a lunch")
	assert.Contains(t, user, "Must not contain peanut (allergy)")
	assert.Contains(t, user, "Must be strictly vegan")
	assert.Contains(t, user, "Shakshuka")
	assert.Contains(t, user, "liked")
	assert.Contains(t, user, "id="+candidate.ID.String())
}

func TestBuildBatchPrompts(t *testing.T) {
	prefs := &profile.PreferenceProfile{PreferredCuisines: []string{"Thai"}}
	history := &profile.InteractionHistory{
		SavedRecipes: []profile.SavedRecipeSummary{
			{Name: "Pad Thai", Cuisine: "Thai", Category: "main", Tags: []string{"noodles"}},
		},
		Dislikes: []profile.DislikedRecipeEntry{
			{Name: "Liver Pâté", Cuisine: "French", Category: "appetizer", Ingredients: []string{"liver"}},
		},
	}

	system, user := BuildBatchPrompts(prefs, history, []string{"Green Curry Bowl"}, 5)

	assert.Contains(t, system, `"recipes"`)
	assert.Contains(t, user, "Create 5 new recipes")
	assert.Contains(t, user, "Pad Thai")
	assert.Contains(t, user, "Green Curry Bowl")
	assert.Contains(t, user, "do not repeat")
	assert.Contains(t, user, "Liver Pâté")
	assert.Contains(t, user, "ingredients: liver")
}

func TestBuildBatchPromptsEmptyHistory(t *testing.T) {
	_, user := BuildBatchPrompts(&profile.PreferenceProfile{}, &profile.InteractionHistory{}, nil, 3)

	assert.Contains(t, user, "Create 3 new recipes")
	assert.False(t, strings.Contains(user, "saved"), "no empty history sections")
	assert.False(t, strings.Contains(user, "rejected"))
}

func TestBuildVoicePrompts(t *testing.T) {
	prefs := &profile.PreferenceProfile{Allergies: []string{"shellfish"}}

	_, user := BuildVoicePrompts(prefs, "something warm and cozy", 5)

	assert.Contains(t, user, `"something warm and cozy"`)
	assert.Contains(t, user, "Must not contain shellfish (allergy)")
}
