package recommendation

import (
	"fmt"
	"strings"

	"github.com/platewise/backend/internal/domain/profile"
	"github.com/platewise/backend/internal/domain/recipe"
)

// Beginner cooks only get easy recipes below this time budget
const beginnerMaxMinutes = 30

const fallbackAlternativeCount = 3

// fallbackRuleBased is the second stage of the recommendation strategy:
// deterministic selection from the candidate pool when generation fails
// or returns invalid data. It filters out recently cooked dishes, then
// applies skill and diet compatibility; if everything is filtered away it
// falls back to the unfiltered top five, so it can never come up empty as
// long as the pool itself is non-empty.
func fallbackRuleBased(
	prefs *profile.PreferenceProfile,
	recentMeals []profile.RecentMealEntry,
	candidates []*recipe.Recipe,
	mealType recipe.MealType,
) *generativePick {
	if len(candidates) == 0 {
		return nil
	}

	filtered := filterCandidates(prefs, recentMeals, candidates)
	if len(filtered) == 0 {
		// Escape hatch: the pool is already ordered by rating and review
		// count, so the head is the best available.
		filtered = candidates
		if len(filtered) > 5 {
			filtered = filtered[:5]
		}
	}

	chosen := filtered[0]
	alternatives := filtered[1:]
	if len(alternatives) > fallbackAlternativeCount {
		alternatives = alternatives[:fallbackAlternativeCount]
	}

	return &generativePick{
		Recipe:       chosen,
		Alternatives: alternatives,
		Reason: fmt.Sprintf("A highly rated %s %s for %s: %s difficulty and ready in %d minutes.",
			chosen.Cuisine, chosen.Category, mealType, chosen.Difficulty, chosen.CookingTimeMinutes),
	}
}

// filterCandidates applies the deterministic filters: drop name repeats
// from the recent-meal history, drop (cuisine, category) pairs cooked in
// the last 7 days, then enforce skill and diet compatibility.
func filterCandidates(
	prefs *profile.PreferenceProfile,
	recentMeals []profile.RecentMealEntry,
	candidates []*recipe.Recipe,
) []*recipe.Recipe {
	recentNames := make(map[string]bool, len(recentMeals))
	recentPairs := make(map[string]bool, len(recentMeals))
	for _, m := range recentMeals {
		recentNames[strings.ToLower(m.Name)] = true
		if m.DaysAgo <= 7 {
			recentPairs[strings.ToLower(m.Cuisine)+"|"+strings.ToLower(m.Category)] = true
		}
	}

	strictDiet := prefs.StrictDiet()
	beginner := prefs.CookingSkill == profile.SkillBeginner

	var out []*recipe.Recipe
	for _, c := range candidates {
		if recentNames[strings.ToLower(c.Name)] {
			continue
		}
		if recentPairs[strings.ToLower(c.Cuisine)+"|"+strings.ToLower(c.Category)] {
			continue
		}
		if beginner && (c.Difficulty != recipe.DifficultyEasy || c.CookingTimeMinutes > beginnerMaxMinutes) {
			continue
		}
		if strictDiet != "" && !c.MatchesDiet(strictDiet) {
			continue
		}
		if c.ContainsAnyIngredient(prefs.Allergies) || c.ContainsAnyIngredient(prefs.DislikedIngredients) {
			continue
		}
		out = append(out, c)
	}

	return out
}
