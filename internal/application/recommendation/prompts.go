package recommendation

import (
	"fmt"
	"strings"

	"github.com/platewise/backend/internal/domain/profile"
	"github.com/platewise/backend/internal/domain/recipe"
)

// Prompt builders for the completion service. The system prompt pins the
// JSON contract; the user prompt carries the per-request context. Hard
// constraints are passed verbatim, soft context is labeled as preference.

const dailyPickSystemPrompt = `You are a meal recommendation assistant. Choose exactly one recipe from the provided candidate list for the user's next meal.

CRITICAL: Respond with ONLY a valid JSON object in this exact format:
{
  "recommendedRecipeId": "uuid-of-chosen-recipe",
  "alternativeRecipeIds": ["uuid-1", "uuid-2", "uuid-3"],
  "reason": "One or two sentences explaining why this recipe fits the user today"
}

The recommendedRecipeId and every alternativeRecipeId MUST be IDs from the candidate list. Do not invent IDs. No additional text.`

// BuildDailyPickPrompts renders the daily recommendation prompt pair
func BuildDailyPickPrompts(
	prefs *profile.PreferenceProfile,
	recentMeals []profile.RecentMealEntry,
	candidates []*recipe.Recipe,
	mealType recipe.MealType,
) (system, user string) {
	var b strings.Builder

	fmt.Fprintf(&b, "Recommend a %s for this user.\n", mealType)

	c := BuildConstraints(prefs)
	if len(c.Hard) > 0 {
		b.WriteString("\nHard requirements (never violate):\n")
		for _, h := range c.Hard {
			fmt.Fprintf(&b, "- %s\n", h)
		}
	}
	if len(c.Soft) > 0 {
		b.WriteString("\nPreferences (bias toward, not mandatory):\n")
		for _, s := range c.Soft {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}

	if len(recentMeals) > 0 {
		b.WriteString("\nMeals cooked in the last 14 days (avoid repeating, note likes):\n")
		for _, m := range recentMeals {
			sentiment := "disliked"
			if m.Liked {
				sentiment = "liked"
			}
			fmt.Fprintf(&b, "- %s (%s %s, %d days ago, %s)\n", m.Name, m.Cuisine, m.Category, m.DaysAgo, sentiment)
		}
	}

	b.WriteString("\nCandidate recipes:\n")
	for _, r := range candidates {
		fmt.Fprintf(&b, "- id=%s name=%q cuisine=%s category=%s difficulty=%s time=%dmin rating=%.1f tags=%s\n",
			r.ID, r.Name, r.Cuisine, r.Category, r.Difficulty, r.CookingTimeMinutes, r.Rating, strings.Join(r.Tags, ","))
	}

	return dailyPickSystemPrompt, b.String()
}

const generateRecipesSystemPrompt = `You are a creative recipe developer. Invent brand-new recipes tailored to the user; do not copy well-known recipes verbatim.

CRITICAL: Respond with ONLY a valid JSON object in this exact format:
{
  "recipes": [
    {
      "name": "Recipe Name",
      "description": "One appetizing sentence",
      "cuisine": "cuisine type",
      "category": "breakfast|lunch|dinner|snack|dessert",
      "difficulty": "easy|medium|hard",
      "cookingTimeMinutes": 30,
      "tags": ["tag1", "tag2"],
      "ingredients": ["quantity ingredient", "..."],
      "instructions": ["Step 1 ...", "Step 2 ..."],
      "calories": 450,
      "protein": 25.0,
      "carbs": 40.0,
      "fat": 15.0
    }
  ]
}

No additional text, explanations, or formatting.`

// BuildBatchPrompts renders the suggestion batch prompt pair. Recent
// suggestions damp repetition; the dislike set carries ingredients and
// tags so the model can avoid similar dishes, not just identical names.
func BuildBatchPrompts(
	prefs *profile.PreferenceProfile,
	history *profile.InteractionHistory,
	recentSuggestionNames []string,
	count int,
) (system, user string) {
	var b strings.Builder

	fmt.Fprintf(&b, "Create %d new recipes for this user's day.\n", count)

	c := BuildConstraints(prefs)
	if len(c.Hard) > 0 {
		b.WriteString("\nHard requirements (never violate):\n")
		for _, h := range c.Hard {
			fmt.Fprintf(&b, "- %s\n", h)
		}
	}
	if len(c.Soft) > 0 {
		b.WriteString("\nPreferences:\n")
		for _, s := range c.Soft {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}

	if len(history.SavedRecipes) > 0 {
		b.WriteString("\nRecipes the user saved (a taste signal):\n")
		for _, s := range history.SavedRecipes {
			fmt.Fprintf(&b, "- %s (%s %s, tags: %s)\n", s.Name, s.Cuisine, s.Category, strings.Join(s.Tags, ","))
		}
	}
	if len(history.RecentMeals) > 0 {
		b.WriteString("\nRecently cooked meals:\n")
		for _, m := range history.RecentMeals {
			sentiment := "disliked"
			if m.Liked {
				sentiment = "liked"
			}
			fmt.Fprintf(&b, "- %s (%s, %d days ago, %s)\n", m.Name, m.Cuisine, m.DaysAgo, sentiment)
		}
	}
	if len(history.CreatedRecipes) > 0 {
		b.WriteString("\nRecipes the user created themselves:\n")
		for _, cr := range history.CreatedRecipes {
			fmt.Fprintf(&b, "- %s (%s %s)\n", cr.Name, cr.Cuisine, cr.Category)
		}
	}
	if len(recentSuggestionNames) > 0 {
		b.WriteString("\nAlready suggested in the last 7 days (do not repeat):\n")
		for _, name := range recentSuggestionNames {
			fmt.Fprintf(&b, "- %s\n", name)
		}
	}
	if len(history.Dislikes) > 0 {
		b.WriteString("\nRecipes the user rejected (avoid anything similar):\n")
		for _, d := range history.Dislikes {
			fmt.Fprintf(&b, "- %s (%s %s; ingredients: %s; tags: %s)\n",
				d.Name, d.Cuisine, d.Category, strings.Join(d.Ingredients, ","), strings.Join(d.Tags, ","))
		}
	}

	return generateRecipesSystemPrompt, b.String()
}

// BuildVoicePrompts renders the voice intent prompt pair. The literal
// utterance is the driving instruction; profile context only biases.
func BuildVoicePrompts(prefs *profile.PreferenceProfile, utterance string, count int) (system, user string) {
	var b strings.Builder

	fmt.Fprintf(&b, "The user said: %q\n", utterance)
	fmt.Fprintf(&b, "Create %d new recipes matching that mood and request.\n", count)

	c := BuildConstraints(prefs)
	if len(c.Hard) > 0 {
		b.WriteString("\nHard requirements (never violate):\n")
		for _, h := range c.Hard {
			fmt.Fprintf(&b, "- %s\n", h)
		}
	}
	if len(c.Soft) > 0 {
		b.WriteString("\nBackground preferences:\n")
		for _, s := range c.Soft {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}

	return generateRecipesSystemPrompt, b.String()
}
