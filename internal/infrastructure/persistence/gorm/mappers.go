package gorm

import (
	"time"

	"github.com/google/uuid"

	"github.com/platewise/backend/internal/domain/profile"
	"github.com/platewise/backend/internal/domain/recipe"
	"github.com/platewise/backend/internal/domain/recommendation"
)

// RecipeToModel converts a domain recipe to its GORM model
func RecipeToModel(r *recipe.Recipe) *RecipeModel {
	return &RecipeModel{
		ID:                 r.ID,
		Name:               r.Name,
		Description:        r.Description,
		Cuisine:            r.Cuisine,
		Category:           r.Category,
		Difficulty:         string(r.Difficulty),
		CookingTimeMinutes: r.CookingTimeMinutes,
		Rating:             r.Rating,
		ReviewCount:        r.ReviewCount,
		Tags:               StringSlice(r.Tags),
		Ingredients:        StringSlice(r.Ingredients),
		Instructions:       StringSlice(r.Instructions),
		Nutrition: JSONField{
			"calories": r.Nutrition.Calories,
			"protein":  r.Nutrition.Protein,
			"carbs":    r.Nutrition.Carbs,
			"fat":      r.Nutrition.Fat,
		},
		ImageURL:    r.ImageURL,
		AIGenerated: r.AIGenerated,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// ModelToRecipe converts a GORM model to a domain recipe
func ModelToRecipe(m *RecipeModel) *recipe.Recipe {
	return &recipe.Recipe{
		ID:                 m.ID,
		Name:               m.Name,
		Description:        m.Description,
		Cuisine:            m.Cuisine,
		Category:           m.Category,
		Difficulty:         recipe.DifficultyLevel(m.Difficulty),
		CookingTimeMinutes: m.CookingTimeMinutes,
		Rating:             m.Rating,
		ReviewCount:        m.ReviewCount,
		Tags:               []string(m.Tags),
		Ingredients:        []string(m.Ingredients),
		Instructions:       []string(m.Instructions),
		Nutrition:          nutritionFromJSON(m.Nutrition),
		ImageURL:           m.ImageURL,
		AIGenerated:        m.AIGenerated,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func nutritionFromJSON(j JSONField) recipe.NutritionInfo {
	return recipe.NutritionInfo{
		Calories: intField(j, "calories"),
		Protein:  floatField(j, "protein"),
		Carbs:    floatField(j, "carbs"),
		Fat:      floatField(j, "fat"),
	}
}

// JSON numbers unmarshal as float64 regardless of declared type
func intField(j JSONField, key string) int {
	if v, ok := j[key].(float64); ok {
		return int(v)
	}
	if v, ok := j[key].(int); ok {
		return v
	}
	return 0
}

func floatField(j JSONField, key string) float64 {
	if v, ok := j[key].(float64); ok {
		return v
	}
	if v, ok := j[key].(int); ok {
		return float64(v)
	}
	return 0
}

// ModelToProfile converts a preference model to the domain profile
func ModelToProfile(m *PreferenceModel) *profile.PreferenceProfile {
	return &profile.PreferenceProfile{
		UserID:               m.UserID,
		DietTypes:            []string(m.DietTypes),
		Allergies:            []string(m.Allergies),
		DislikedIngredients:  []string(m.DislikedIngredients),
		PreferredCuisines:    []string(m.PreferredCuisines),
		CookingSkill:         profile.CookingSkill(m.CookingSkill),
		PreferredCookingTime: profile.TimeBucket(m.PreferredCookingTime),
		PeopleCount:          m.PeopleCount,
		Goals:                []string(m.Goals),
	}
}

// RecommendationToModel converts a domain recommendation to its GORM model
func RecommendationToModel(rec *recommendation.DailyRecommendation) *DailyRecommendationModel {
	alternatives := make(StringSlice, len(rec.AlternativeRecipeIDs))
	for i, id := range rec.AlternativeRecipeIDs {
		alternatives[i] = id.String()
	}
	return &DailyRecommendationModel{
		ID:                   rec.ID,
		UserID:               rec.UserID,
		Date:                 rec.Date.Format(dateLayout),
		RecipeID:             rec.RecipeID,
		Reason:               rec.Reason,
		AlternativeRecipeIDs: alternatives,
		Presented:            rec.Presented,
		Accepted:             rec.Accepted,
		CreatedAt:            rec.CreatedAt,
	}
}

// ModelToRecommendation converts a GORM model to a domain recommendation.
// Malformed alternative IDs are dropped rather than failing the read.
func ModelToRecommendation(m *DailyRecommendationModel) *recommendation.DailyRecommendation {
	alternatives := make([]uuid.UUID, 0, len(m.AlternativeRecipeIDs))
	for _, raw := range m.AlternativeRecipeIDs {
		if id, err := uuid.Parse(raw); err == nil {
			alternatives = append(alternatives, id)
		}
	}
	date, _ := time.Parse(dateLayout, m.Date)
	return &recommendation.DailyRecommendation{
		ID:                   m.ID,
		UserID:               m.UserID,
		Date:                 date,
		RecipeID:             m.RecipeID,
		Reason:               m.Reason,
		AlternativeRecipeIDs: alternatives,
		Presented:            m.Presented,
		Accepted:             m.Accepted,
		CreatedAt:            m.CreatedAt,
	}
}

// ModelToBatchState converts a batch state model to its domain type
func ModelToBatchState(m *SuggestionBatchStateModel) *recommendation.SuggestionBatchState {
	date, _ := time.Parse(dateLayout, m.Date)
	return &recommendation.SuggestionBatchState{
		UserID:         m.UserID,
		Date:           date,
		GeneratedCount: m.GeneratedCount,
		GeneratedAt:    m.GeneratedAt,
	}
}
