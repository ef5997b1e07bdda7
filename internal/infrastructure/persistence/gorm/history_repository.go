package gorm

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platewise/backend/internal/domain/profile"
	"github.com/platewise/backend/internal/ports/outbound"
	apperrors "github.com/platewise/backend/pkg/errors"
)

// HistoryRepository implements read access to the user's interaction
// history slices using GORM
type HistoryRepository struct {
	db *gorm.DB
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(db *gorm.DB) outbound.HistoryRepository {
	return &HistoryRepository{db: db}
}

// FindSavedRecipes returns the user's most recent bookmarks
func (r *HistoryRepository) FindSavedRecipes(ctx context.Context, userID uuid.UUID, limit int) ([]profile.SavedRecipeSummary, error) {
	var models []SavedRecipeModel

	result := r.db.WithContext(ctx).
		Preload("Recipe").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, apperrors.NewDatabaseError("find saved recipes", result.Error)
	}

	saved := make([]profile.SavedRecipeSummary, len(models))
	for i, m := range models {
		saved[i] = profile.SavedRecipeSummary{
			Name:     m.Recipe.Name,
			Tags:     []string(m.Recipe.Tags),
			Cuisine:  m.Recipe.Cuisine,
			Category: m.Recipe.Category,
		}
	}
	return saved, nil
}

// FindRecentMeals returns meals cooked since the given time, newest first
func (r *HistoryRepository) FindRecentMeals(ctx context.Context, userID uuid.UUID, since time.Time) ([]profile.RecentMealEntry, error) {
	var models []MealHistoryModel

	result := r.db.WithContext(ctx).
		Where("user_id = ? AND cooked_at >= ?", userID, since).
		Order("cooked_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, apperrors.NewDatabaseError("find recent meals", result.Error)
	}

	now := time.Now()
	meals := make([]profile.RecentMealEntry, len(models))
	for i, m := range models {
		meals[i] = profile.RecentMealEntry{
			Name:     m.Name,
			Cuisine:  m.Cuisine,
			Category: m.Category,
			Liked:    m.Liked,
			DaysAgo:  int(now.Sub(m.CookedAt).Hours() / 24),
		}
	}
	return meals, nil
}

// FindCreatedRecipes returns the user's most recently authored recipes
func (r *HistoryRepository) FindCreatedRecipes(ctx context.Context, userID uuid.UUID, limit int) ([]profile.CreatedRecipeSummary, error) {
	var models []CreatedRecipeModel

	result := r.db.WithContext(ctx).
		Preload("Recipe").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, apperrors.NewDatabaseError("find created recipes", result.Error)
	}

	created := make([]profile.CreatedRecipeSummary, len(models))
	for i, m := range models {
		created[i] = profile.CreatedRecipeSummary{
			Name:     m.Recipe.Name,
			Tags:     []string(m.Recipe.Tags),
			Cuisine:  m.Recipe.Cuisine,
			Category: m.Recipe.Category,
		}
	}
	return created, nil
}

// FindDislikedRecipes returns every recipe the user has rejected.
// Ingredients and tags ride along so generation prompts can avoid
// similar dishes, not just identical names.
func (r *HistoryRepository) FindDislikedRecipes(ctx context.Context, userID uuid.UUID) ([]profile.DislikedRecipeEntry, error) {
	var models []DislikedRecipeModel

	result := r.db.WithContext(ctx).
		Preload("Recipe").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, apperrors.NewDatabaseError("find disliked recipes", result.Error)
	}

	dislikes := make([]profile.DislikedRecipeEntry, len(models))
	for i, m := range models {
		dislikes[i] = profile.DislikedRecipeEntry{
			ID:          m.RecipeID,
			Name:        m.Recipe.Name,
			Cuisine:     m.Recipe.Cuisine,
			Category:    m.Recipe.Category,
			Ingredients: []string(m.Recipe.Ingredients),
			Tags:        []string(m.Recipe.Tags),
		}
	}
	return dislikes, nil
}
