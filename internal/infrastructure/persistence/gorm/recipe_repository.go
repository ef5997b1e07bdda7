package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platewise/backend/internal/domain/recipe"
	"github.com/platewise/backend/internal/ports/outbound"
	apperrors "github.com/platewise/backend/pkg/errors"
)

// RecipeRepository implements the recipe corpus port using GORM
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) outbound.RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create persists a new corpus recipe
func (r *RecipeRepository) Create(ctx context.Context, rec *recipe.Recipe) error {
	model := RecipeToModel(rec)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return apperrors.NewDatabaseError("create recipe", result.Error)
	}

	rec.ID = model.ID
	return nil
}

// FindByID finds a recipe by ID
func (r *RecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	var model RecipeModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("recipe")
		}
		return nil, apperrors.NewDatabaseError("find recipe", result.Error)
	}

	return ModelToRecipe(&model), nil
}

// FindByIDs finds recipes by multiple IDs. Unknown IDs are skipped;
// callers that care about completeness compare lengths.
func (r *RecipeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*recipe.Recipe, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var models []RecipeModel
	result := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&models)
	if result.Error != nil {
		return nil, apperrors.NewDatabaseError("find recipes", result.Error)
	}

	recipes := make([]*recipe.Recipe, len(models))
	for i := range models {
		recipes[i] = ModelToRecipe(&models[i])
	}
	return recipes, nil
}

// FindTopRated returns up to limit recipes with rating >= minRating,
// ordered by review count so the candidate pool favors broadly
// validated dishes over thinly rated ones.
func (r *RecipeRepository) FindTopRated(ctx context.Context, minRating float64, limit int) ([]*recipe.Recipe, error) {
	var models []RecipeModel

	result := r.db.WithContext(ctx).
		Where("rating >= ?", minRating).
		Order("review_count DESC, rating DESC").
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, apperrors.NewDatabaseError("find top rated recipes", result.Error)
	}

	recipes := make([]*recipe.Recipe, len(models))
	for i := range models {
		recipes[i] = ModelToRecipe(&models[i])
	}
	return recipes, nil
}
