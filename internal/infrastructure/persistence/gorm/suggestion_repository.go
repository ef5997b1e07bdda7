package gorm

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/platewise/backend/internal/domain/recipe"
	"github.com/platewise/backend/internal/domain/recommendation"
	"github.com/platewise/backend/internal/ports/outbound"
	apperrors "github.com/platewise/backend/pkg/errors"
)

// SuggestionRepository implements suggestion batch persistence using GORM
type SuggestionRepository struct {
	db *gorm.DB
}

// NewSuggestionRepository creates a new suggestion repository
func NewSuggestionRepository(db *gorm.DB) outbound.SuggestionRepository {
	return &SuggestionRepository{db: db}
}

// FindForDate returns the recipes linked to (user, date) in batch order,
// excluding any the user has since marked disliked. The exclusion happens
// at read time so a dislike takes effect without regenerating the batch.
func (r *SuggestionRepository) FindForDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]*recipe.Recipe, error) {
	disliked := r.db.Table("disliked_recipes").
		Select("recipe_id").
		Where("user_id = ?", userID)

	var models []RecipeModel
	result := r.db.WithContext(ctx).
		Model(&RecipeModel{}).
		Joins("JOIN suggestion_links ON suggestion_links.recipe_id = recipes.id").
		Where("suggestion_links.user_id = ? AND suggestion_links.date = ?", userID, date.Format(dateLayout)).
		Where("recipes.id NOT IN (?)", disliked).
		Order("suggestion_links.position ASC").
		Find(&models)
	if result.Error != nil {
		return nil, apperrors.NewDatabaseError("find suggestions", result.Error)
	}

	recipes := make([]*recipe.Recipe, len(models))
	for i := range models {
		recipes[i] = ModelToRecipe(&models[i])
	}
	return recipes, nil
}

// FindRecentSuggestionNames returns distinct names of recipes suggested
// to the user since the given time, for repetition damping in prompts
func (r *SuggestionRepository) FindRecentSuggestionNames(ctx context.Context, userID uuid.UUID, since time.Time) ([]string, error) {
	var names []string

	result := r.db.WithContext(ctx).
		Model(&RecipeModel{}).
		Joins("JOIN suggestion_links ON suggestion_links.recipe_id = recipes.id").
		Where("suggestion_links.user_id = ? AND suggestion_links.created_at >= ?", userID, since).
		Distinct().
		Pluck("recipes.name", &names)
	if result.Error != nil {
		return nil, apperrors.NewDatabaseError("find recent suggestion names", result.Error)
	}

	return names, nil
}

// DeleteForDate removes the suggestion links for (user, date). The
// linked corpus recipes stay; only the day association goes.
func (r *SuggestionRepository) DeleteForDate(ctx context.Context, userID uuid.UUID, date time.Time) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date.Format(dateLayout)).
		Delete(&SuggestionLinkModel{})
	if result.Error != nil {
		return apperrors.NewDatabaseError("delete suggestions", result.Error)
	}
	return nil
}

// Link associates a recipe with the (user, date) batch. Position is
// assigned from the current link count so batch order is stable.
func (r *SuggestionRepository) Link(ctx context.Context, userID uuid.UUID, date time.Time, recipeID uuid.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&SuggestionLinkModel{}).
		Where("user_id = ? AND date = ?", userID, date.Format(dateLayout)).
		Count(&count).Error; err != nil {
		return apperrors.NewDatabaseError("count suggestion links", err)
	}

	link := SuggestionLinkModel{
		UserID:    userID,
		Date:      date.Format(dateLayout),
		RecipeID:  recipeID,
		Position:  int(count),
		CreatedAt: time.Now(),
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&link)
	if result.Error != nil {
		return apperrors.NewDatabaseError("link suggestion", result.Error)
	}
	return nil
}

// BatchState returns the generation counter row for (user, date), or a
// zero-count state when the user hasn't generated today
func (r *SuggestionRepository) BatchState(ctx context.Context, userID uuid.UUID, date time.Time) (*recommendation.SuggestionBatchState, error) {
	var model SuggestionBatchStateModel

	result := r.db.WithContext(ctx).
		First(&model, "user_id = ? AND date = ?", userID, date.Format(dateLayout))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return &recommendation.SuggestionBatchState{UserID: userID, Date: date}, nil
		}
		return nil, apperrors.NewDatabaseError("find batch state", result.Error)
	}

	return ModelToBatchState(&model), nil
}

// IncrementGeneration bumps the generation counter in a single upsert
// and returns the new count. The increment runs in the database, so two
// concurrent regenerations can never both observe the pre-increment
// value.
func (r *SuggestionRepository) IncrementGeneration(ctx context.Context, userID uuid.UUID, date time.Time) (int, error) {
	now := time.Now()
	model := SuggestionBatchStateModel{
		UserID:         userID,
		Date:           date.Format(dateLayout),
		GeneratedCount: 1,
		GeneratedAt:    now,
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"generated_count": gorm.Expr("suggestion_batch_states.generated_count + 1"),
				"generated_at":    now,
			}),
		}).
		Create(&model)
	if result.Error != nil {
		return 0, apperrors.NewDatabaseError("increment generation count", result.Error)
	}

	var updated SuggestionBatchStateModel
	if err := r.db.WithContext(ctx).
		First(&updated, "user_id = ? AND date = ?", userID, date.Format(dateLayout)).Error; err != nil {
		return 0, apperrors.NewDatabaseError("reload batch state", err)
	}

	return updated.GeneratedCount, nil
}

// ReleaseGeneration hands a budget slot back after a generation round
// produced nothing. The decrement is floored at zero in the database so
// a stray release can never go negative.
func (r *SuggestionRepository) ReleaseGeneration(ctx context.Context, userID uuid.UUID, date time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&SuggestionBatchStateModel{}).
		Where("user_id = ? AND date = ? AND generated_count > 0", userID, date.Format(dateLayout)).
		Update("generated_count", gorm.Expr("generated_count - 1"))
	if result.Error != nil {
		return apperrors.NewDatabaseError("release generation count", result.Error)
	}
	return nil
}
