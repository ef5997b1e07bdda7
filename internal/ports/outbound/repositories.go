// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/platewise/backend/internal/domain/profile"
	"github.com/platewise/backend/internal/domain/recipe"
	"github.com/platewise/backend/internal/domain/recommendation"
)

// PreferenceRepository reads user preference profiles.
// Profiles are owned and mutated by the preferences service; the
// recommendation engine treats them as read-only.
type PreferenceRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*profile.PreferenceProfile, error)
}

// HistoryRepository reads the user's interaction history slices.
// Each slice tolerates the user having no entries by returning an
// empty collection, never an error.
type HistoryRepository interface {
	FindSavedRecipes(ctx context.Context, userID uuid.UUID, limit int) ([]profile.SavedRecipeSummary, error)
	FindRecentMeals(ctx context.Context, userID uuid.UUID, since time.Time) ([]profile.RecentMealEntry, error)
	FindCreatedRecipes(ctx context.Context, userID uuid.UUID, limit int) ([]profile.CreatedRecipeSummary, error)
	FindDislikedRecipes(ctx context.Context, userID uuid.UUID) ([]profile.DislikedRecipeEntry, error)
}

// RecipeRepository is the recipe corpus access port
type RecipeRepository interface {
	Create(ctx context.Context, r *recipe.Recipe) error
	FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*recipe.Recipe, error)

	// FindTopRated returns up to limit recipes with rating >= minRating,
	// most-reviewed first. This is the daily-recommendation candidate pool.
	FindTopRated(ctx context.Context, minRating float64, limit int) ([]*recipe.Recipe, error)
}

// RecommendationRepository persists daily recommendation rows.
// The store enforces a uniqueness constraint on (user_id, date); Create
// reports conflicts through ErrAlreadyExists-style database errors which
// callers resolve by re-reading the winner's row.
type RecommendationRepository interface {
	FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*recommendation.DailyRecommendation, error)
	FindByID(ctx context.Context, id uuid.UUID) (*recommendation.DailyRecommendation, error)
	Create(ctx context.Context, rec *recommendation.DailyRecommendation) error
	UpdateResponse(ctx context.Context, id uuid.UUID, accepted bool) (*recommendation.DailyRecommendation, error)
}

// SuggestionRepository persists suggestion batch links and the
// per-(user, date) generation counter.
type SuggestionRepository interface {
	// FindForDate returns the recipes linked to (user, date), excluding any
	// the user has since marked disliked (anti-join against dislike records).
	FindForDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]*recipe.Recipe, error)

	// FindRecentSuggestionNames returns names of recipes suggested to the
	// user within the given window, for repetition damping in prompts.
	FindRecentSuggestionNames(ctx context.Context, userID uuid.UUID, since time.Time) ([]string, error)

	// DeleteForDate removes all suggestion links for (user, date).
	// The linked corpus recipes are kept; only the day association goes.
	DeleteForDate(ctx context.Context, userID uuid.UUID, date time.Time) error

	Link(ctx context.Context, userID uuid.UUID, date time.Time, recipeID uuid.UUID) error

	// BatchState returns the generation counter row, or a zero-count state
	// when none exists yet.
	BatchState(ctx context.Context, userID uuid.UUID, date time.Time) (*recommendation.SuggestionBatchState, error)

	// IncrementGeneration atomically increments the generation counter and
	// returns the new count. Creates the state row when absent.
	IncrementGeneration(ctx context.Context, userID uuid.UUID, date time.Time) (int, error)

	// ReleaseGeneration decrements the generation counter, floored at zero.
	// Called when a generation round produced no persisted recipes, so a
	// failed round does not consume budget.
	ReleaseGeneration(ctx context.Context, userID uuid.UUID, date time.Time) error
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
