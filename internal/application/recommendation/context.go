package recommendation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platewise/backend/internal/domain/profile"
	"github.com/platewise/backend/internal/ports/outbound"
	"github.com/platewise/backend/pkg/errors"
)

// Interaction history windows
const (
	recentMealWindowDays = 14
	savedRecipeLimit     = 20
	createdRecipeLimit   = 20
)

// ContextAggregator assembles the per-request user context: the
// preference profile plus the four history slices. Read-only; missing
// history slices come back as empty collections.
type ContextAggregator struct {
	preferences outbound.PreferenceRepository
	history     outbound.HistoryRepository
	logger      *zap.Logger
}

// NewContextAggregator creates a new context aggregator
func NewContextAggregator(
	preferences outbound.PreferenceRepository,
	history outbound.HistoryRepository,
	logger *zap.Logger,
) *ContextAggregator {
	return &ContextAggregator{
		preferences: preferences,
		history:     history,
		logger:      logger.Named("context-aggregator"),
	}
}

// Aggregate loads the profile and history for a user. Fails only when
// the user has no preference profile; history errors degrade to empty
// slices so a partially-populated account still gets recommendations.
func (a *ContextAggregator) Aggregate(ctx context.Context, userID uuid.UUID, date time.Time) (*profile.PreferenceProfile, *profile.InteractionHistory, error) {
	prefs, err := a.preferences.FindByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if prefs == nil {
		return nil, nil, errors.NewPreferencesNotFoundError(userID.String())
	}

	history := &profile.InteractionHistory{}

	if saved, err := a.history.FindSavedRecipes(ctx, userID, savedRecipeLimit); err != nil {
		a.logger.Warn("Failed to load saved recipes", zap.String("user_id", userID.String()), zap.Error(err))
	} else {
		history.SavedRecipes = saved
	}

	since := date.AddDate(0, 0, -recentMealWindowDays)
	if meals, err := a.history.FindRecentMeals(ctx, userID, since); err != nil {
		a.logger.Warn("Failed to load recent meals", zap.String("user_id", userID.String()), zap.Error(err))
	} else {
		history.RecentMeals = meals
	}

	if created, err := a.history.FindCreatedRecipes(ctx, userID, createdRecipeLimit); err != nil {
		a.logger.Warn("Failed to load created recipes", zap.String("user_id", userID.String()), zap.Error(err))
	} else {
		history.CreatedRecipes = created
	}

	if dislikes, err := a.history.FindDislikedRecipes(ctx, userID); err != nil {
		a.logger.Warn("Failed to load dislikes", zap.String("user_id", userID.String()), zap.Error(err))
	} else {
		history.Dislikes = dislikes
	}

	return prefs, history, nil
}
