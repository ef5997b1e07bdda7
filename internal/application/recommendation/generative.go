package recommendation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platewise/backend/internal/domain/profile"
	"github.com/platewise/backend/internal/domain/recipe"
)

// generativePick is a validated daily pick: the chosen recipe, the
// surviving alternatives and the model's reason.
type generativePick struct {
	Recipe       *recipe.Recipe
	Alternatives []*recipe.Recipe
	Reason       string
}

// tryGenerative is the first stage of the two-stage recommendation
// strategy. It asks the completion service for a pick and validates it
// against the candidate pool: an unknown recommended ID fails the whole
// stage, unknown alternative IDs are silently dropped.
func (s *Service) tryGenerative(
	ctx context.Context,
	prefs *profile.PreferenceProfile,
	recentMeals []profile.RecentMealEntry,
	candidates []*recipe.Recipe,
	mealType recipe.MealType,
) (*generativePick, error) {
	system, user := BuildDailyPickPrompts(prefs, recentMeals, candidates, mealType)

	pick, err := s.completions.PickDailyRecommendation(ctx, system, user)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*recipe.Recipe, len(candidates))
	for _, c := range candidates {
		byID[c.ID] = c
	}

	recommendedID, err := uuid.Parse(pick.RecommendedRecipeID)
	if err != nil {
		return nil, fmt.Errorf("model returned malformed recipe id %q: %w", pick.RecommendedRecipeID, err)
	}
	chosen, ok := byID[recommendedID]
	if !ok {
		return nil, fmt.Errorf("model recommended recipe %s outside the candidate pool", recommendedID)
	}

	var alternatives []*recipe.Recipe
	for _, raw := range pick.AlternativeRecipeIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		alt, ok := byID[id]
		if !ok || id == recommendedID {
			s.logger.Debug("Dropping alternative outside candidate pool", zap.String("recipe_id", raw))
			continue
		}
		alternatives = append(alternatives, alt)
	}

	reason := pick.Reason
	if reason == "" {
		reason = fmt.Sprintf("A well-rated %s pick matching your preferences.", mealType)
	}

	return &generativePick{Recipe: chosen, Alternatives: alternatives, Reason: reason}, nil
}
