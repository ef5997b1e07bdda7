// Package recommendation provides the daily recommendation engine:
// context aggregation, constraint building, generative selection with a
// deterministic rule-based fallback, and per-day caching.
package recommendation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platewise/backend/internal/domain/recipe"
	"github.com/platewise/backend/internal/domain/recommendation"
	"github.com/platewise/backend/internal/ports/inbound"
	"github.com/platewise/backend/internal/ports/outbound"
	"github.com/platewise/backend/pkg/errors"
)

// Candidate pool sizing: well-rated corpus recipes, most-reviewed first
const (
	candidateMinRating = 4.0
	candidatePoolSize  = 30
)

// Service implements the daily recommendation use cases
type Service struct {
	aggregator  *ContextAggregator
	recipes     outbound.RecipeRepository
	store       outbound.RecommendationRepository
	completions outbound.CompletionService
	logger      *zap.Logger
	now         func() time.Time
}

// NewService creates a new daily recommendation service
func NewService(
	aggregator *ContextAggregator,
	recipes outbound.RecipeRepository,
	store outbound.RecommendationRepository,
	completions outbound.CompletionService,
	logger *zap.Logger,
) *Service {
	return &Service{
		aggregator:  aggregator,
		recipes:     recipes,
		store:       store,
		completions: completions,
		logger:      logger.Named("recommendation-service"),
		now:         time.Now,
	}
}

var _ inbound.RecommendationService = (*Service)(nil)

// GetDaily returns the recommendation for (user, date). The first request
// generates and persists one; every later request returns the stored row
// unmodified. There is no regeneration on this path.
func (s *Service) GetDaily(ctx context.Context, userID uuid.UUID, date time.Time) (*inbound.RecommendationDTO, error) {
	date = truncateToDate(date)

	existing, err := s.store.FindByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, errors.NewDatabaseError("load daily recommendation", err)
	}
	if existing != nil {
		return s.toDTO(ctx, existing)
	}

	prefs, history, err := s.aggregator.Aggregate(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	candidates, err := s.recipes.FindTopRated(ctx, candidateMinRating, candidatePoolSize)
	if err != nil {
		return nil, errors.NewDatabaseError("load candidate pool", err)
	}

	mealType := recipe.MealTypeForHour(s.now().Hour())

	pick, genErr := s.tryGenerative(ctx, prefs, history.RecentMeals, candidates, mealType)
	if genErr != nil {
		s.logger.Warn("Generative recommendation failed, using rule-based fallback",
			zap.String("user_id", userID.String()),
			zap.Error(genErr),
		)
		pick = fallbackRuleBased(prefs, history.RecentMeals, candidates, mealType)
		if pick == nil {
			return nil, errors.NewInternalError("no candidate recipes available")
		}
	}

	rec := &recommendation.DailyRecommendation{
		ID:                   uuid.New(),
		UserID:               userID,
		Date:                 date,
		RecipeID:             pick.Recipe.ID,
		Reason:               pick.Reason,
		AlternativeRecipeIDs: recipeIDs(pick.Alternatives),
		CreatedAt:            s.now(),
	}

	if err := s.store.Create(ctx, rec); err != nil {
		// A concurrent first-request won the insert race; return its row.
		if errors.Is(err, errors.CodeConflict) {
			winner, findErr := s.store.FindByUserAndDate(ctx, userID, date)
			if findErr == nil && winner != nil {
				return s.toDTO(ctx, winner)
			}
		}
		return nil, errors.NewDatabaseError("persist daily recommendation", err)
	}

	s.logger.Info("Daily recommendation created",
		zap.String("user_id", userID.String()),
		zap.String("recipe_id", rec.RecipeID.String()),
		zap.String("meal_type", string(mealType)),
		zap.Bool("generative", genErr == nil),
	)

	return s.toDTO(ctx, rec)
}

// Respond records the user's accept/decline. The row must already exist.
func (s *Service) Respond(ctx context.Context, recommendationID uuid.UUID, accepted bool) (*inbound.RecommendationDTO, error) {
	rec, err := s.store.UpdateResponse(ctx, recommendationID, accepted)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.NewRecommendationNotFoundError(recommendationID.String())
	}

	s.logger.Info("Recommendation response recorded",
		zap.String("recommendation_id", recommendationID.String()),
		zap.Bool("accepted", accepted),
	)

	return s.toDTO(ctx, rec)
}

// toDTO resolves the recipe and alternatives from the corpus. Alternatives
// that have since vanished from the corpus are omitted.
func (s *Service) toDTO(ctx context.Context, rec *recommendation.DailyRecommendation) (*inbound.RecommendationDTO, error) {
	main, err := s.recipes.FindByID(ctx, rec.RecipeID)
	if err != nil {
		return nil, errors.NewDatabaseError("resolve recommended recipe", err)
	}

	var alternatives []*recipe.Recipe
	if len(rec.AlternativeRecipeIDs) > 0 {
		alternatives, err = s.recipes.FindByIDs(ctx, rec.AlternativeRecipeIDs)
		if err != nil {
			return nil, errors.NewDatabaseError("resolve alternative recipes", err)
		}
	}

	return &inbound.RecommendationDTO{
		ID:           rec.ID,
		Date:         rec.Date.Format("2006-01-02"),
		Recipe:       main,
		Reason:       rec.Reason,
		Alternatives: alternatives,
		Presented:    rec.Presented,
		Accepted:     rec.Accepted,
	}, nil
}

func recipeIDs(recipes []*recipe.Recipe) []uuid.UUID {
	ids := make([]uuid.UUID, len(recipes))
	for i, r := range recipes {
		ids[i] = r.ID
	}
	return ids
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
