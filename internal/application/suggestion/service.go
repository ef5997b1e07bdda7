// Package suggestion provides the daily suggestion batch generator:
// cached reads with dislike exclusion, rate-limited regeneration, and a
// per-recipe persistence loop with best-effort image generation.
package suggestion

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platewise/backend/internal/application/recommendation"
	"github.com/platewise/backend/internal/domain/recipe"
	domainrec "github.com/platewise/backend/internal/domain/recommendation"
	"github.com/platewise/backend/internal/ports/inbound"
	"github.com/platewise/backend/internal/ports/outbound"
	"github.com/platewise/backend/pkg/errors"
)

// Window for damping repetition across consecutive days' batches
const recentSuggestionWindowDays = 7

// Service implements the suggestion batch use cases
type Service struct {
	aggregator  *recommendation.ContextAggregator
	recipes     outbound.RecipeRepository
	suggestions outbound.SuggestionRepository
	completions outbound.CompletionService
	images      outbound.ImageService
	imagesOn    bool
	logger      *zap.Logger
	now         func() time.Time
}

// NewService creates a new suggestion batch service. imagesEnabled is the
// startup-resolved feature flag for suggestion image generation.
func NewService(
	aggregator *recommendation.ContextAggregator,
	recipes outbound.RecipeRepository,
	suggestions outbound.SuggestionRepository,
	completions outbound.CompletionService,
	images outbound.ImageService,
	imagesEnabled bool,
	logger *zap.Logger,
) *Service {
	return &Service{
		aggregator:  aggregator,
		recipes:     recipes,
		suggestions: suggestions,
		completions: completions,
		images:      images,
		imagesOn:    imagesEnabled,
		logger:      logger.Named("suggestion-service"),
		now:         time.Now,
	}
}

var _ inbound.SuggestionService = (*Service)(nil)

// GetSuggestions returns the day's suggestion batch. Without force, an
// existing batch is returned as cached, even when the dislike exclusion
// has thinned it below the generation size; regenerating here would burn
// the user's rate-limit budget without being asked. With force, the prior
// batch is discarded and a new one generated, subject to the per-day
// budget.
func (s *Service) GetSuggestions(ctx context.Context, userID uuid.UUID, date time.Time, force bool) (*inbound.SuggestionBatchDTO, error) {
	date = truncateToDate(date)

	if !force {
		cached, err := s.suggestions.FindForDate(ctx, userID, date)
		if err != nil {
			return nil, errors.NewDatabaseError("load cached suggestions", err)
		}
		if len(cached) > 0 {
			return &inbound.SuggestionBatchDTO{Recipes: cached, Cached: true}, nil
		}
	} else {
		state, err := s.suggestions.BatchState(ctx, userID, date)
		if err != nil {
			return nil, errors.NewDatabaseError("load batch state", err)
		}
		if state.LimitReached() {
			return nil, errors.NewRegenerationLimitError(domainrec.MaxBatchesPerDay)
		}
		if err := s.suggestions.DeleteForDate(ctx, userID, date); err != nil {
			return nil, errors.NewDatabaseError("discard prior suggestions", err)
		}
	}

	recipes, err := s.generateBatch(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	return &inbound.SuggestionBatchDTO{Recipes: recipes, Cached: false}, nil
}

// generateBatch runs one generation round: prompt assembly, completion
// call, then the per-recipe persistence loop. A single recipe failing to
// persist is skipped; the round fails only when nothing persisted.
func (s *Service) generateBatch(ctx context.Context, userID uuid.UUID, date time.Time) ([]*recipe.Recipe, error) {
	prefs, history, err := s.aggregator.Aggregate(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	since := date.AddDate(0, 0, -recentSuggestionWindowDays)
	recentNames, err := s.suggestions.FindRecentSuggestionNames(ctx, userID, since)
	if err != nil {
		s.logger.Warn("Failed to load recent suggestion names", zap.Error(err))
	}

	count, err := s.suggestions.IncrementGeneration(ctx, userID, date)
	if err != nil {
		return nil, errors.NewDatabaseError("increment generation counter", err)
	}
	if count > domainrec.MaxBatchesPerDay {
		// A concurrent regeneration consumed the last budget slot between
		// our state read and the increment.
		return nil, errors.NewRegenerationLimitError(domainrec.MaxBatchesPerDay)
	}

	system, user := recommendation.BuildBatchPrompts(prefs, history, recentNames, domainrec.MaxBatchSize)
	generated, err := s.completions.GenerateRecipes(ctx, system, user, domainrec.MaxBatchSize)
	if err != nil {
		s.releaseBudgetSlot(ctx, userID, date)
		return nil, errors.NewGenerationError(err)
	}
	if len(generated) < domainrec.MinBatchSize {
		s.releaseBudgetSlot(ctx, userID, date)
		return nil, errors.NewGenerationError(nil).WithMetadata("generated", len(generated))
	}
	if len(generated) > domainrec.MaxBatchSize {
		generated = generated[:domainrec.MaxBatchSize]
	}

	persisted := make([]*recipe.Recipe, 0, len(generated))
	for _, g := range generated {
		r := fromGenerated(g, s.now())

		if s.imagesOn {
			if url, imgErr := s.images.GenerateRecipeImage(ctx, r.Name, r.Description); imgErr != nil {
				s.logger.Warn("Image generation failed, continuing without image",
					zap.String("recipe", r.Name), zap.Error(imgErr))
			} else {
				r.ImageURL = url
			}
		}

		if err := s.recipes.Create(ctx, r); err != nil {
			s.logger.Error("Failed to persist generated recipe, skipping",
				zap.String("recipe", r.Name), zap.Error(err))
			continue
		}
		if err := s.suggestions.Link(ctx, userID, date, r.ID); err != nil {
			s.logger.Error("Failed to link suggestion, skipping",
				zap.String("recipe_id", r.ID.String()), zap.Error(err))
			continue
		}
		persisted = append(persisted, r)
	}

	if len(persisted) == 0 {
		s.releaseBudgetSlot(ctx, userID, date)
		return nil, errors.NewInternalError("no suggestions could be persisted")
	}

	s.logger.Info("Suggestion batch generated",
		zap.String("user_id", userID.String()),
		zap.Int("generated", len(generated)),
		zap.Int("persisted", len(persisted)),
		zap.Int("generation_count", count),
	)

	return persisted, nil
}

// releaseBudgetSlot hands the incremented budget slot back when the
// round produced nothing. Only rounds that persist recipes count
// against the per-day limit.
func (s *Service) releaseBudgetSlot(ctx context.Context, userID uuid.UUID, date time.Time) {
	if err := s.suggestions.ReleaseGeneration(ctx, userID, date); err != nil {
		s.logger.Warn("Failed to release generation budget slot",
			zap.String("user_id", userID.String()), zap.Error(err))
	}
}

func fromGenerated(g outbound.GeneratedRecipe, now time.Time) *recipe.Recipe {
	return &recipe.Recipe{
		ID:                 uuid.New(),
		Name:               g.Name,
		Description:        g.Description,
		Cuisine:            g.Cuisine,
		Category:           g.Category,
		Difficulty:         recipe.DifficultyLevel(g.Difficulty),
		CookingTimeMinutes: g.CookingTimeMinutes,
		Tags:               g.Tags,
		Ingredients:        g.Ingredients,
		Instructions:       g.Instructions,
		Nutrition: recipe.NutritionInfo{
			Calories: g.Calories,
			Protein:  g.Protein,
			Carbs:    g.Carbs,
			Fat:      g.Fat,
		},
		AIGenerated: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
