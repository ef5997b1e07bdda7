// Package voice provides the voice intent recommendation path: transcribed
// mood input drives a one-off generation, ranked by heuristic match score.
// Stateless: no per-day caching, no rate limiting.
package voice

import (
	"context"
	"sort"
	"strings"
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

const maxReturnedRecipes = 5

// Service implements the voice intent use cases
type Service struct {
	aggregator    *recommendation.ContextAggregator
	recipes       outbound.RecipeRepository
	completions   outbound.CompletionService
	images        outbound.ImageService
	transcription outbound.TranscriptionService
	imagesOn      bool
	logger        *zap.Logger
	now           func() time.Time
}

// NewService creates a new voice intent service
func NewService(
	aggregator *recommendation.ContextAggregator,
	recipes outbound.RecipeRepository,
	completions outbound.CompletionService,
	images outbound.ImageService,
	transcription outbound.TranscriptionService,
	imagesEnabled bool,
	logger *zap.Logger,
) *Service {
	return &Service{
		aggregator:    aggregator,
		recipes:       recipes,
		completions:   completions,
		images:        images,
		transcription: transcription,
		imagesOn:      imagesEnabled,
		logger:        logger.Named("voice-service"),
		now:           time.Now,
	}
}

var _ inbound.VoiceService = (*Service)(nil)

// SuggestFromIntent generates recipes for a free-text mood. Provided
// audio is transcribed first; explicit text skips transcription.
func (s *Service) SuggestFromIntent(ctx context.Context, cmd inbound.VoiceIntentCommand) (*inbound.VoiceSuggestionsDTO, error) {
	utterance := strings.TrimSpace(cmd.Text)
	if utterance == "" && cmd.Audio != nil {
		transcribed, err := s.transcription.Transcribe(ctx, cmd.Audio, cmd.Filename, cmd.MimeType)
		if err != nil {
			return nil, errors.NewTranscriptionError(err)
		}
		utterance = strings.TrimSpace(transcribed)
	}
	if utterance == "" {
		return nil, errors.NewBadRequestError("Transcription is empty, please provide text or audible audio")
	}

	prefs, _, err := s.aggregator.Aggregate(ctx, cmd.UserID, s.now())
	if err != nil {
		return nil, err
	}

	system, user := recommendation.BuildVoicePrompts(prefs, utterance, domainrec.MaxBatchSize)
	generated, err := s.completions.GenerateRecipes(ctx, system, user, domainrec.MaxBatchSize)
	if err != nil {
		return nil, errors.NewGenerationError(err)
	}
	if len(generated) == 0 {
		return nil, errors.NewGenerationError(nil)
	}

	scored := make([]inbound.ScoredRecipe, 0, len(generated))
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

		scored = append(scored, inbound.ScoredRecipe{Recipe: r, MatchScore: MatchScore(utterance, r)})
	}

	if len(scored) == 0 {
		return nil, errors.NewInternalError("no suggestions could be persisted")
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	})
	if len(scored) > maxReturnedRecipes {
		scored = scored[:maxReturnedRecipes]
	}

	s.logger.Info("Voice suggestions generated",
		zap.String("user_id", cmd.UserID.String()),
		zap.Int("recipes", len(scored)),
	)

	return &inbound.VoiceSuggestionsDTO{Transcription: utterance, Recipes: scored}, nil
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
