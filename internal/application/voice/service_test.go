package voice

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/platewise/backend/internal/application/recommendation"
	"github.com/platewise/backend/internal/domain/profile"
	"github.com/platewise/backend/internal/ports/inbound"
	"github.com/platewise/backend/internal/ports/outbound"
	apperrors "github.com/platewise/backend/pkg/errors"
)

type voiceFixture struct {
	preferences   *MockPreferenceRepository
	history       *MockHistoryRepository
	recipes       *MockRecipeRepository
	completions   *MockCompletionService
	images        *MockImageService
	transcription *MockTranscriptionService
	service       *Service
}

func newFixture(t *testing.T, imagesEnabled bool) *voiceFixture {
	f := &voiceFixture{
		preferences:   new(MockPreferenceRepository),
		history:       new(MockHistoryRepository),
		recipes:       new(MockRecipeRepository),
		completions:   new(MockCompletionService),
		images:        new(MockImageService),
		transcription: new(MockTranscriptionService),
	}

	logger := zaptest.NewLogger(t)
	aggregator := recommendation.NewContextAggregator(f.preferences, f.history, logger)
	f.service = NewService(aggregator, f.recipes, f.completions, f.images, f.transcription, imagesEnabled, logger)
	return f
}

func (f *voiceFixture) expectAggregate(userID uuid.UUID) {
	f.preferences.On("FindByUserID", mock.Anything, userID).
		Return(&profile.PreferenceProfile{UserID: userID}, nil)
	f.history.On("FindSavedRecipes", mock.Anything, userID, mock.Anything).Return([]profile.SavedRecipeSummary{}, nil)
	f.history.On("FindRecentMeals", mock.Anything, userID, mock.Anything).Return([]profile.RecentMealEntry{}, nil)
	f.history.On("FindCreatedRecipes", mock.Anything, userID, mock.Anything).Return([]profile.CreatedRecipeSummary{}, nil)
	f.history.On("FindDislikedRecipes", mock.Anything, userID).Return([]profile.DislikedRecipeEntry{}, nil)
}

func generated(names ...string) []outbound.GeneratedRecipe {
	out := make([]outbound.GeneratedRecipe, len(names))
	for i, name := range names {
		out[i] = outbound.GeneratedRecipe{
			Name:               name,
			Description:        "A generated dish",
			Cuisine:            "Fusion",
			Category:           "main",
			Difficulty:         "easy",
			CookingTimeMinutes: 30,
		}
	}
	return out
}

func TestSuggestFromIntentWithText(t *testing.T) {
	f := newFixture(t, false)
	userID := uuid.New()

	f.expectAggregate(userID)
	f.completions.On("GenerateRecipes", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(generated("Dish One", "Dish Two"), nil)
	f.recipes.On("Create", mock.Anything, mock.Anything).Return(nil)

	got, err := f.service.SuggestFromIntent(context.Background(), inbound.VoiceIntentCommand{
		UserID: userID,
		Text:   "  something cozy  ",
	})
	require.NoError(t, err)

	assert.Equal(t, "something cozy", got.Transcription)
	assert.Len(t, got.Recipes, 2)
	f.transcription.AssertNotCalled(t, "Transcribe", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSuggestFromIntentTranscribesAudio(t *testing.T) {
	f := newFixture(t, false)
	userID := uuid.New()
	audio := strings.NewReader("fake audio bytes")

	f.transcription.On("Transcribe", mock.Anything, audio, "note.webm", "audio/webm").
		Return("I want something spicy", nil)
	f.expectAggregate(userID)
	f.completions.On("GenerateRecipes", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(generated("Spicy Noodles"), nil)
	f.recipes.On("Create", mock.Anything, mock.Anything).Return(nil)

	got, err := f.service.SuggestFromIntent(context.Background(), inbound.VoiceIntentCommand{
		UserID:   userID,
		Audio:    audio,
		Filename: "note.webm",
		MimeType: "audio/webm",
	})
	require.NoError(t, err)
	assert.Equal(t, "I want something spicy", got.Transcription)
}

func TestSuggestFromIntentTextSkipsTranscription(t *testing.T) {
	f := newFixture(t, false)
	userID := uuid.New()

	f.expectAggregate(userID)
	f.completions.On("GenerateRecipes", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(generated("Dish"), nil)
	f.recipes.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := f.service.SuggestFromIntent(context.Background(), inbound.VoiceIntentCommand{
		UserID:   userID,
		Text:     "explicit text wins",
		Audio:    strings.NewReader("ignored"),
		Filename: "ignored.webm",
	})
	require.NoError(t, err)
	f.transcription.AssertNotCalled(t, "Transcribe", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSuggestFromIntentEmptyTranscription(t *testing.T) {
	f := newFixture(t, false)
	userID := uuid.New()
	audio := strings.NewReader("silence")

	f.transcription.On("Transcribe", mock.Anything, audio, mock.Anything, mock.Anything).Return("   ", nil)

	_, err := f.service.SuggestFromIntent(context.Background(), inbound.VoiceIntentCommand{
		UserID: userID,
		Audio:  audio,
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeBadRequest))
	f.completions.AssertNotCalled(t, "GenerateRecipes", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSuggestFromIntentNoInput(t *testing.T) {
	f := newFixture(t, false)

	_, err := f.service.SuggestFromIntent(context.Background(), inbound.VoiceIntentCommand{UserID: uuid.New()})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeBadRequest))
}

func TestSuggestFromIntentTranscriptionFailure(t *testing.T) {
	f := newFixture(t, false)
	audio := strings.NewReader("garbled")

	f.transcription.On("Transcribe", mock.Anything, audio, mock.Anything, mock.Anything).
		Return("", errors.New("whisper unavailable"))

	_, err := f.service.SuggestFromIntent(context.Background(), inbound.VoiceIntentCommand{
		UserID: uuid.New(),
		Audio:  audio,
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeTranscriptionFailed))
}

func TestSuggestFromIntentRanksByMatchScore(t *testing.T) {
	f := newFixture(t, false)
	userID := uuid.New()

	// The second dish carries a quick marker, so it should outrank the first
	recipes := generated("Slow Braise", "Quick Stir Fry")
	recipes[1].Tags = []string{"quick", "easy"}

	f.expectAggregate(userID)
	f.completions.On("GenerateRecipes", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(recipes, nil)
	f.recipes.On("Create", mock.Anything, mock.Anything).Return(nil)

	got, err := f.service.SuggestFromIntent(context.Background(), inbound.VoiceIntentCommand{
		UserID: userID,
		Text:   "something quick tonight",
	})
	require.NoError(t, err)

	require.Len(t, got.Recipes, 2)
	assert.Equal(t, "Quick Stir Fry", got.Recipes[0].Name)
	assert.Greater(t, got.Recipes[0].MatchScore, got.Recipes[1].MatchScore)
}

func TestSuggestFromIntentGenerationFailure(t *testing.T) {
	f := newFixture(t, false)
	userID := uuid.New()

	f.expectAggregate(userID)
	f.completions.On("GenerateRecipes", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("model unavailable"))

	_, err := f.service.SuggestFromIntent(context.Background(), inbound.VoiceIntentCommand{
		UserID: userID,
		Text:   "anything",
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeGenerationFailed))
}

func TestSuggestFromIntentImageFailureNonFatal(t *testing.T) {
	f := newFixture(t, true)
	userID := uuid.New()

	f.expectAggregate(userID)
	f.completions.On("GenerateRecipes", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(generated("Dish"), nil)
	f.images.On("GenerateRecipeImage", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("image service down"))
	f.recipes.On("Create", mock.Anything, mock.Anything).Return(nil)

	got, err := f.service.SuggestFromIntent(context.Background(), inbound.VoiceIntentCommand{
		UserID: userID,
		Text:   "anything",
	})
	require.NoError(t, err)
	require.Len(t, got.Recipes, 1)
	assert.Empty(t, got.Recipes[0].ImageURL)
}
