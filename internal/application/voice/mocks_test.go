package voice

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/platewise/backend/internal/domain/profile"
	"github.com/platewise/backend/internal/domain/recipe"
	"github.com/platewise/backend/internal/ports/outbound"
)

// MockPreferenceRepository is a mock implementation of the preference repository
type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*profile.PreferenceProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.PreferenceProfile), args.Error(1)
}

// MockHistoryRepository is a mock implementation of the history repository
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) FindSavedRecipes(ctx context.Context, userID uuid.UUID, limit int) ([]profile.SavedRecipeSummary, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]profile.SavedRecipeSummary), args.Error(1)
}

func (m *MockHistoryRepository) FindRecentMeals(ctx context.Context, userID uuid.UUID, since time.Time) ([]profile.RecentMealEntry, error) {
	args := m.Called(ctx, userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]profile.RecentMealEntry), args.Error(1)
}

func (m *MockHistoryRepository) FindCreatedRecipes(ctx context.Context, userID uuid.UUID, limit int) ([]profile.CreatedRecipeSummary, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]profile.CreatedRecipeSummary), args.Error(1)
}

func (m *MockHistoryRepository) FindDislikedRecipes(ctx context.Context, userID uuid.UUID) ([]profile.DislikedRecipeEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]profile.DislikedRecipeEntry), args.Error(1)
}

// MockRecipeRepository is a mock implementation of the recipe repository
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) Create(ctx context.Context, r *recipe.Recipe) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipe.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*recipe.Recipe, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recipe.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindTopRated(ctx context.Context, minRating float64, limit int) ([]*recipe.Recipe, error) {
	args := m.Called(ctx, minRating, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recipe.Recipe), args.Error(1)
}

// MockCompletionService is a mock implementation of the completion service
type MockCompletionService struct {
	mock.Mock
}

func (m *MockCompletionService) PickDailyRecommendation(ctx context.Context, systemPrompt, userPrompt string) (*outbound.DailyPick, error) {
	args := m.Called(ctx, systemPrompt, userPrompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*outbound.DailyPick), args.Error(1)
}

func (m *MockCompletionService) GenerateRecipes(ctx context.Context, systemPrompt, userPrompt string, count int) ([]outbound.GeneratedRecipe, error) {
	args := m.Called(ctx, systemPrompt, userPrompt, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]outbound.GeneratedRecipe), args.Error(1)
}

// MockImageService is a mock implementation of the image service
type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) GenerateRecipeImage(ctx context.Context, recipeName, description string) (string, error) {
	args := m.Called(ctx, recipeName, description)
	return args.String(0), args.Error(1)
}

// MockTranscriptionService is a mock implementation of the transcription service
type MockTranscriptionService struct {
	mock.Mock
}

func (m *MockTranscriptionService) Transcribe(ctx context.Context, audio io.Reader, filename, mimeType string) (string, error) {
	args := m.Called(ctx, audio, filename, mimeType)
	return args.String(0), args.Error(1)
}
