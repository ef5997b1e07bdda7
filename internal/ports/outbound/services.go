package outbound

import (
	"context"
	"io"
)

// DailyPick is the structured response expected from the completion
// service on the daily recommendation path. The recommended ID must
// name a member of the candidate pool; unknown alternative IDs are
// dropped during validation, not treated as errors.
type DailyPick struct {
	RecommendedRecipeID  string   `json:"recommendedRecipeId"`
	AlternativeRecipeIDs []string `json:"alternativeRecipeIds"`
	Reason               string   `json:"reason"`
}

// GeneratedRecipe is one brand-new recipe returned by the completion
// service on the batch and voice paths.
type GeneratedRecipe struct {
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Cuisine            string   `json:"cuisine"`
	Category           string   `json:"category"`
	Difficulty         string   `json:"difficulty"`
	CookingTimeMinutes int      `json:"cookingTimeMinutes"`
	Tags               []string `json:"tags"`
	Ingredients        []string `json:"ingredients"`
	Instructions       []string `json:"instructions"`
	Calories           int      `json:"calories"`
	Protein            float64  `json:"protein"`
	Carbs              float64  `json:"carbs"`
	Fat                float64  `json:"fat"`
}

// CompletionService is the generative completion collaborator:
// structured prompt in, structured JSON out.
type CompletionService interface {
	// PickDailyRecommendation asks the model to choose one recipe from the
	// candidate pool plus alternatives and a reason.
	PickDailyRecommendation(ctx context.Context, systemPrompt, userPrompt string) (*DailyPick, error)

	// GenerateRecipes asks the model for count brand-new recipes.
	GenerateRecipes(ctx context.Context, systemPrompt, userPrompt string, count int) ([]GeneratedRecipe, error)
}

// ImageService generates a recipe image and returns its URL.
// All call sites treat failures as non-fatal.
type ImageService interface {
	GenerateRecipeImage(ctx context.Context, recipeName, description string) (string, error)
}

// TranscriptionService converts audio to text
type TranscriptionService interface {
	Transcribe(ctx context.Context, audio io.Reader, filename, mimeType string) (string, error)
}
