// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/platewise/backend/internal/domain/recipe"
)

// RecommendationService defines the daily recommendation use cases
type RecommendationService interface {
	// GetDaily returns the recommendation for (user, date), generating and
	// persisting one on first request. Repeat calls return the cached row.
	GetDaily(ctx context.Context, userID uuid.UUID, date time.Time) (*RecommendationDTO, error)

	// Respond records the user's accept/decline on an existing recommendation.
	Respond(ctx context.Context, recommendationID uuid.UUID, accepted bool) (*RecommendationDTO, error)
}

// SuggestionService defines the suggestion batch use cases
type SuggestionService interface {
	// GetSuggestions returns the day's suggestion batch, generating one when
	// none exists. With force set it discards and regenerates, subject to the
	// per-day budget.
	GetSuggestions(ctx context.Context, userID uuid.UUID, date time.Time, force bool) (*SuggestionBatchDTO, error)
}

// VoiceService defines the voice intent use cases
type VoiceService interface {
	// SuggestFromIntent generates recipes matching a free-text mood. Audio,
	// when present, is transcribed first; Text takes precedence when set.
	SuggestFromIntent(ctx context.Context, cmd VoiceIntentCommand) (*VoiceSuggestionsDTO, error)
}

// RecommendationDTO is the daily recommendation response shape
type RecommendationDTO struct {
	ID           uuid.UUID        `json:"id"`
	Date         string           `json:"date"`
	Recipe       *recipe.Recipe   `json:"recipe"`
	Reason       string           `json:"reason"`
	Alternatives []*recipe.Recipe `json:"alternatives"`
	Presented    bool             `json:"presented"`
	Accepted     bool             `json:"accepted"`
}

// SuggestionBatchDTO is the suggestion batch response shape
type SuggestionBatchDTO struct {
	Recipes []*recipe.Recipe `json:"data"`
	Cached  bool             `json:"cached"`
}

// VoiceIntentCommand carries the voice suggestion input
type VoiceIntentCommand struct {
	UserID   uuid.UUID
	Text     string
	Audio    io.Reader
	Filename string
	MimeType string
}

// ScoredRecipe is a generated recipe with its intent match score
type ScoredRecipe struct {
	*recipe.Recipe
	MatchScore int `json:"matchScore"`
}

// VoiceSuggestionsDTO is the voice suggestion response shape
type VoiceSuggestionsDTO struct {
	Transcription string         `json:"transcription"`
	Recipes       []ScoredRecipe `json:"recipes"`
}
