// Package recommendation contains the daily recommendation and
// suggestion batch domain model.
package recommendation

import (
	"time"

	"github.com/google/uuid"
)

// MaxBatchesPerDay is the per-(user, date) suggestion generation budget:
// the initial generation plus one regeneration.
const MaxBatchesPerDay = 2

// Suggestion batch sizing
const (
	MinBatchSize = 3
	MaxBatchSize = 5
)

// DailyRecommendation is the single recommendation record for a
// (user, date) pair. Created once, mutated only by accept/decline,
// never deleted.
type DailyRecommendation struct {
	ID                   uuid.UUID
	UserID               uuid.UUID
	Date                 time.Time
	RecipeID             uuid.UUID
	Reason               string
	AlternativeRecipeIDs []uuid.UUID
	Presented            bool
	Accepted             bool
	CreatedAt            time.Time
}

// SuggestionBatchState tracks suggestion generation for a (user, date)
// pair. GeneratedCount is an explicit counter incremented atomically by
// the store; the regeneration budget is enforced against it.
type SuggestionBatchState struct {
	UserID         uuid.UUID
	Date           time.Time
	GeneratedCount int
	GeneratedAt    time.Time
}

// LimitReached reports whether the generation budget is exhausted
func (s *SuggestionBatchState) LimitReached() bool {
	return s.GeneratedCount >= MaxBatchesPerDay
}
