package gorm

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platewise/backend/internal/domain/recommendation"
	"github.com/platewise/backend/internal/ports/outbound"
	apperrors "github.com/platewise/backend/pkg/errors"
)

// RecommendationRepository implements daily recommendation persistence
// using GORM
type RecommendationRepository struct {
	db *gorm.DB
}

// NewRecommendationRepository creates a new recommendation repository
func NewRecommendationRepository(db *gorm.DB) outbound.RecommendationRepository {
	return &RecommendationRepository{db: db}
}

// FindByUserAndDate returns the recommendation row for (user, date),
// or (nil, nil) when none exists yet
func (r *RecommendationRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*recommendation.DailyRecommendation, error) {
	var model DailyRecommendationModel

	result := r.db.WithContext(ctx).
		First(&model, "user_id = ? AND date = ?", userID, date.Format(dateLayout))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewDatabaseError("find daily recommendation", result.Error)
	}

	return ModelToRecommendation(&model), nil
}

// FindByID finds a recommendation by ID
func (r *RecommendationRepository) FindByID(ctx context.Context, id uuid.UUID) (*recommendation.DailyRecommendation, error) {
	var model DailyRecommendationModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewRecommendationNotFoundError(id.String())
		}
		return nil, apperrors.NewDatabaseError("find daily recommendation", result.Error)
	}

	return ModelToRecommendation(&model), nil
}

// Create inserts the recommendation row. A concurrent insert for the
// same (user, date) trips the unique index; that surfaces as a conflict
// error so the caller can re-read the winner's row.
func (r *RecommendationRepository) Create(ctx context.Context, rec *recommendation.DailyRecommendation) error {
	model := RecommendationToModel(rec)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return apperrors.NewAppError(apperrors.CodeConflict, "daily recommendation already exists for this date", "")
		}
		return apperrors.NewDatabaseError("create daily recommendation", result.Error)
	}

	rec.ID = model.ID
	return nil
}

// UpdateResponse marks the recommendation accepted or declined and
// returns the updated row. Returns (nil, nil) when the ID is unknown.
func (r *RecommendationRepository) UpdateResponse(ctx context.Context, id uuid.UUID, accepted bool) (*recommendation.DailyRecommendation, error) {
	result := r.db.WithContext(ctx).
		Model(&DailyRecommendationModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"presented": true,
			"accepted":  accepted,
		})
	if result.Error != nil {
		return nil, apperrors.NewDatabaseError("update recommendation response", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	var model DailyRecommendationModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, apperrors.NewDatabaseError("reload recommendation", err)
	}

	return ModelToRecommendation(&model), nil
}

// isDuplicateKey reports whether err is a unique-constraint violation.
// GORM translates driver errors when TranslateError is enabled; the
// string checks cover drivers that don't.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint")
}
