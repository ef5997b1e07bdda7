package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platewise/backend/internal/domain/profile"
	"github.com/platewise/backend/internal/ports/outbound"
	apperrors "github.com/platewise/backend/pkg/errors"
)

// PreferenceRepository implements read access to user preference
// profiles using GORM
type PreferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository creates a new preference repository
func NewPreferenceRepository(db *gorm.DB) outbound.PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// FindByUserID returns the user's preference profile, or (nil, nil)
// when the user has never completed onboarding
func (r *PreferenceRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*profile.PreferenceProfile, error) {
	var model PreferenceModel

	result := r.db.WithContext(ctx).First(&model, "user_id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewDatabaseError("find preferences", result.Error)
	}

	return ModelToProfile(&model), nil
}
