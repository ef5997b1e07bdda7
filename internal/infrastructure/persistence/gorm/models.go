// Package gorm provides GORM model definitions and repository
// implementations for the engine's persistence layer
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// dateLayout is the storage format for date-keyed columns. Dates are
// kept as plain strings so equality predicates behave the same on
// postgres and sqlite; sqlite would otherwise store a full timestamp.
const dateLayout = "2006-01-02"

// PreferenceModel represents the GORM model for user preference profiles.
// One row per user, written by the preferences service.
type PreferenceModel struct {
	UserID               uuid.UUID   `gorm:"type:char(36);primaryKey"`
	DietTypes            StringSlice `gorm:"type:json"`
	Allergies            StringSlice `gorm:"type:json"`
	DislikedIngredients  StringSlice `gorm:"type:json"`
	PreferredCuisines    StringSlice `gorm:"type:json"`
	CookingSkill         string      `gorm:"type:varchar(20)"`
	PreferredCookingTime string      `gorm:"type:varchar(20)"`
	PeopleCount          int         `gorm:"default:1"`
	Goals                StringSlice `gorm:"type:json"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// RecipeModel represents the GORM model for corpus recipes.
// AI-generated suggestions are stored as regular rows with AIGenerated set.
type RecipeModel struct {
	ID                 uuid.UUID   `gorm:"type:char(36);primaryKey"`
	Name               string      `gorm:"type:varchar(255);not null;index"`
	Description        string      `gorm:"type:text"`
	Cuisine            string      `gorm:"type:varchar(50);index"`
	Category           string      `gorm:"type:varchar(50);index"`
	Difficulty         string      `gorm:"type:varchar(20)"`
	CookingTimeMinutes int         `gorm:"default:0"`
	Rating             float64     `gorm:"default:0;index"`
	ReviewCount        int         `gorm:"default:0;index"`
	Tags               StringSlice `gorm:"type:json"`
	Ingredients        StringSlice `gorm:"type:json"`
	Instructions       StringSlice `gorm:"type:json"`
	Nutrition          JSONField   `gorm:"type:json"`
	ImageURL           string      `gorm:"type:text"`
	AIGenerated        bool        `gorm:"default:false;index"`
	CreatedAt          time.Time   `gorm:"index"`
	UpdatedAt          time.Time
}

// SavedRecipeModel links a user to a bookmarked corpus recipe
type SavedRecipeModel struct {
	UserID    uuid.UUID `gorm:"type:char(36);primaryKey"`
	RecipeID  uuid.UUID `gorm:"type:char(36);primaryKey"`
	CreatedAt time.Time `gorm:"index"`

	Recipe RecipeModel `gorm:"foreignKey:RecipeID"`
}

// MealHistoryModel is the user's meal log. Name, cuisine and category
// are snapshotted at cook time so later recipe edits don't rewrite
// history.
type MealHistoryModel struct {
	ID       uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID   uuid.UUID `gorm:"type:char(36);not null;index"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Cuisine  string    `gorm:"type:varchar(50)"`
	Category string    `gorm:"type:varchar(50)"`
	Liked    bool      `gorm:"default:false"`
	CookedAt time.Time `gorm:"index"`
}

// DislikedRecipeModel records a recipe the user explicitly rejected.
// Suggestion reads anti-join against this table.
type DislikedRecipeModel struct {
	UserID    uuid.UUID `gorm:"type:char(36);primaryKey"`
	RecipeID  uuid.UUID `gorm:"type:char(36);primaryKey"`
	CreatedAt time.Time `gorm:"index"`

	Recipe RecipeModel `gorm:"foreignKey:RecipeID"`
}

// CreatedRecipeModel links a user to a corpus recipe they authored
type CreatedRecipeModel struct {
	UserID    uuid.UUID `gorm:"type:char(36);primaryKey"`
	RecipeID  uuid.UUID `gorm:"type:char(36);primaryKey"`
	CreatedAt time.Time `gorm:"index"`

	Recipe RecipeModel `gorm:"foreignKey:RecipeID"`
}

// DailyRecommendationModel represents the single recommendation row for
// a (user, date) pair. The composite unique index is what makes the
// create-once invariant hold under concurrent requests.
type DailyRecommendationModel struct {
	ID                   uuid.UUID   `gorm:"type:char(36);primaryKey"`
	UserID               uuid.UUID   `gorm:"type:char(36);not null;uniqueIndex:idx_daily_user_date"`
	Date                 string      `gorm:"type:char(10);not null;uniqueIndex:idx_daily_user_date"`
	RecipeID             uuid.UUID   `gorm:"type:char(36);not null"`
	Reason               string      `gorm:"type:text"`
	AlternativeRecipeIDs StringSlice `gorm:"type:json"`
	Presented            bool        `gorm:"default:false"`
	Accepted             bool        `gorm:"default:false"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// SuggestionLinkModel associates a generated recipe with the (user, date)
// batch it was suggested in
type SuggestionLinkModel struct {
	UserID    uuid.UUID `gorm:"type:char(36);primaryKey"`
	Date      string    `gorm:"type:char(10);primaryKey"`
	RecipeID  uuid.UUID `gorm:"type:char(36);primaryKey"`
	Position  int       `gorm:"default:0"`
	CreatedAt time.Time

	Recipe RecipeModel `gorm:"foreignKey:RecipeID"`
}

// SuggestionBatchStateModel tracks how many times a batch was generated
// for a (user, date) pair. GeneratedCount is only ever mutated through
// an atomic in-database increment.
type SuggestionBatchStateModel struct {
	UserID         uuid.UUID `gorm:"type:char(36);primaryKey"`
	Date           string    `gorm:"type:char(10);primaryKey"`
	GeneratedCount int       `gorm:"default:0"`
	GeneratedAt    time.Time
	UpdatedAt      time.Time
}

// StringSlice custom type for handling string slices in JSON
type StringSlice []string

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", value)
	}
}

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// JSONField custom type for handling JSON fields
type JSONField map[string]interface{}

// Scan implements the sql.Scanner interface
func (j *JSONField) Scan(value interface{}) error {
	if value == nil {
		*j = JSONField{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	default:
		return fmt.Errorf("cannot scan %T into JSONField", value)
	}
}

// Value implements the driver.Valuer interface
func (j JSONField) Value() (driver.Value, error) {
	if len(j) == 0 {
		return "{}", nil
	}
	return json.Marshal(j)
}

// BeforeCreate hook for RecipeModel
func (r *RecipeModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for DailyRecommendationModel
func (d *DailyRecommendationModel) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for MealHistoryModel
func (m *MealHistoryModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName methods for custom table names
func (PreferenceModel) TableName() string {
	return "user_preferences"
}

func (RecipeModel) TableName() string {
	return "recipes"
}

func (SavedRecipeModel) TableName() string {
	return "saved_recipes"
}

func (MealHistoryModel) TableName() string {
	return "meal_history"
}

func (DislikedRecipeModel) TableName() string {
	return "disliked_recipes"
}

func (CreatedRecipeModel) TableName() string {
	return "created_recipes"
}

func (DailyRecommendationModel) TableName() string {
	return "daily_recommendations"
}

func (SuggestionLinkModel) TableName() string {
	return "suggestion_links"
}

func (SuggestionBatchStateModel) TableName() string {
	return "suggestion_batch_states"
}

// AllModels returns every model for auto-migration
func AllModels() []interface{} {
	return []interface{}{
		&PreferenceModel{},
		&RecipeModel{},
		&SavedRecipeModel{},
		&MealHistoryModel{},
		&DislikedRecipeModel{},
		&CreatedRecipeModel{},
		&DailyRecommendationModel{},
		&SuggestionLinkModel{},
		&SuggestionBatchStateModel{},
	}
}
