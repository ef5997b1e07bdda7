package voice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/platewise/backend/internal/domain/recipe"
)

func TestMatchScoreBase(t *testing.T) {
	r := &recipe.Recipe{Name: "Beef Stew", Description: "Slow cooked beef", CookingTimeMinutes: 120}
	assert.Equal(t, baseScore, MatchScore("something for dinner", r))
}

func TestMatchScoreKeywordCategories(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		recipe    *recipe.Recipe
		want      int
	}{
		{
			"quick trigger with easy marker",
			"I need something quick",
			&recipe.Recipe{Name: "Easy Stir Fry", Tags: []string{"easy"}},
			baseScore + categoryBonus,
		},
		{
			"trigger without marker",
			"I need something quick",
			&recipe.Recipe{Name: "Beef Wellington"},
			baseScore,
		},
		{
			"tired maps to energizing, not an echo",
			"I'm so tired today",
			&recipe.Recipe{Name: "Protein Power Bowl", Description: "An energizing bowl"},
			baseScore + categoryBonus,
		},
		{
			"marker in tags counts",
			"something spicy please",
			&recipe.Recipe{Name: "Arrabbiata", Tags: []string{"chili", "pasta"}},
			baseScore + categoryBonus,
		},
		{
			"two categories stack into the ceiling",
			"a quick healthy meal",
			&recipe.Recipe{Name: "Fresh Salad", Description: "quick and light"},
			maxScore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchScore(tt.utterance, tt.recipe))
		})
	}
}

func TestMatchScoreTimeBonus(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		minutes   int
		want      int
	}{
		{"exact match", "dinner in 30 minutes", 30, baseScore + timeCloseBonus},
		{"within five", "dinner in 30 minutes", 34, baseScore + timeCloseBonus},
		{"within ten", "dinner in 30 minutes", 39, baseScore + timeNearBonus},
		{"too far off", "dinner in 30 minutes", 55, baseScore},
		{"compact form", "20min meal", 22, baseScore + timeCloseBonus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recipe.Recipe{Name: "Dish", CookingTimeMinutes: tt.minutes}
			assert.Equal(t, tt.want, MatchScore(tt.utterance, r))
		})
	}
}

func TestMatchScoreClampedToCeiling(t *testing.T) {
	// Every category plus the time bonus would exceed 99
	r := &recipe.Recipe{
		Name:               "Quick Sweet Spicy Fresh Comfort Boost",
		Description:        "easy sweet chili salad hearty energizing",
		CookingTimeMinutes: 15,
	}
	got := MatchScore("quick sweet spicy healthy comfort tired, 15 minutes", r)
	assert.Equal(t, maxScore, got)
}

func TestMatchScoreNeverBelowFloor(t *testing.T) {
	r := &recipe.Recipe{Name: "Anything"}
	got := MatchScore("whatever", r)
	assert.GreaterOrEqual(t, got, minScore)
	assert.LessOrEqual(t, got, maxScore)
}
