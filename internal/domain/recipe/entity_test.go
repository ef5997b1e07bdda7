package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMealTypeForHour(t *testing.T) {
	tests := []struct {
		name string
		hour int
		want MealType
	}{
		{"early morning", 6, MealTypeBreakfast},
		{"last breakfast hour", 10, MealTypeBreakfast},
		{"first lunch hour", 11, MealTypeLunch},
		{"mid afternoon", 15, MealTypeLunch},
		{"first dinner hour", 16, MealTypeDinner},
		{"late evening", 22, MealTypeDinner},
		{"midnight", 0, MealTypeBreakfast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MealTypeForHour(tt.hour))
		})
	}
}

func TestMatchesDiet(t *testing.T) {
	r := &Recipe{Tags: []string{"Vegan", "quick"}}

	assert.True(t, r.MatchesDiet("vegan"))
	assert.True(t, r.MatchesDiet("VEGAN"))
	assert.True(t, r.MatchesDiet("vegetarian"), "vegan recipes satisfy vegetarian")
	assert.True(t, r.MatchesDiet(""), "empty diet matches everything")
	assert.False(t, r.MatchesDiet("halal"))

	veggie := &Recipe{Tags: []string{"vegetarian"}}
	assert.True(t, veggie.MatchesDiet("vegetarian"))
	assert.False(t, veggie.MatchesDiet("vegan"), "vegetarian does not imply vegan")
}

func TestContainsAnyIngredient(t *testing.T) {
	r := &Recipe{Ingredients: []string{"2 tbsp peanut butter", "1 cup flour"}}

	assert.True(t, r.ContainsAnyIngredient([]string{"peanuts", "peanut"}))
	assert.False(t, r.ContainsAnyIngredient([]string{"shrimp"}))
	assert.False(t, r.ContainsAnyIngredient([]string{"", "  "}))
	assert.False(t, r.ContainsAnyIngredient(nil))
}
