package recommendation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/platewise/backend/internal/domain/profile"
)

func TestBuildConstraintsHardSoftSplit(t *testing.T) {
	prefs := &profile.PreferenceProfile{
		DietTypes:            []string{"vegan"},
		Allergies:            []string{"peanut", " shellfish "},
		DislikedIngredients:  []string{"cilantro"},
		PreferredCuisines:    []string{"Thai", "Italian"},
		CookingSkill:         profile.SkillIntermediate,
		PreferredCookingTime: profile.TimeBucketQuick,
		PeopleCount:          2,
		Goals:                []string{"eat more protein"},
	}

	c := BuildConstraints(prefs)

	assert.Equal(t, []string{
		"Must not contain peanut (allergy)",
		"Must not contain shellfish (allergy)",
		"Must not contain cilantro (disliked ingredient)",
		"Must be strictly vegan",
	}, c.Hard)

	assert.Contains(t, c.Soft, "Preferred cuisines: Thai, Italian")
	assert.Contains(t, c.Soft, "Cooking skill: intermediate")
	assert.Contains(t, c.Soft, "Preferred cooking time: under 30 minutes")
	assert.Contains(t, c.Soft, "Cooking for 2 people")
	assert.Contains(t, c.Soft, "Goals: eat more protein")
}

func TestBuildConstraintsNonStrictDietIsSoft(t *testing.T) {
	c := BuildConstraints(&profile.PreferenceProfile{DietTypes: []string{"keto"}})

	assert.Empty(t, c.Hard)
	assert.Contains(t, c.Soft, "Prefers a keto diet")
}

func TestBuildConstraintsEmptyProfile(t *testing.T) {
	c := BuildConstraints(&profile.PreferenceProfile{})

	assert.Empty(t, c.Hard)
	assert.Empty(t, c.Soft)
}

func TestBuildConstraintsSkipsBlankEntries(t *testing.T) {
	c := BuildConstraints(&profile.PreferenceProfile{
		Allergies:           []string{"", "  "},
		DislikedIngredients: []string{" "},
	})

	assert.Empty(t, c.Hard)
}
