package recommendation

import (
	"fmt"
	"strings"

	"github.com/platewise/backend/internal/domain/profile"
)

// Constraints separates safety constraints from taste signals. Hard
// constraints must never be violated by generated or selected recipes;
// soft context only biases generation.
type Constraints struct {
	Hard []string
	Soft []string
}

// BuildConstraints converts a preference profile into prompt-ready
// constraint lists. Allergies, disliked ingredients and strict diets
// (vegan, vegetarian, halal, kosher) are hard; everything else is soft,
// including non-strict diets like keto or paleo.
func BuildConstraints(p *profile.PreferenceProfile) Constraints {
	var c Constraints

	for _, allergy := range p.Allergies {
		if allergy = strings.TrimSpace(allergy); allergy != "" {
			c.Hard = append(c.Hard, fmt.Sprintf("Must not contain %s (allergy)", allergy))
		}
	}
	for _, ing := range p.DislikedIngredients {
		if ing = strings.TrimSpace(ing); ing != "" {
			c.Hard = append(c.Hard, fmt.Sprintf("Must not contain %s (disliked ingredient)", ing))
		}
	}
	if diet := p.StrictDiet(); diet != "" {
		c.Hard = append(c.Hard, fmt.Sprintf("Must be strictly %s", diet))
	}

	if diet := p.ActiveDiet(); diet != "" && !profile.StrictDiets[diet] {
		c.Soft = append(c.Soft, fmt.Sprintf("Prefers a %s diet", diet))
	}
	if len(p.PreferredCuisines) > 0 {
		c.Soft = append(c.Soft, fmt.Sprintf("Preferred cuisines: %s", strings.Join(p.PreferredCuisines, ", ")))
	}
	if p.CookingSkill != "" {
		c.Soft = append(c.Soft, fmt.Sprintf("Cooking skill: %s", p.CookingSkill))
	}
	if p.PreferredCookingTime != "" {
		c.Soft = append(c.Soft, fmt.Sprintf("Preferred cooking time: %s", describeTimeBucket(p.PreferredCookingTime)))
	}
	if p.PeopleCount > 0 {
		c.Soft = append(c.Soft, fmt.Sprintf("Cooking for %d people", p.PeopleCount))
	}
	if len(p.Goals) > 0 {
		c.Soft = append(c.Soft, fmt.Sprintf("Goals: %s", strings.Join(p.Goals, ", ")))
	}

	return c
}

func describeTimeBucket(b profile.TimeBucket) string {
	switch b {
	case profile.TimeBucketQuick:
		return "under 30 minutes"
	case profile.TimeBucketStandard:
		return "30 to 60 minutes"
	case profile.TimeBucketLeisure:
		return "over 60 minutes"
	default:
		return string(b)
	}
}
