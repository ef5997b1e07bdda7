package voice

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/platewise/backend/internal/domain/recipe"
)

// Match score bounds and weights
const (
	baseScore      = 85
	categoryBonus  = 10
	timeCloseBonus = 10
	timeNearBonus  = 5
	minScore       = 75
	maxScore       = 99
)

// keywordCategory links trigger words in the utterance to marker words
// expected in a matching recipe. The tired category maps to energizing
// food rather than echoing the trigger.
type keywordCategory struct {
	triggers []string
	markers  []string
}

var keywordCategories = []keywordCategory{
	{triggers: []string{"quick", "fast", "hurry", "no time"}, markers: []string{"quick", "easy", "simple"}},
	{triggers: []string{"sweet", "dessert", "sugar"}, markers: []string{"sweet", "dessert"}},
	{triggers: []string{"spicy", "hot", "kick"}, markers: []string{"spicy", "chili", "pepper"}},
	{triggers: []string{"healthy", "light", "fresh"}, markers: []string{"healthy", "light", "salad", "fresh"}},
	{triggers: []string{"comfort", "cozy", "warm"}, markers: []string{"comfort", "hearty", "warm"}},
	{triggers: []string{"tired", "exhausted", "energy"}, markers: []string{"energizing", "protein", "boost"}},
}

var minutesPattern = regexp.MustCompile(`(\d+)\s*min`)

// MatchScore computes a heuristic 0-100 relevance score between a
// free-text intent and a recipe. Starts at 85; each keyword category
// triggered by the utterance and marked in the recipe adds 10; an
// explicit minute figure adds 10 when the cooking time is within 5
// minutes, 5 when within 10. The result is clamped to [75, 99].
func MatchScore(utterance string, r *recipe.Recipe) int {
	utterance = strings.ToLower(utterance)
	haystack := strings.ToLower(r.Name + " " + r.Description + " " + strings.Join(r.Tags, " "))

	score := baseScore

	for _, cat := range keywordCategories {
		if !containsAny(utterance, cat.triggers) {
			continue
		}
		if containsAny(haystack, cat.markers) {
			score += categoryBonus
		}
	}

	if m := minutesPattern.FindStringSubmatch(utterance); m != nil {
		if wanted, err := strconv.Atoi(m[1]); err == nil {
			diff := r.CookingTimeMinutes - wanted
			if diff < 0 {
				diff = -diff
			}
			switch {
			case diff <= 5:
				score += timeCloseBonus
			case diff <= 10:
				score += timeNearBonus
			}
		}
	}

	if score < minScore {
		score = minScore
	}
	if score > maxScore {
		score = maxScore
	}
	return score
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
