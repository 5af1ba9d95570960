package matching

import "github.com/jonathan/job-portal/internal/types"

// Tier thresholds. Bands are inclusive on the lower bound.
const (
	strongMatchThreshold = 60
	goodMatchThreshold   = 40
)

// Classify maps a numeric score to a recommendation tier. Scores are
// clamped to [0, 100] by the scorer, so every value classifies.
func Classify(score int) types.Recommendation {
	switch {
	case score >= strongMatchThreshold:
		return types.StrongMatch
	case score >= goodMatchThreshold:
		return types.GoodMatch
	default:
		return types.WeakMatch
	}
}
