package matching

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/jonathan/job-portal/internal/types"
)

// Point values for scoring components.
const (
	coverLetterSkillPoints = 20
	experienceSkillPoints  = 15
	portfolioPoints        = 10
	detailedCoverPoints    = 5
	maxBonusPoints         = 20 // bonus is in [0, maxBonusPoints)
	maxScore               = 100
)

// BonusFunc produces the bounded random bonus added to every score. It must
// be safe for concurrent use.
type BonusFunc func() int

// Scorer computes match scores for applications against a job's required
// skills. The bonus source is injectable so tests can pin deterministic
// outputs; the zero value is not usable, construct with NewScorer.
type Scorer struct {
	bonus BonusFunc
}

// NewScorer returns a scorer using the shared math/rand source for the
// bonus component.
func NewScorer() *Scorer {
	return &Scorer{bonus: func() int { return rand.IntN(maxBonusPoints) }}
}

// NewScorerWithBonus returns a scorer with a caller-supplied bonus source.
func NewScorerWithBonus(bonus BonusFunc) *Scorer {
	return &Scorer{bonus: bonus}
}

// Score computes the 0-100 match score for a feature set against the job's
// required skills, with human-readable reasons in a fixed order: cover-letter
// skill mentions in job declaration order, then experience mentions, then
// portfolio, then detailed cover letter.
func (s *Scorer) Score(features types.FeatureSet, job *types.Job) (int, []string) {
	score := 0
	reasons := make([]string, 0, len(job.Skills)+2)

	for _, skill := range job.Skills {
		if strings.Contains(features.CoverLetter, strings.ToLower(skill)) {
			score += coverLetterSkillPoints
			reasons = append(reasons, fmt.Sprintf("mentions %s in cover letter", skill))
		}
	}

	if features.Experience != "" {
		for _, skill := range job.Skills {
			if strings.Contains(features.Experience, strings.ToLower(skill)) {
				score += experienceSkillPoints
				reasons = append(reasons, fmt.Sprintf("has experience with %s", skill))
			}
		}
	}

	if features.HasPortfolio {
		score += portfolioPoints
		reasons = append(reasons, "has portfolio/profile link")
	}

	if features.DetailedCover {
		score += detailedCoverPoints
		reasons = append(reasons, "detailed cover letter")
	}

	score += s.bonus()

	if score > maxScore {
		score = maxScore
	}
	if score < 0 {
		score = 0
	}

	return score, reasons
}
