package matching

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-portal/internal/types"
)

// rankConcurrency bounds the number of applications scored in parallel.
const rankConcurrency = 8

// Ranker orchestrates the scorer and classifier over a batch of applicants
// for one job. Ranking is read-only and side-effect-free, so concurrent
// calls need no coordination.
type Ranker struct {
	scorer *Scorer
}

// NewRanker creates a ranker around the given scorer.
func NewRanker(scorer *Scorer) *Ranker {
	return &Ranker{scorer: scorer}
}

// Rank scores and classifies every applicant, returning results sorted by
// descending score. Equal scores keep their input order, so a stable sort is
// required. An empty applicant slice yields an empty result set and zero
// counts, not an error.
func (r *Ranker) Rank(ctx context.Context, job *types.Job, applicants []types.Application) (*types.RankingResult, error) {
	results := make([]types.MatchResult, len(applicants))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(rankConcurrency)
	for i := range applicants {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			app := &applicants[i]
			features := ExtractFeatures(app)
			score, reasons := r.scorer.Score(features, job)
			results[i] = types.MatchResult{
				ApplicationID:  app.ID,
				CandidateName:  app.CandidateName,
				CandidateEmail: app.CandidateEmail,
				Score:          score,
				Reasons:        reasons,
				Recommendation: Classify(score),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to rank applicants: %w", err)
	}

	// Results were written by input index, so the stable sort preserves
	// application order between equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	counts := types.RankingCounts{Total: len(results)}
	for _, res := range results {
		switch res.Recommendation {
		case types.StrongMatch:
			counts.StrongMatches++
		case types.GoodMatch:
			counts.GoodMatches++
		}
	}

	return &types.RankingResult{
		JobID:   job.ID,
		Results: results,
		Counts:  counts,
	}, nil
}
