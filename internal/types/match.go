package types

import "github.com/google/uuid"

// Recommendation is the discrete tier assigned to a match score.
type Recommendation string

// Recommendation tiers.
const (
	StrongMatch Recommendation = "Strong Match"
	GoodMatch   Recommendation = "Good Match"
	WeakMatch   Recommendation = "Weak Match"
)

// FeatureSet holds the signals extracted from a single application for
// scoring. It is derived and ephemeral: recomputed on every ranking pass,
// never persisted.
type FeatureSet struct {
	CoverLetter       string // lower-cased cover letter text
	Experience        string // lower-cased experience text, empty when absent
	HasPortfolio      bool
	DetailedCover     bool // cover letter longer than the detail threshold
	CoverLetterLength int
}

// MatchResult is the scored, classified view of one application relative to
// a job. Produced fresh per ranking call and never mutated afterwards.
type MatchResult struct {
	ApplicationID  uuid.UUID      `json:"application_id"`
	CandidateName  string         `json:"candidate_name"`
	CandidateEmail string         `json:"candidate_email"`
	Score          int            `json:"score"`
	Reasons        []string       `json:"reasons"`
	Recommendation Recommendation `json:"recommendation"`
}

// RankingCounts aggregates a ranking result set.
type RankingCounts struct {
	Total         int `json:"total"`
	StrongMatches int `json:"strong_matches"`
	GoodMatches   int `json:"good_matches"`
}

// RankingResult is the outcome of ranking a job's applicants, sorted by
// descending score with input order preserved between equal scores.
type RankingResult struct {
	JobID   uuid.UUID     `json:"job_id"`
	Results []MatchResult `json:"results"`
	Counts  RankingCounts `json:"counts"`
}
