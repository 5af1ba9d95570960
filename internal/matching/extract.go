// Package matching scores and ranks applicants against a job's required skills.
package matching

import (
	"strings"

	"github.com/jonathan/job-portal/internal/types"
)

// detailedCoverLetterThreshold is the cover-letter length above which the
// "detailed cover letter" bonus applies.
const detailedCoverLetterThreshold = 200

// ExtractFeatures normalizes an application into the feature set used for
// scoring. It is pure and deterministic: absent cover letter or experience
// fields are treated as empty strings, and all text is lower-cased for
// case-insensitive matching downstream.
func ExtractFeatures(app *types.Application) types.FeatureSet {
	coverLetter := ""
	experience := ""
	portfolio := ""
	if app != nil {
		coverLetter = app.CoverLetter
		experience = app.Experience
		portfolio = strings.TrimSpace(app.Portfolio)
	}

	return types.FeatureSet{
		CoverLetter:       strings.ToLower(coverLetter),
		Experience:        strings.ToLower(experience),
		HasPortfolio:      portfolio != "",
		DetailedCover:     len(coverLetter) > detailedCoverLetterThreshold,
		CoverLetterLength: len(coverLetter),
	}
}
