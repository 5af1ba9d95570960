package matching

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-portal/internal/types"
)

func TestExtractFeatures_LowercasesText(t *testing.T) {
	app := &types.Application{
		CoverLetter: "I love React and Built Apps",
		Experience:  "Worked with Node.JS",
	}

	features := ExtractFeatures(app)

	assert.Equal(t, "i love react and built apps", features.CoverLetter)
	assert.Equal(t, "worked with node.js", features.Experience)
}

func TestExtractFeatures_MissingFieldsTreatedAsEmpty(t *testing.T) {
	features := ExtractFeatures(&types.Application{})

	assert.Empty(t, features.CoverLetter)
	assert.Empty(t, features.Experience)
	assert.False(t, features.HasPortfolio)
	assert.False(t, features.DetailedCover)
	assert.Zero(t, features.CoverLetterLength)
}

func TestExtractFeatures_NilApplication(t *testing.T) {
	features := ExtractFeatures(nil)

	assert.Empty(t, features.CoverLetter)
	assert.False(t, features.HasPortfolio)
}

func TestExtractFeatures_Portfolio(t *testing.T) {
	features := ExtractFeatures(&types.Application{Portfolio: "https://example.com/me"})
	assert.True(t, features.HasPortfolio)

	features = ExtractFeatures(&types.Application{Portfolio: "   "})
	assert.False(t, features.HasPortfolio, "whitespace-only portfolio should not count")
}

func TestExtractFeatures_DetailedCoverThreshold(t *testing.T) {
	exactly200 := strings.Repeat("a", 200)
	features := ExtractFeatures(&types.Application{CoverLetter: exactly200})
	assert.False(t, features.DetailedCover, "threshold is exclusive at 200")
	assert.Equal(t, 200, features.CoverLetterLength)

	over := strings.Repeat("a", 201)
	features = ExtractFeatures(&types.Application{CoverLetter: over})
	assert.True(t, features.DetailedCover)
}
