package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outboundhq/campaign-validator/internal/core"
)

func TestAnalyzeEmailCopyCleanEmail(t *testing.T) {
	result := AnalyzeEmailCopy(
		"Thoughts on scaling your outbound motion",
		"Hi there,\n\nI noticed your team is growing. Worth a chat next week?\n\nBest,\nSam",
	)

	assert.Equal(t, 100, result.OverallScore)
	assert.Equal(t, 100, result.SpamAnalysis.Score)
	assert.Empty(t, result.SpamAnalysis.SpamWordsFound)
}

func TestAnalyzeEmailCopyMergesMatchesAcrossFields(t *testing.T) {
	result := AnalyzeEmailCopy("Free trial", "Act now to get your free bonus")

	var freeMatch *core.SpamWordMatch
	for i := range result.SpamAnalysis.SpamWordsFound {
		if result.SpamAnalysis.SpamWordsFound[i].Word == "free" {
			freeMatch = &result.SpamAnalysis.SpamWordsFound[i]
		}
	}
	require.NotNil(t, freeMatch)

	// One occurrence per field, merged into a single match
	assert.Equal(t, 2, freeMatch.Count)
	assert.ElementsMatch(t, []core.Location{core.LocationSubject, core.LocationBody}, freeMatch.Locations)
}

func TestAnalyzeEmailCopyScoring(t *testing.T) {
	result := AnalyzeEmailCopy("Free trial", "Act now to get your free bonus")

	// Merged spam penalties: "free" in both fields costs (8+3) per
	// occurrence (2), "act now", "now", and "bonus" cost 3 each in the body.
	assert.Equal(t, 69, result.SpamAnalysis.Score)

	// Subject: short (-10) plus embedded "free" (-8)
	assert.Equal(t, 82, result.SubjectAnalysis.Score)

	// round(82*0.4 + 69*0.6)
	assert.Equal(t, 74, result.OverallScore)
}

func TestAnalyzeEmailCopyDoubleFieldPenalty(t *testing.T) {
	// The same word in both fields is penalized at both weights, so the
	// merged score is lower than either single-field score implies.
	bothFields := AnalyzeEmailCopy("free consultation", "free consultation inside")
	bodyOnly := AnalyzeEmailCopy("A consultation offer", "free consultation inside")

	assert.Less(t, bothFields.SpamAnalysis.Score, bodyOnly.SpamAnalysis.Score)
}

func TestAnalyzeEmailCopyWarningsFromMergedSet(t *testing.T) {
	result := AnalyzeEmailCopy(
		"Limited time offer inside",
		"This free bonus comes with cash rewards and a prize draw",
	)

	assert.NotEmpty(t, result.SpamAnalysis.Warnings)
}

func TestAnalyzeEmailCopyScoreBounds(t *testing.T) {
	cases := []struct{ subject, body string }{
		{"", ""},
		{"FREE FREE FREE!!!", "free cash bonus winner jackpot act now limited time"},
		{"Quick question about {{company}}'s outbound process", "Saw your launch last week. Congrats on the momentum."},
	}

	for _, c := range cases {
		result := AnalyzeEmailCopy(c.subject, c.body)
		assert.GreaterOrEqual(t, result.OverallScore, 0)
		assert.LessOrEqual(t, result.OverallScore, 100)
		assert.GreaterOrEqual(t, result.SpamAnalysis.Score, 0)
		assert.LessOrEqual(t, result.SpamAnalysis.Score, 100)
	}
}
