package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/outboundhq/campaign-validator/internal/core"
)

func TestMatchLevelBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  core.MatchLevel
	}{
		{100, core.MatchStrong},
		{80, core.MatchStrong},
		{79, core.MatchPartial},
		{60, core.MatchPartial},
		{59, core.MatchWeak},
		{40, core.MatchWeak},
		{39, core.MatchMismatch},
		{0, core.MatchMismatch},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, MatchLevelForScore(c.score), "score %d", c.score)
	}
}

func TestStatusBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  core.LaunchStatus
	}{
		{100, core.StatusPass},
		{80, core.StatusPass},
		{79, core.StatusNeedsReview},
		{50, core.StatusNeedsReview},
		{49, core.StatusFail},
		{0, core.StatusFail},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, StatusForScore(c.score), "score %d", c.score)
	}
}

func TestClassifyLeadsOverridesModelLevels(t *testing.T) {
	leads := []core.LeadAnalysis{
		{Email: "a@x.co", MatchScore: 91, MatchLevel: core.MatchMismatch},
		{Email: "b@x.co", MatchScore: 70, MatchLevel: core.MatchStrong},
		{Email: "c@x.co", MatchScore: 45},
		{Email: "d@x.co", MatchScore: 10, MatchLevel: core.MatchStrong},
	}

	classified, summary := ClassifyLeads(leads)

	assert.Equal(t, core.MatchStrong, classified[0].MatchLevel)
	assert.Equal(t, core.MatchPartial, classified[1].MatchLevel)
	assert.Equal(t, core.MatchWeak, classified[2].MatchLevel)
	assert.Equal(t, core.MatchMismatch, classified[3].MatchLevel)

	assert.Equal(t, 1, summary.Strong)
	assert.Equal(t, 1, summary.Partial)
	assert.Equal(t, 1, summary.Weak)
	assert.Equal(t, 1, summary.Mismatch)
	assert.Equal(t, 4, summary.Total)
	assert.InDelta(t, 54.0, summary.AverageScore, 0.001)
}

func TestClassifyLeadsSummaryAddsUp(t *testing.T) {
	leads := []core.LeadAnalysis{
		{MatchScore: 88}, {MatchScore: 82}, {MatchScore: 61},
		{MatchScore: 40}, {MatchScore: 39}, {MatchScore: 12},
	}

	_, summary := ClassifyLeads(leads)

	assert.Equal(t, summary.Total, summary.Strong+summary.Partial+summary.Weak+summary.Mismatch)
	assert.Equal(t, len(leads), summary.Total)
}

func TestClassifyLeadsEmpty(t *testing.T) {
	classified, summary := ClassifyLeads(nil)

	assert.Empty(t, classified)
	assert.Equal(t, 0, summary.Total)
	assert.Equal(t, 0.0, summary.AverageScore)
}
