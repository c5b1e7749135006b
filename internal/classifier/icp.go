// Package classifier derives deterministic qualitative brackets from the
// numeric scores the model reports, so bracket and status boundaries stay
// stable regardless of the model's own labeling consistency.
package classifier

import (
	"github.com/outboundhq/campaign-validator/internal/core"
)

// MatchLevelForScore maps a lead's numeric ICP match score to its bracket.
// Boundaries: 80 and above strong, 60-79 partial, 40-59 weak, below 40
// mismatch.
func MatchLevelForScore(score int) core.MatchLevel {
	switch {
	case score >= 80:
		return core.MatchStrong
	case score >= 60:
		return core.MatchPartial
	case score >= 40:
		return core.MatchWeak
	default:
		return core.MatchMismatch
	}
}

// ClassifyLeads overrides any model-supplied match level with the
// deterministic bracket for each lead's score and aggregates the summary.
// The input slice is modified in place and returned.
func ClassifyLeads(leads []core.LeadAnalysis) ([]core.LeadAnalysis, core.ICPMatchSummary) {
	summary := core.ICPMatchSummary{Total: len(leads)}

	scoreSum := 0
	for i := range leads {
		level := MatchLevelForScore(leads[i].MatchScore)
		leads[i].MatchLevel = level
		scoreSum += leads[i].MatchScore

		switch level {
		case core.MatchStrong:
			summary.Strong++
		case core.MatchPartial:
			summary.Partial++
		case core.MatchWeak:
			summary.Weak++
		case core.MatchMismatch:
			summary.Mismatch++
		}
	}

	if len(leads) > 0 {
		summary.AverageScore = float64(scoreSum) / float64(len(leads))
	}

	return leads, summary
}

// StatusForScore maps the overall campaign score to a launch-readiness
// status. Boundaries: 80 and above pass, 50-79 needs review, below 50 fail.
func StatusForScore(score int) core.LaunchStatus {
	switch {
	case score >= 80:
		return core.StatusPass
	case score >= 50:
		return core.StatusNeedsReview
	default:
		return core.StatusFail
	}
}
