package analyzer

import (
	"fmt"

	"github.com/outboundhq/campaign-validator/internal/core"
)

// Per-occurrence penalty weights. Subject hits are penalized harder than
// body hits. The merged subject+body analysis applies a slightly lower
// body weight.
const (
	subjectWeight    = 8
	bodyWeight       = 4
	mergedBodyWeight = 3
)

// AnalyzeSpamWords scores free text against the trigger-word lexicon for a
// single location. Scoring starts at 100 and deducts occurrences times the
// location weight per matched entry, clamped to [0,100].
func AnalyzeSpamWords(text string, location core.Location) core.SpamAnalysis {
	matches := findSpamMatches(text, location)

	score := 100
	for _, m := range matches {
		score -= m.Count * locationWeight(location)
	}

	return core.SpamAnalysis{
		Score:          clampScore(score),
		SpamWordsFound: matches,
		Warnings:       spamWarnings(matches, clampScore(score)),
	}
}

func locationWeight(location core.Location) int {
	if location == core.LocationSubject {
		return subjectWeight
	}
	return bodyWeight
}

// findSpamMatches returns one entry per distinct lexicon word found in text
func findSpamMatches(text string, location core.Location) []core.SpamWordMatch {
	var matches []core.SpamWordMatch
	for _, p := range spamPatterns {
		count := p.countOccurrences(text)
		if count == 0 {
			continue
		}
		matches = append(matches, core.SpamWordMatch{
			Word:      p.word,
			Count:     count,
			Locations: []core.Location{location},
		})
	}
	return matches
}

// spamWarnings derives human-readable warnings from a match set and the
// final clamped score.
func spamWarnings(matches []core.SpamWordMatch, score int) []string {
	var warnings []string

	subjectHits := 0
	bodyMatches := 0
	for _, m := range matches {
		for _, loc := range m.Locations {
			switch loc {
			case core.LocationSubject:
				subjectHits += m.Count
			case core.LocationBody:
				bodyMatches++
			}
		}
	}

	if subjectHits > 0 {
		warnings = append(warnings, fmt.Sprintf("%d spam trigger word occurrence(s) in the subject line", subjectHits))
	}
	if bodyMatches >= 3 {
		warnings = append(warnings, fmt.Sprintf("high density of spam trigger words in the body (%d distinct)", bodyMatches))
	}

	if score < 50 {
		warnings = append(warnings, "this email may be flagged by spam filters")
	} else if score < 70 {
		warnings = append(warnings, "consider reducing spam trigger words")
	}

	return warnings
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
