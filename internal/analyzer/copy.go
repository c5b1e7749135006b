package analyzer

import (
	"math"

	"github.com/outboundhq/campaign-validator/internal/core"
)

// AnalyzeEmailCopy runs the subject-line analyzer and the spam-word
// analyzer over both fields, merges subject and body findings per lexicon
// word, and blends the two scores into one deterministic quality score.
func AnalyzeEmailCopy(subject, body string) core.EmailCopyAnalysis {
	subjectAnalysis := AnalyzeSubjectLine(subject)

	merged := mergeSpamMatches(
		findSpamMatches(subject, core.LocationSubject),
		findSpamMatches(body, core.LocationBody),
	)

	// A word present in both fields is penalized at both weights at once.
	spamScore := 100
	for _, m := range merged {
		weight := 0
		for _, loc := range m.Locations {
			switch loc {
			case core.LocationSubject:
				weight += subjectWeight
			case core.LocationBody:
				weight += mergedBodyWeight
			}
		}
		spamScore -= m.Count * weight
	}
	spamScore = clampScore(spamScore)

	spamAnalysis := core.SpamAnalysis{
		Score:          spamScore,
		SpamWordsFound: merged,
		Warnings:       spamWarnings(merged, spamScore),
	}

	overall := int(math.Round(float64(subjectAnalysis.Score)*0.4 + float64(spamScore)*0.6))

	return core.EmailCopyAnalysis{
		OverallScore:    overall,
		SubjectAnalysis: subjectAnalysis,
		SpamAnalysis:    spamAnalysis,
	}
}

// mergeSpamMatches folds matches for the same lexicon word into a single
// entry whose locations are the union and whose count is the sum. Lexicon
// order is preserved because both inputs are produced in lexicon order.
func mergeSpamMatches(subjectMatches, bodyMatches []core.SpamWordMatch) []core.SpamWordMatch {
	byWord := make(map[string]int, len(subjectMatches))
	merged := make([]core.SpamWordMatch, 0, len(subjectMatches)+len(bodyMatches))

	for _, m := range subjectMatches {
		byWord[m.Word] = len(merged)
		merged = append(merged, m)
	}
	for _, m := range bodyMatches {
		if i, ok := byWord[m.Word]; ok {
			merged[i].Count += m.Count
			merged[i].Locations = append(merged[i].Locations, m.Locations...)
			continue
		}
		byWord[m.Word] = len(merged)
		merged = append(merged, m)
	}

	return merged
}
