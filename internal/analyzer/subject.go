package analyzer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/outboundhq/campaign-validator/internal/core"
)

// mergeFieldPattern matches personalization tokens in any of the merge
// syntaxes the sequencing platforms emit: {{first_name}}, {first_name},
// [first_name], %first_name%.
var mergeFieldPattern = regexp.MustCompile(`(?i)(\{\{\s*\w+\s*\}\}|\{\s*\w+\s*\}|\[\s*\w+\s*\]|%\s*\w+\s*%)`)

// fakeThreadPattern matches subjects pretending to be replies or forwards
var fakeThreadPattern = regexp.MustCompile(`(?i)^(re|fwd):`)

// AnalyzeSubjectLine runs the deterministic subject-line rule chain. Every
// rule adjusts the score (starting at 100) and may append issues or
// suggestions; the final score is clamped to [0,100].
func AnalyzeSubjectLine(subject string) core.SubjectLineAnalysis {
	analysis := core.SubjectLineAnalysis{
		Score:  100,
		Length: utf8.RuneCountInString(subject),
	}

	checkLength(&analysis)
	checkPersonalization(subject, &analysis)
	checkPowerWords(subject, &analysis)
	analysis.HasEmoji = containsEmoji(subject)
	checkAllCaps(subject, &analysis)
	checkFakeThread(subject, &analysis)
	checkPunctuation(subject, &analysis)
	checkEmbeddedSpamWords(subject, &analysis)

	analysis.Score = clampScore(analysis.Score)
	return analysis
}

func checkLength(a *core.SubjectLineAnalysis) {
	switch {
	case a.Length == 0:
		a.Issues = append(a.Issues, "subject line is empty")
		a.Score -= 50
	case a.Length < 20:
		a.Issues = append(a.Issues, fmt.Sprintf("subject line is short (%d characters)", a.Length))
		a.Suggestions = append(a.Suggestions, "aim for 20-60 characters to give recipients enough context")
		a.Score -= 10
	case a.Length > 60:
		a.Issues = append(a.Issues, fmt.Sprintf("subject line is long (%d characters) and may be truncated", a.Length))
		a.Suggestions = append(a.Suggestions, "shorten the subject to 60 characters or fewer")
		a.Score -= 15
	}
}

func checkPersonalization(subject string, a *core.SubjectLineAnalysis) {
	if mergeFieldPattern.MatchString(subject) {
		a.HasPersonalization = true
		a.Score += 5
		return
	}
	a.Suggestions = append(a.Suggestions, "add a personalization token such as {{first_name}} or {{company}}")
}

func checkPowerWords(subject string, a *core.SubjectLineAnalysis) {
	for _, p := range powerPatterns {
		if p.countOccurrences(subject) > 0 {
			a.PowerWordsFound = append(a.PowerWordsFound, p.word)
		}
	}
	a.HasPowerWords = len(a.PowerWordsFound) > 0
	if !a.HasPowerWords {
		a.Suggestions = append(a.Suggestions, "consider a power word (e.g. proven, discover) to lift open rates")
	}
}

// containsEmoji reports whether the string contains a character in the
// common emoji ranges. Presence is recorded but never scored.
func containsEmoji(s string) bool {
	for _, r := range s {
		if (r >= 0x1F300 && r <= 0x1FAFF) ||
			(r >= 0x2600 && r <= 0x27BF) ||
			(r >= 0x1F000 && r <= 0x1F0FF) ||
			r == 0x2764 || r == 0xFE0F {
			return true
		}
	}
	return false
}

func checkAllCaps(subject string, a *core.SubjectLineAnalysis) {
	for _, token := range strings.Fields(subject) {
		if isPlaceholderToken(token) || utf8.RuneCountInString(token) <= 2 {
			continue
		}
		if token == strings.ToUpper(token) && containsLetter(token) {
			a.AllCapsWords = append(a.AllCapsWords, token)
		}
	}

	switch {
	case len(a.AllCapsWords) == 1:
		a.Issues = append(a.Issues, fmt.Sprintf("all-caps word: %s", a.AllCapsWords[0]))
		a.Score -= 5
	case len(a.AllCapsWords) >= 2:
		a.Issues = append(a.Issues, fmt.Sprintf("multiple all-caps words: %s", strings.Join(a.AllCapsWords, ", ")))
		a.Score -= 15
	}
	if len(a.AllCapsWords) > 0 {
		a.HasAllCaps = true
		a.Suggestions = append(a.Suggestions, "avoid all-caps words; they read as shouting and trip spam filters")
	}
}

func isPlaceholderToken(token string) bool {
	return strings.HasPrefix(token, "{") ||
		strings.HasPrefix(token, "[") ||
		strings.HasPrefix(token, "%")
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func checkFakeThread(subject string, a *core.SubjectLineAnalysis) {
	loc := fakeThreadPattern.FindStringIndex(subject)
	if loc == nil {
		return
	}
	// A merge field right after the prefix means the thread reference is
	// templated, not faked.
	rest := strings.TrimLeft(subject[loc[1]:], " ")
	if strings.HasPrefix(rest, "{") {
		return
	}
	a.Issues = append(a.Issues, "fake reply/forward prefix erodes trust once recipients notice")
	a.Score -= 10
}

func checkPunctuation(subject string, a *core.SubjectLineAnalysis) {
	if strings.Count(subject, "!") > 1 {
		a.Issues = append(a.Issues, "multiple exclamation marks")
		a.Suggestions = append(a.Suggestions, "use at most one exclamation mark")
		a.Score -= 10
	}
	if strings.Count(subject, "?") > 1 {
		a.Issues = append(a.Issues, "multiple question marks")
		a.Score -= 5
	}
}

func checkEmbeddedSpamWords(subject string, a *core.SubjectLineAnalysis) {
	spam := AnalyzeSpamWords(subject, core.LocationSubject)
	if len(spam.SpamWordsFound) == 0 {
		return
	}

	words := make([]string, 0, len(spam.SpamWordsFound))
	for _, m := range spam.SpamWordsFound {
		words = append(words, m.Word)
		a.Score -= subjectWeight * m.Count
	}
	a.Issues = append(a.Issues, fmt.Sprintf("spam trigger words in subject: %s", strings.Join(words, ", ")))
}
