// Package analyzer implements the deterministic copy-quality analyzers:
// spam trigger-word scoring, subject-line heuristics, and the combined
// email copy score. All functions are pure and safe for concurrent use.
package analyzer

import (
	"regexp"
	"strings"
)

// spamTriggerWords is the fixed lexicon of phrases associated with spam
// filter flagging. Multi-word entries match as contiguous word sequences.
var spamTriggerWords = []string{
	// Money and finance
	"free", "cash", "cheap", "discount", "jackpot", "prize", "bonus",
	"make money", "earn money", "extra income", "double your income",
	"million dollars", "get paid", "financial freedom", "lowest price",
	"best price", "save big", "pre-approved", "no fees", "no hidden costs",
	"credit card", "wire transfer", "refund", "investment opportunity",

	// Urgency and pressure
	"act now", "act fast", "act immediately", "limited time", "urgent",
	"hurry", "now", "expires", "deadline", "last chance", "final notice",
	"today only", "while supplies last", "don't miss", "once in a lifetime",
	"instant access", "apply now", "buy now", "order now", "call now",

	// Overpromising
	"100%", "guarantee", "guaranteed", "satisfaction guaranteed",
	"money back", "no obligation", "no strings attached", "no catch",
	"no risk", "risk-free", "winner", "congratulations",
	"you have been selected", "amazing offer", "incredible deal",
	"exclusive deal", "special promotion", "miracle", "work from home",
	"be your own boss", "this is not spam", "click here", "click below",
}

// powerWords are subject-line words associated with higher open rates.
// Finding none is only a suggestion, never a penalty.
var powerWords = []string{
	"discover", "proven", "breakthrough", "exclusive", "secret",
	"revealed", "transform", "boost", "unlock", "master", "essential",
	"powerful", "ultimate", "effortless", "remarkable", "innovative",
	"results", "success", "strategy", "insider", "expert", "fresh",
	"bold", "smart", "simple", "effective", "skyrocket", "accelerate",
	"streamline", "supercharge",
}

var (
	spamPatterns  = compileLexicon(spamTriggerWords)
	powerPatterns = compileLexicon(powerWords)
)

type lexiconPattern struct {
	word string
	re   *regexp.Regexp
}

// compileLexicon builds case-insensitive whole-word matchers for each entry.
// Word boundaries are only anchored where the entry starts or ends with a
// word character, so entries like "100%" still match cleanly.
func compileLexicon(entries []string) []lexiconPattern {
	patterns := make([]lexiconPattern, 0, len(entries))
	for _, entry := range entries {
		quoted := regexp.QuoteMeta(strings.ToLower(entry))
		quoted = strings.ReplaceAll(quoted, ` `, `\s+`)

		expr := "(?i)"
		if isWordChar(entry[0]) {
			expr += `\b`
		}
		expr += quoted
		if isWordChar(entry[len(entry)-1]) {
			expr += `\b`
		}

		patterns = append(patterns, lexiconPattern{word: entry, re: regexp.MustCompile(expr)})
	}
	return patterns
}

func isWordChar(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// countOccurrences returns how many times a lexicon entry appears in text
func (p lexiconPattern) countOccurrences(text string) int {
	return len(p.re.FindAllStringIndex(text, -1))
}
