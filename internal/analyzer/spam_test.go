package analyzer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outboundhq/campaign-validator/internal/core"
)

func TestAnalyzeSpamWordsCleanText(t *testing.T) {
	result := AnalyzeSpamWords("Following up on our conversation from last week", core.LocationBody)

	assert.Equal(t, 100, result.Score)
	assert.Empty(t, result.SpamWordsFound)
	assert.Empty(t, result.Warnings)
}

func TestAnalyzeSpamWordsSubjectWeight(t *testing.T) {
	// "free" once in the subject deducts 8
	result := AnalyzeSpamWords("Get your free demo", core.LocationSubject)

	require.Len(t, result.SpamWordsFound, 1)
	assert.Equal(t, "free", result.SpamWordsFound[0].Word)
	assert.Equal(t, 1, result.SpamWordsFound[0].Count)
	assert.Equal(t, []core.Location{core.LocationSubject}, result.SpamWordsFound[0].Locations)
	assert.Equal(t, 92, result.Score)
}

func TestAnalyzeSpamWordsBodyWeight(t *testing.T) {
	// "free" once in the body deducts 4
	result := AnalyzeSpamWords("Get your free demo", core.LocationBody)

	require.Len(t, result.SpamWordsFound, 1)
	assert.Equal(t, 96, result.Score)
}

func TestAnalyzeSpamWordsCountsRepeats(t *testing.T) {
	result := AnalyzeSpamWords("free free free", core.LocationBody)

	require.Len(t, result.SpamWordsFound, 1)
	assert.Equal(t, 3, result.SpamWordsFound[0].Count)
	assert.Equal(t, 88, result.Score)
}

func TestAnalyzeSpamWordsPhraseMatching(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		word    string
		matched bool
	}{
		{"contiguous phrase", "you should act now please", "act now", true},
		{"phrase with extra whitespace", "act  now", "act now", true},
		{"phrase broken by words", "act right now", "act now", false},
		{"case insensitive", "LIMITED TIME offer", "limited time", true},
		{"whole word only", "freedom of choice", "free", false},
		{"numeric entry", "100% satisfaction", "100%", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AnalyzeSpamWords(tt.text, core.LocationBody)
			found := false
			for _, m := range result.SpamWordsFound {
				if m.Word == tt.word {
					found = true
				}
			}
			assert.Equal(t, tt.matched, found)
		})
	}
}

func TestAnalyzeSpamWordsMonotonicNonIncrease(t *testing.T) {
	// Appending more distinct trigger words never increases the score
	texts := []string{
		"hello there",
		"hello there free",
		"hello there free bonus",
		"hello there free bonus act now",
		"hello there free bonus act now limited time guarantee",
	}

	prev := 101
	for _, text := range texts {
		score := AnalyzeSpamWords(text, core.LocationBody).Score
		assert.LessOrEqual(t, score, prev, "score increased for %q", text)
		prev = score
	}
}

func TestAnalyzeSpamWordsScoreFloorsAtZero(t *testing.T) {
	text := ""
	for i := 0; i < 40; i++ {
		text += "free bonus cash winner jackpot "
	}

	result := AnalyzeSpamWords(text, core.LocationSubject)
	assert.Equal(t, 0, result.Score)
}

func TestAnalyzeSpamWordsScoreBounds(t *testing.T) {
	samples := []string{
		"",
		"perfectly normal text",
		"free free free free free free free free free free free free free",
		"act now limited time 100% guarantee no obligation winner cash prize",
	}

	for i, text := range samples {
		for _, loc := range []core.Location{core.LocationSubject, core.LocationBody} {
			score := AnalyzeSpamWords(text, loc).Score
			assert.GreaterOrEqual(t, score, 0, fmt.Sprintf("sample %d", i))
			assert.LessOrEqual(t, score, 100, fmt.Sprintf("sample %d", i))
		}
	}
}

func TestAnalyzeSpamWordsWarnings(t *testing.T) {
	t.Run("subject matches warn", func(t *testing.T) {
		result := AnalyzeSpamWords("free offer", core.LocationSubject)
		require.NotEmpty(t, result.Warnings)
		assert.Contains(t, result.Warnings[0], "subject")
	})

	t.Run("body density warns", func(t *testing.T) {
		result := AnalyzeSpamWords("free cash bonus prize deal", core.LocationBody)
		found := false
		for _, w := range result.Warnings {
			if strings.Contains(w, "density") {
				found = true
			}
		}
		assert.True(t, found, "expected a density warning, got %v", result.Warnings)
	})

	t.Run("low score warns about filters", func(t *testing.T) {
		text := ""
		for i := 0; i < 20; i++ {
			text += "free bonus cash "
		}
		result := AnalyzeSpamWords(text, core.LocationBody)
		require.Less(t, result.Score, 50)
		assert.Contains(t, result.Warnings, "this email may be flagged by spam filters")
	})
}
