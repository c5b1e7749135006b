package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeSubjectLineEmpty(t *testing.T) {
	result := AnalyzeSubjectLine("")

	assert.Equal(t, 0, result.Length)
	assert.Equal(t, 50, result.Score)
	require.NotEmpty(t, result.Issues)
	assert.Contains(t, result.Issues[0], "empty")
}

func TestAnalyzeSubjectLineLengthRules(t *testing.T) {
	tests := []struct {
		name      string
		subject   string
		wantScore int
	}{
		{"short subject", "Quick sync?", 90},
		{"good length no personalization", "Thoughts on scaling your outbound motion", 100},
		{"long subject", strings.Repeat("growth ", 10) + "strategies", 85},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AnalyzeSubjectLine(tt.subject)
			assert.Equal(t, tt.wantScore, result.Score)
		})
	}
}

func TestAnalyzeSubjectLinePersonalization(t *testing.T) {
	tests := []struct {
		subject string
		want    bool
	}{
		{"Hi {{first_name}}, quick question for you", true},
		{"Hi {first_name}, quick question for you", true},
		{"Hi [first_name], quick question for you", true},
		{"Hi %first_name%, quick question for you", true},
		{"Question about {{company}}'s hiring plans", true},
		{"Hi there, quick question for you today", false},
	}

	for _, tt := range tests {
		t.Run(tt.subject, func(t *testing.T) {
			result := AnalyzeSubjectLine(tt.subject)
			assert.Equal(t, tt.want, result.HasPersonalization)
			if !tt.want {
				assert.NotEmpty(t, result.Suggestions)
			}
		})
	}
}

func TestAnalyzeSubjectLinePersonalizedCleanSubjectScoresHigh(t *testing.T) {
	result := AnalyzeSubjectLine("Quick question about {{company}}'s outbound process")

	assert.True(t, result.HasPersonalization)
	assert.GreaterOrEqual(t, result.Score, 90)
}

func TestAnalyzeSubjectLinePowerWords(t *testing.T) {
	result := AnalyzeSubjectLine("Discover the proven path to better replies")

	assert.True(t, result.HasPowerWords)
	assert.ElementsMatch(t, []string{"discover", "proven"}, result.PowerWordsFound)

	none := AnalyzeSubjectLine("Following up on our conversation yesterday")
	assert.False(t, none.HasPowerWords)
	assert.NotEmpty(t, none.Suggestions)
}

func TestAnalyzeSubjectLineEmoji(t *testing.T) {
	withEmoji := AnalyzeSubjectLine("Your Q3 pipeline update is ready 🚀")
	assert.True(t, withEmoji.HasEmoji)

	without := AnalyzeSubjectLine("Your Q3 pipeline update is ready")
	assert.False(t, without.HasEmoji)

	// Emoji presence never changes the score
	assert.Equal(t, without.Score, withEmoji.Score)
}

func TestAnalyzeSubjectLineAllCaps(t *testing.T) {
	t.Run("single all-caps word", func(t *testing.T) {
		result := AnalyzeSubjectLine("An IMPORTANT note about your onboarding")
		assert.True(t, result.HasAllCaps)
		assert.Equal(t, []string{"IMPORTANT"}, result.AllCapsWords)
		assert.Equal(t, 95, result.Score)
	})

	t.Run("multiple all-caps words", func(t *testing.T) {
		result := AnalyzeSubjectLine("URGENT REMINDER about your account renewal")
		assert.True(t, result.HasAllCaps)
		assert.Len(t, result.AllCapsWords, 2)
	})

	t.Run("short tokens and placeholders ignored", func(t *testing.T) {
		result := AnalyzeSubjectLine("An update on your AI roadmap {{COMPANY}} asked for")
		assert.False(t, result.HasAllCaps)
	})
}

func TestAnalyzeSubjectLineFakeThreadPrefix(t *testing.T) {
	faked := AnalyzeSubjectLine("Re: our conversation about pricing plans")
	found := false
	for _, issue := range faked.Issues {
		if strings.Contains(issue, "reply/forward") {
			found = true
		}
	}
	assert.True(t, found)

	templated := AnalyzeSubjectLine("Re: {{thread_subject}} follow up from our side")
	for _, issue := range templated.Issues {
		assert.NotContains(t, issue, "reply/forward")
	}
}

func TestAnalyzeSubjectLinePunctuation(t *testing.T) {
	exclaim := AnalyzeSubjectLine("Huge news about your account today!!")
	assert.Equal(t, 90, exclaim.Score)

	questions := AnalyzeSubjectLine("Ready to talk? Or should we wait more?")
	assert.Equal(t, 95, questions.Score)
}

func TestAnalyzeSubjectLineSpammyExample(t *testing.T) {
	result := AnalyzeSubjectLine("FREE FREE act now!!! Limited Time")

	assert.Less(t, result.Score, 40)
	assert.GreaterOrEqual(t, len(result.Issues), 3)
	assert.True(t, result.HasAllCaps)
}

func TestAnalyzeSubjectLineScoreBounds(t *testing.T) {
	subjects := []string{
		"",
		"x",
		"FREE CASH BONUS WINNER act now limited time 100% guaranteed!!!???",
		"Quick question about {{company}}'s outbound process",
		strings.Repeat("free ", 50),
	}

	for _, subject := range subjects {
		result := AnalyzeSubjectLine(subject)
		assert.GreaterOrEqual(t, result.Score, 0, "subject %q", subject)
		assert.LessOrEqual(t, result.Score, 100, "subject %q", subject)
	}
}
