// Package parser turns the generative model's free-form text output into
// the engine's validation result shape. Total parse failure is a typed
// error carrying a raw excerpt; coercion of malformed optional fields is a
// local recovery, not an error.
package parser

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/outboundhq/campaign-validator/internal/core"
)

// ParseValidationResponse extracts the first top-level JSON object from the
// model's raw output and coerces it into a ValidationResponse. Fields that
// should be arrays but are not (or are absent) become empty arrays; string
// fields that are not strings become empty strings. The score is passed
// through as given. Each actionable fix receives a synthetic unique id for
// client-side addressing.
func ParseValidationResponse(raw string) (*core.ValidationResponse, error) {
	jsonText, ok := extractJSONObject(raw)
	if !ok {
		return nil, core.NewModelResponseParsingError(raw, errors.New("no JSON object found in model output"))
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(jsonText), &payload); err != nil {
		return nil, core.NewModelResponseParsingError(raw, err)
	}

	resp := &core.ValidationResponse{
		Score:           asInt(payload["score"]),
		Summary:         asString(payload["summary"]),
		Issues:          parseIssues(payload["issues"]),
		Suggestions:     asStringSlice(payload["suggestions"]),
		ActionableFixes: parseFixes(payload["actionableFixes"]),
		LeadAnalysis:    parseLeadAnalysis(payload["leadAnalysis"]),
	}

	return resp, nil
}

// extractJSONObject scans for the first balanced top-level {...} span,
// tolerant of surrounding prose and markdown fences. Braces inside JSON
// strings are skipped.
func extractJSONObject(text string) (string, bool) {
	depth := 0
	start := -1
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	return "", false
}

func parseIssues(v any) []core.ValidationIssue {
	issues := []core.ValidationIssue{}
	for _, item := range asSlice(v) {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		issues = append(issues, core.ValidationIssue{
			Type:     core.IssueType(asString(m["type"])),
			Severity: core.Severity(asString(m["severity"])),
			Message:  asString(m["message"]),
			Details:  asString(m["details"]),
		})
	}
	return issues
}

func parseFixes(v any) []core.ActionableFix {
	fixes := []core.ActionableFix{}
	for _, item := range asSlice(v) {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}

		fix := core.ActionableFix{
			ID:        uuid.NewString(),
			Type:      core.FixType(asString(m["type"])),
			Severity:  core.Severity(asString(m["severity"])),
			Message:   asString(m["message"]),
			Original:  asString(m["original"]),
			Suggested: asString(m["suggested"]),
		}
		if loc, ok := m["location"].(map[string]any); ok {
			fix.Location = core.FixLocation{
				EmailIndex: asInt(loc["emailIndex"]),
				Field:      asString(loc["field"]),
			}
		}
		fixes = append(fixes, fix)
	}
	return fixes
}

func parseLeadAnalysis(v any) []core.LeadAnalysis {
	leads := []core.LeadAnalysis{}
	for _, item := range asSlice(v) {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}

		lead := core.LeadAnalysis{
			Email:      asString(m["email"]),
			FirstName:  asString(m["firstName"]),
			LastName:   asString(m["lastName"]),
			Company:    asString(m["company"]),
			Title:      asString(m["title"]),
			Industry:   asString(m["industry"]),
			MatchScore: asInt(m["matchScore"]),
			Reasons:    []core.MatchReason{},
		}
		for _, r := range asSlice(m["reasons"]) {
			rm, ok := r.(map[string]any)
			if !ok {
				continue
			}
			lead.Reasons = append(lead.Reasons, core.MatchReason{
				Factor:   asString(rm["factor"]),
				Positive: asBool(rm["positive"]),
			})
		}
		leads = append(leads, lead)
	}
	return leads
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	}
	return 0
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

func asStringSlice(v any) []string {
	out := []string{}
	for _, item := range asSlice(v) {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
