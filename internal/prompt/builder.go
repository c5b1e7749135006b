// Package prompt assembles the structured-output request sent to the
// generative model: best-practices guides, client context, the formatted
// email sequence, and a capped lead-list sample.
package prompt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/outboundhq/campaign-validator/internal/core"
	"github.com/outboundhq/campaign-validator/internal/utils"
)

// Builder constructs validation prompts
type Builder struct {
	textProcessor *utils.TextProcessor
	maxBodySize   int
}

// NewBuilder creates a prompt builder. maxBodySize caps each email body's
// byte length in the prompt; zero or negative disables truncation.
func NewBuilder(textProcessor *utils.TextProcessor, maxBodySize int) *Builder {
	return &Builder{
		textProcessor: textProcessor,
		maxBodySize:   maxBodySize,
	}
}

// Build assembles the full validation prompt. clientCtx may be nil, in
// which case the context section states that no client-specific data is
// available.
func (b *Builder) Build(req *core.ValidationRequest, guides []core.BestPracticeGuide, clientCtx *core.ClientContext) string {
	var sb strings.Builder

	sb.WriteString("You are an expert outbound email strategist reviewing a campaign before launch.\n")
	sb.WriteString("Evaluate: (1) copy quality and deliverability of every email, (2) alignment between the lead list and the ideal customer profile, (3) lead-list quality, (4) overall strategy coherence.\n\n")

	sb.WriteString("## Best practices to check against\n")
	for _, g := range guides {
		fmt.Fprintf(&sb, "### %s (%s)\n%s\n\n", g.Title, g.Category, g.Content)
	}

	sb.WriteString("## Client context\n")
	if clientCtx != nil {
		fmt.Fprintf(&sb, "Client: %s\nIndustry: %s\nICP notes: %s\nTone of voice: %s\n", clientCtx.Name, clientCtx.Industry, clientCtx.ICPNotes, clientCtx.ToneOfVoice)
		if clientCtx.Notes != "" {
			fmt.Fprintf(&sb, "Additional notes: %s\n", clientCtx.Notes)
		}
	} else {
		sb.WriteString("No client-specific context data is available for this campaign.\n")
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "## Ideal customer profile\n%s\n\n", req.ICPDescription)

	if req.StrategistNotes != "" {
		fmt.Fprintf(&sb, "## Strategist notes\n%s\n\n", req.StrategistNotes)
	}

	sb.WriteString("## Email sequence\n")
	b.writeSequence(&sb, req.EmailSequence)

	sample := core.SampleLeads(req.LeadList)
	fmt.Fprintf(&sb, "## Lead list sample (%d of %d leads)\n", len(sample), len(req.LeadList))
	b.writeLeads(&sb, sample)

	sb.WriteString("\n")
	sb.WriteString(responseContract)

	return sb.String()
}

func (b *Builder) writeSequence(sb *strings.Builder, sequence []core.EmailSequenceStep) {
	for i, step := range sequence {
		fmt.Fprintf(sb, "### Email %d (step %d)\n", i+1, step.Step)
		fmt.Fprintf(sb, "Subject: %s\n", b.textProcessor.SanitizeUTF8(step.Subject))
		fmt.Fprintf(sb, "Body:\n%s\n\n", b.textProcessor.ProcessText(step.Body, b.maxBodySize))
	}
}

func (b *Builder) writeLeads(sb *strings.Builder, leads []core.Lead) {
	for _, lead := range leads {
		parts := []string{lead.Email}
		if name := strings.TrimSpace(lead.FirstName + " " + lead.LastName); name != "" {
			parts = append(parts, name)
		}
		if lead.Title != "" {
			parts = append(parts, lead.Title)
		}
		if lead.Company != "" {
			parts = append(parts, lead.Company)
		}
		if lead.Industry != "" {
			parts = append(parts, lead.Industry)
		}
		if lead.CompanySize != "" {
			parts = append(parts, "size: "+lead.CompanySize)
		}
		// Sorted so the prompt text is stable across runs
		keys := make([]string, 0, len(lead.Attributes))
		for k := range lead.Attributes {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			parts = append(parts, k+": "+lead.Attributes[k])
		}
		fmt.Fprintf(sb, "- %s\n", b.textProcessor.CompactLine(strings.Join(parts, " | ")))
	}
}

// responseContract pins the machine-parseable output format. The scoring
// brackets and the exact-substring rule are stated explicitly so downstream
// classification and find/replace behave predictably.
const responseContract = `## Response format
Return ONE JSON object only. No markdown fences, no prose before or after.

{
  "score": number 0-100 (overall launch readiness),
  "summary": string (two or three sentences),
  "issues": [{"type": "copy"|"leads"|"icp"|"strategy", "severity": "error"|"warning"|"suggestion", "message": string, "details": string}],
  "suggestions": [string],
  "actionableFixes": [{"type": "subject"|"body"|"personalization"|"tone"|"length"|"spam", "severity": "error"|"warning"|"suggestion", "message": string, "original": string, "suggested": string, "location": {"emailIndex": number (0-based), "field": "subject"|"body"}}],
  "leadAnalysis": [{"email": string, "firstName": string, "lastName": string, "company": string, "title": string, "industry": string, "matchScore": number 0-100, "reasons": [{"factor": string, "positive": boolean}]}]
}

Rules:
- "original" in every actionable fix MUST be an exact substring of the referenced email field, copied verbatim, so it can be found and replaced.
- Score each lead's ICP match on this scale: 80-100 strong match, 60-79 partial match, 40-59 weak match, 0-39 mismatch.
- Use severity "error" for launch blockers, "warning" for risks, "suggestion" for polish.
- Analyze every lead in the sample above and include one leadAnalysis entry per lead.`
