package prompt

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/outboundhq/campaign-validator/internal/core"
	"github.com/outboundhq/campaign-validator/internal/utils"
)

func newTestBuilder(maxBodySize int) *Builder {
	return NewBuilder(utils.NewTextProcessor(zap.NewNop()), maxBodySize)
}

func buildRequest(leadCount int) *core.ValidationRequest {
	leads := make([]core.Lead, 0, leadCount)
	for i := 0; i < leadCount; i++ {
		leads = append(leads, core.Lead{
			Email:   fmt.Sprintf("lead%d@example.com", i),
			Title:   "CTO",
			Company: fmt.Sprintf("Startup %d", i),
		})
	}
	return &core.ValidationRequest{
		CampaignID: "cmp-1",
		Platform:   "instantly",
		EmailSequence: []core.EmailSequenceStep{
			{Step: 1, Subject: "Quick thought on your hiring", Body: "Hi {{first_name}}, congrats on the funding round."},
			{Step: 2, Subject: "One more idea", Body: "Circling back with a case study."},
		},
		LeadList:        leads,
		ICPDescription:  "Seed-stage devtools startups",
		StrategistNotes: "Client wants a casual tone.",
	}
}

func TestBuildIncludesAllSections(t *testing.T) {
	builder := newTestBuilder(0)
	guides := []core.BestPracticeGuide{
		{ID: "g1", Title: "Subject Lines", Category: "copy", Content: "Keep subjects under 60 characters."},
	}
	clientCtx := &core.ClientContext{Name: "Acme", Industry: "Fintech", ICPNotes: "Mid-market", ToneOfVoice: "direct"}

	text := builder.Build(buildRequest(3), guides, clientCtx)

	assert.Contains(t, text, "## Best practices to check against")
	assert.Contains(t, text, "Subject Lines")
	assert.Contains(t, text, "Keep subjects under 60 characters.")
	assert.Contains(t, text, "Client: Acme")
	assert.Contains(t, text, "Seed-stage devtools startups")
	assert.Contains(t, text, "Client wants a casual tone.")
	assert.Contains(t, text, "### Email 1 (step 1)")
	assert.Contains(t, text, "### Email 2 (step 2)")
	assert.Contains(t, text, "Subject: Quick thought on your hiring")
	assert.Contains(t, text, "congrats on the funding round")
}

func TestBuildWithoutClientContext(t *testing.T) {
	builder := newTestBuilder(0)

	text := builder.Build(buildRequest(1), nil, nil)

	assert.Contains(t, text, "No client-specific context data is available")
	assert.NotContains(t, text, "Client: ")
}

func TestBuildOmitsEmptyStrategistNotes(t *testing.T) {
	builder := newTestBuilder(0)
	req := buildRequest(1)
	req.StrategistNotes = ""

	text := builder.Build(req, nil, nil)

	assert.NotContains(t, text, "## Strategist notes")
}

func TestBuildCapsLeadSample(t *testing.T) {
	builder := newTestBuilder(0)

	text := builder.Build(buildRequest(25), nil, nil)

	assert.Contains(t, text, "(20 of 25 leads)")
	assert.Contains(t, text, "lead19@example.com")
	assert.NotContains(t, text, "lead20@example.com")

	leadLines := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "- lead") {
			leadLines++
		}
	}
	assert.Equal(t, core.LeadSampleCap, leadLines)
}

func TestBuildSmallLeadListIsNotPadded(t *testing.T) {
	builder := newTestBuilder(0)

	text := builder.Build(buildRequest(4), nil, nil)

	assert.Contains(t, text, "(4 of 4 leads)")
}

func TestBuildStatesResponseContract(t *testing.T) {
	builder := newTestBuilder(0)

	text := builder.Build(buildRequest(1), nil, nil)

	assert.Contains(t, text, "Return ONE JSON object only")
	assert.Contains(t, text, "MUST be an exact substring")
	assert.Contains(t, text, "80-100 strong match, 60-79 partial match, 40-59 weak match, 0-39 mismatch")
}

func TestBuildTruncatesLongBodies(t *testing.T) {
	builder := newTestBuilder(200)
	req := buildRequest(1)
	req.EmailSequence[0].Body = strings.Repeat("All work and no play makes for dull outreach. ", 50)

	text := builder.Build(req, nil, nil)

	assert.Contains(t, text, "[... content truncated ...]")
}

func TestBuildLeadLineIncludesAttributes(t *testing.T) {
	builder := newTestBuilder(0)
	req := buildRequest(1)
	req.LeadList[0] = core.Lead{
		Email:       "pat@vertex.dev",
		FirstName:   "Pat",
		LastName:    "Nguyen",
		Title:       "VP Engineering",
		Company:     "Vertex",
		Industry:    "DevTools",
		CompanySize: "51-200",
	}

	text := builder.Build(req, nil, nil)

	require.Contains(t, text, "- pat@vertex.dev")
	assert.Contains(t, text, "Pat Nguyen")
	assert.Contains(t, text, "VP Engineering")
	assert.Contains(t, text, "size: 51-200")
}

func TestBuildPassesDecodedLeadAttributesThrough(t *testing.T) {
	builder := newTestBuilder(0)
	req := buildRequest(1)

	var lead core.Lead
	require.NoError(t, json.Unmarshal(
		[]byte(`{"email": "ana@acme.io", "painPoint": "slow outbound", "funding": "Series B"}`),
		&lead))
	req.LeadList[0] = lead

	text := builder.Build(req, nil, nil)

	assert.Contains(t, text, "painPoint: slow outbound")
	assert.Contains(t, text, "funding: Series B")
	// Attribute order is sorted, so repeated builds emit identical text
	assert.Less(t, strings.Index(text, "funding:"), strings.Index(text, "painPoint:"))
	assert.Equal(t, text, builder.Build(req, nil, nil))
}
