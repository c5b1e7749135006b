package core

import (
	"encoding/json"
	"time"
)

// LeadSampleCap limits how many leads are analyzed per validation
// regardless of the full list size. The ICP match summary reflects this
// sample; the metadata surfaces both the sample size and the total.
const LeadSampleCap = 20

// SampleLeads returns the first LeadSampleCap leads of the list
func SampleLeads(leads []Lead) []Lead {
	if len(leads) <= LeadSampleCap {
		return leads
	}
	return leads[:LeadSampleCap]
}

// Location identifies which part of an email a finding refers to
type Location string

const (
	LocationSubject Location = "subject"
	LocationBody    Location = "body"
)

// MatchLevel is the qualitative ICP match bracket derived from a lead's score
type MatchLevel string

const (
	MatchStrong   MatchLevel = "strong"
	MatchPartial  MatchLevel = "partial"
	MatchWeak     MatchLevel = "weak"
	MatchMismatch MatchLevel = "mismatch"
)

// LaunchStatus is the overall launch-readiness verdict
type LaunchStatus string

const (
	StatusPass        LaunchStatus = "pass"
	StatusNeedsReview LaunchStatus = "needs_review"
	StatusFail        LaunchStatus = "fail"
)

// Severity grades issues and fixes
type Severity string

const (
	SeverityError      Severity = "error"
	SeverityWarning    Severity = "warning"
	SeveritySuggestion Severity = "suggestion"
)

// EmailSequenceStep is one email in a multi-step outbound sequence.
// Step numbers need not be contiguous; ordering is preserved as given.
type EmailSequenceStep struct {
	Step    int    `json:"step" validate:"min=1"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Lead is a single record from the campaign's lead list. Attributes holds
// any fields beyond the named ones; the engine ignores them but passes them
// through to the prompt.
type Lead struct {
	Email       string            `json:"email" validate:"required"`
	FirstName   string            `json:"firstName,omitempty"`
	LastName    string            `json:"lastName,omitempty"`
	Title       string            `json:"title,omitempty"`
	Company     string            `json:"company,omitempty"`
	Industry    string            `json:"industry,omitempty"`
	CompanySize string            `json:"companySize,omitempty"`
	Attributes  map[string]string `json:"-"`
}

var knownLeadFields = map[string]struct{}{
	"email":       {},
	"firstName":   {},
	"lastName":    {},
	"title":       {},
	"company":     {},
	"industry":    {},
	"companySize": {},
}

// UnmarshalJSON captures unknown keys into Attributes so platform-specific
// lead fields survive into the prompt. Non-string values keep their raw
// JSON text.
func (l *Lead) UnmarshalJSON(data []byte) error {
	type plain Lead
	var known plain
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*l = Lead(known)
	for key, value := range raw {
		if _, ok := knownLeadFields[key]; ok {
			continue
		}
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			s = string(value)
		}
		if l.Attributes == nil {
			l.Attributes = make(map[string]string)
		}
		l.Attributes[key] = s
	}

	return nil
}

// SpamWordMatch records one distinct lexicon entry found in campaign copy.
// Locations is a set; a word seen in both fields carries both entries once.
type SpamWordMatch struct {
	Word      string     `json:"word"`
	Count     int        `json:"count"`
	Locations []Location `json:"locations"`
}

// SpamAnalysis is the result of scoring free text against the trigger lexicon
type SpamAnalysis struct {
	Score          int             `json:"score"`
	SpamWordsFound []SpamWordMatch `json:"spamWordsFound"`
	Warnings       []string        `json:"warnings"`
}

// SubjectLineAnalysis is the result of the subject-line heuristic chain
type SubjectLineAnalysis struct {
	Score              int      `json:"score"`
	Length             int      `json:"length"`
	HasPersonalization bool     `json:"hasPersonalization"`
	HasPowerWords      bool     `json:"hasPowerWords"`
	PowerWordsFound    []string `json:"powerWordsFound"`
	HasEmoji           bool     `json:"hasEmoji"`
	HasAllCaps         bool     `json:"hasAllCaps"`
	AllCapsWords       []string `json:"allCapsWords"`
	Issues             []string `json:"issues"`
	Suggestions        []string `json:"suggestions"`
}

// EmailCopyAnalysis blends subject heuristics with merged subject+body spam
// findings into one deterministic quality score
type EmailCopyAnalysis struct {
	OverallScore    int                 `json:"overallScore"`
	SubjectAnalysis SubjectLineAnalysis `json:"subjectAnalysis"`
	SpamAnalysis    SpamAnalysis        `json:"spamAnalysis"`
}

// IssueType categorizes a validation issue
type IssueType string

const (
	IssueCopy     IssueType = "copy"
	IssueLeads    IssueType = "leads"
	IssueICP      IssueType = "icp"
	IssueStrategy IssueType = "strategy"
)

// ValidationIssue is one problem the model or engine found with the campaign
type ValidationIssue struct {
	Type     IssueType `json:"type"`
	Severity Severity  `json:"severity"`
	Message  string    `json:"message"`
	Details  string    `json:"details,omitempty"`
}

// FixType categorizes an actionable fix
type FixType string

const (
	FixSubject         FixType = "subject"
	FixBody            FixType = "body"
	FixPersonalization FixType = "personalization"
	FixTone            FixType = "tone"
	FixLength          FixType = "length"
	FixSpam            FixType = "spam"
)

// FixLocation anchors a fix to an exact field of one email in the sequence
type FixLocation struct {
	EmailIndex int    `json:"emailIndex"`
	Field      string `json:"field"`
}

// ActionableFix is a suggested text replacement anchored to a location in
// the campaign. Original must be an exact substring of the referenced field;
// fixes that fail that check are dropped before the response is returned.
type ActionableFix struct {
	ID        string      `json:"id"`
	Type      FixType     `json:"type"`
	Severity  Severity    `json:"severity"`
	Message   string      `json:"message"`
	Original  string      `json:"original"`
	Suggested string      `json:"suggested"`
	Location  FixLocation `json:"location"`
}

// MatchReason is one factor the model cited for a lead's ICP fit
type MatchReason struct {
	Factor   string `json:"factor"`
	Positive bool   `json:"positive"`
}

// LeadAnalysis is the per-lead ICP match assessment
type LeadAnalysis struct {
	Email      string        `json:"email"`
	FirstName  string        `json:"firstName,omitempty"`
	LastName   string        `json:"lastName,omitempty"`
	Company    string        `json:"company,omitempty"`
	Title      string        `json:"title,omitempty"`
	Industry   string        `json:"industry,omitempty"`
	MatchScore int           `json:"matchScore"`
	MatchLevel MatchLevel    `json:"matchLevel"`
	Reasons    []MatchReason `json:"reasons"`
}

// ICPMatchSummary aggregates match brackets over the analyzed lead sample.
// Strong+Partial+Weak+Mismatch always equals Total, which equals the length
// of the lead analysis list (the capped sample, not the full lead list).
type ICPMatchSummary struct {
	Strong       int     `json:"strong"`
	Partial      int     `json:"partial"`
	Weak         int     `json:"weak"`
	Mismatch     int     `json:"mismatch"`
	Total        int     `json:"total"`
	AverageScore float64 `json:"averageScore"`
}

// ValidationResponse is the engine's top-level result for one campaign
type ValidationResponse struct {
	Score                int               `json:"score"`
	Status               LaunchStatus      `json:"status"`
	Summary              string            `json:"summary"`
	Issues               []ValidationIssue `json:"issues"`
	Suggestions          []string          `json:"suggestions"`
	ActionableFixes      []ActionableFix   `json:"actionableFixes"`
	BestPracticesChecked []string          `json:"bestPracticesChecked"`
	ClientContextUsed    bool              `json:"clientContextUsed"`
	LeadAnalysis         []LeadAnalysis    `json:"leadAnalysis"`
	ICPMatchSummary      ICPMatchSummary   `json:"icpMatchSummary"`
}

// BestPracticeGuide is one document from the best-practices store
type BestPracticeGuide struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Category  string    `json:"category" yaml:"category"`
	Content   string    `json:"content" yaml:"content"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// ClientContext is the per-client record read from the context store
type ClientContext struct {
	ClientID    string `json:"clientId" yaml:"clientId"`
	Name        string `json:"name" yaml:"name"`
	Industry    string `json:"industry" yaml:"industry"`
	ICPNotes    string `json:"icpNotes" yaml:"icpNotes"`
	ToneOfVoice string `json:"toneOfVoice" yaml:"toneOfVoice"`
	Notes       string `json:"notes" yaml:"notes"`
}

// ValidationRequest is a campaign submitted for launch-readiness validation
type ValidationRequest struct {
	CampaignID      string              `json:"campaignId" validate:"required"`
	ClientID        string              `json:"clientId,omitempty"`
	Platform        string              `json:"platform" validate:"required"`
	EmailSequence   []EmailSequenceStep `json:"emailSequence" validate:"required,min=1,dive"`
	LeadList        []Lead              `json:"leadList" validate:"required,min=1,dive"`
	ICPDescription  string              `json:"icpDescription" validate:"required"`
	StrategistNotes string              `json:"strategistNotes,omitempty"`
}

// PracticesSource says where the guide set used for a validation came from
type PracticesSource string

const (
	PracticesFromFile     PracticesSource = "file"
	PracticesFromDefaults PracticesSource = "defaults"
)

// ContextSource says whether client-specific context was available
type ContextSource string

const (
	ContextFromFile ContextSource = "file"
	ContextNone     ContextSource = "none"
)

// ValidationMeta carries diagnostic information alongside a validation
type ValidationMeta struct {
	RequestID           string          `json:"requestId"`
	BestPracticesSource PracticesSource `json:"bestPracticesSource"`
	ClientContextSource ContextSource   `json:"clientContextSource"`
	LeadsAnalyzed       int             `json:"leadsAnalyzed"`
	TotalLeads          int             `json:"totalLeads"`
	EmailsAnalyzed      int             `json:"emailsAnalyzed"`
}

// ValidationResult is the full outcome of one pipeline execution
type ValidationResult struct {
	Validation ValidationResponse `json:"validation"`
	Meta       ValidationMeta     `json:"meta"`
	Timestamp  time.Time          `json:"timestamp"`
}
