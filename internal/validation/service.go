// Package validation runs the campaign readiness pipeline: load context,
// build the prompt, invoke the model, validate its response, classify the
// lead sample, and aggregate the final verdict. The pipeline is linear with
// no retries; any stage failure surfaces immediately as an error.
package validation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/outboundhq/campaign-validator/internal/classifier"
	"github.com/outboundhq/campaign-validator/internal/core"
	"github.com/outboundhq/campaign-validator/internal/parser"
	"github.com/outboundhq/campaign-validator/internal/prompt"
)

// Service is the campaign readiness validation engine
type Service struct {
	llmClient     core.LLMClient
	practiceStore core.PracticeStore
	contextStore  core.ClientContextStore
	guideCache    core.GuideCache
	promptBuilder *prompt.Builder
	logger        *zap.Logger
	llmTimeout    time.Duration
	validate      *validator.Validate
}

// NewService creates a new validation service
func NewService(
	llmClient core.LLMClient,
	practiceStore core.PracticeStore,
	contextStore core.ClientContextStore,
	guideCache core.GuideCache,
	promptBuilder *prompt.Builder,
	logger *zap.Logger,
	llmTimeout time.Duration,
) *Service {
	return &Service{
		llmClient:     llmClient,
		practiceStore: practiceStore,
		contextStore:  contextStore,
		guideCache:    guideCache,
		promptBuilder: promptBuilder,
		logger:        logger,
		llmTimeout:    llmTimeout,
		validate:      validator.New(),
	}
}

// ValidateCampaign executes the full pipeline for one campaign submission
func (s *Service) ValidateCampaign(ctx context.Context, req *core.ValidationRequest) (*core.ValidationResult, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	logger := s.logger.With(
		zap.String("request_id", requestID),
		zap.String("campaign_id", req.CampaignID))

	guides, practicesSource, clientCtx, contextSource := s.loadContext(ctx, req.ClientID, logger)

	promptText := s.promptBuilder.Build(req, guides, clientCtx)
	logger.Debug("prompt assembled",
		zap.Int("prompt_chars", len(promptText)),
		zap.Int("guides", len(guides)))

	raw, err := s.invokeModel(ctx, promptText)
	if err != nil {
		return nil, err
	}

	validation, err := parser.ParseValidationResponse(raw)
	if err != nil {
		logger.Error("model response was not parseable", zap.Error(err))
		return nil, err
	}

	validation.ActionableFixes = s.verifyFixes(validation.ActionableFixes, req.EmailSequence, logger)
	if len(validation.LeadAnalysis) > core.LeadSampleCap {
		logger.Warn("model returned more lead analyses than the sample size",
			zap.Int("returned", len(validation.LeadAnalysis)))
		validation.LeadAnalysis = validation.LeadAnalysis[:core.LeadSampleCap]
	}
	validation.LeadAnalysis, validation.ICPMatchSummary = classifier.ClassifyLeads(validation.LeadAnalysis)
	validation.Status = classifier.StatusForScore(validation.Score)
	validation.BestPracticesChecked = guideIDs(guides)
	validation.ClientContextUsed = clientCtx != nil

	sample := core.SampleLeads(req.LeadList)
	result := &core.ValidationResult{
		Validation: *validation,
		Meta: core.ValidationMeta{
			RequestID:           requestID,
			BestPracticesSource: practicesSource,
			ClientContextSource: contextSource,
			LeadsAnalyzed:       len(sample),
			TotalLeads:          len(req.LeadList),
			EmailsAnalyzed:      len(req.EmailSequence),
		},
		Timestamp: time.Now().UTC(),
	}

	logger.Info("campaign validated",
		zap.Int("score", validation.Score),
		zap.String("status", string(validation.Status)),
		zap.Int("issues", len(validation.Issues)),
		zap.Int("leads_analyzed", len(sample)))

	return result, nil
}

// validateRequest enforces the request contract and enumerates missing
// fields in the error.
func (s *Service) validateRequest(req *core.ValidationRequest) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &core.RequestValidationError{MissingFields: []string{err.Error()}}
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, jsonFieldName(fe.Field()))
	}
	return &core.RequestValidationError{MissingFields: fields}
}

func jsonFieldName(structField string) string {
	names := map[string]string{
		"CampaignID":     "campaignId",
		"Platform":       "platform",
		"EmailSequence":  "emailSequence",
		"LeadList":       "leadList",
		"ICPDescription": "icpDescription",
		"Email":          "leadList.email",
		"Step":           "emailSequence.step",
	}
	if name, ok := names[structField]; ok {
		return name
	}
	return strings.ToLower(structField[:1]) + structField[1:]
}

// loadContext fetches the guide set and the client context concurrently.
// Both loads recover locally: missing practices fall back to the built-in
// defaults, a missing client record proceeds with no context. Neither is
// ever surfaced as an error.
func (s *Service) loadContext(ctx context.Context, clientID string, logger *zap.Logger) ([]core.BestPracticeGuide, core.PracticesSource, *core.ClientContext, core.ContextSource) {
	var (
		guides          []core.BestPracticeGuide
		practicesSource = core.PracticesFromFile
		clientCtx       *core.ClientContext
		contextSource   = core.ContextNone
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		loaded, err := s.guideCache.GetOrCompute(gctx, s.practiceStore.LoadGuides)
		if err != nil {
			logger.Warn("best-practices store unavailable, using default guides", zap.Error(err))
			guides = core.DefaultGuides()
			practicesSource = core.PracticesFromDefaults
			return nil
		}
		guides = loaded
		return nil
	})

	g.Go(func() error {
		record, err := s.contextStore.LoadContext(gctx, clientID)
		if err != nil {
			if !errors.Is(err, core.ErrContextNotFound) {
				logger.Warn("client context store unavailable, proceeding without client context", zap.Error(err))
			}
			return nil
		}
		clientCtx = record
		contextSource = core.ContextFromFile
		return nil
	})

	// Goroutines only return nil; Wait is for completion, not errors
	_ = g.Wait()

	return guides, practicesSource, clientCtx, contextSource
}

// invokeModel performs the single blocking model call under the configured
// timeout. Caller cancellation propagates through ctx.
func (s *Service) invokeModel(ctx context.Context, promptText string) (string, error) {
	if s.llmTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.llmTimeout)
		defer cancel()
	}

	raw, err := s.llmClient.Complete(ctx, promptText)
	if err != nil {
		return "", fmt.Errorf("model invocation failed: %w", err)
	}
	return raw, nil
}

// verifyFixes drops fixes whose original text is not an exact substring of
// the referenced email field. A fix that cannot be located would break
// find/replace downstream, so it is removed rather than passed through.
func (s *Service) verifyFixes(fixes []core.ActionableFix, sequence []core.EmailSequenceStep, logger *zap.Logger) []core.ActionableFix {
	verified := make([]core.ActionableFix, 0, len(fixes))
	for _, fix := range fixes {
		if !fixLocatable(fix, sequence) {
			logger.Warn("dropping actionable fix whose original text was not found",
				zap.String("fix_id", fix.ID),
				zap.Int("email_index", fix.Location.EmailIndex),
				zap.String("field", fix.Location.Field))
			continue
		}
		verified = append(verified, fix)
	}
	return verified
}

func fixLocatable(fix core.ActionableFix, sequence []core.EmailSequenceStep) bool {
	if fix.Original == "" {
		return false
	}
	idx := fix.Location.EmailIndex
	if idx < 0 || idx >= len(sequence) {
		return false
	}

	switch fix.Location.Field {
	case string(core.LocationSubject):
		return strings.Contains(sequence[idx].Subject, fix.Original)
	case string(core.LocationBody):
		return strings.Contains(sequence[idx].Body, fix.Original)
	default:
		return false
	}
}

func guideIDs(guides []core.BestPracticeGuide) []string {
	ids := make([]string, 0, len(guides))
	for _, g := range guides {
		ids = append(ids, g.ID)
	}
	return ids
}
