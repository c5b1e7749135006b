package server

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/outboundhq/campaign-validator/internal/analyzer"
	"github.com/outboundhq/campaign-validator/internal/core"
)

// validateResponse is the success envelope for campaign validation
type validateResponse struct {
	Success    bool                    `json:"success"`
	CampaignID string                  `json:"campaignId"`
	ClientID   string                  `json:"clientId,omitempty"`
	Platform   string                  `json:"platform"`
	Timestamp  time.Time               `json:"timestamp"`
	Validation core.ValidationResponse `json:"validation"`
	Meta       core.ValidationMeta     `json:"meta"`
}

// handleValidateCampaign runs the full readiness pipeline for a campaign
// POST /api/campaigns/validate
func (s *Server) handleValidateCampaign(w http.ResponseWriter, r *http.Request) {
	var req core.ValidationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, &core.RequestBodyError{Cause: err})
		return
	}

	result, err := s.service.ValidateCampaign(r.Context(), &req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, validateResponse{
		Success:    true,
		CampaignID: req.CampaignID,
		ClientID:   req.ClientID,
		Platform:   req.Platform,
		Timestamp:  result.Timestamp,
		Validation: result.Validation,
		Meta:       result.Meta,
	})
}

type analyzeSubjectRequest struct {
	Subject string `json:"subject"`
}

// handleAnalyzeSubject runs the deterministic subject-line analyzer,
// intended for interactive editors
// POST /api/analyze/subject
func (s *Server) handleAnalyzeSubject(w http.ResponseWriter, r *http.Request) {
	var req analyzeSubjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, &core.RequestBodyError{Cause: err})
		return
	}

	s.writeJSON(w, http.StatusOK, analyzer.AnalyzeSubjectLine(req.Subject))
}

type analyzeCopyRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// handleAnalyzeCopy runs the combined deterministic copy analyzer
// POST /api/analyze/copy
func (s *Server) handleAnalyzeCopy(w http.ResponseWriter, r *http.Request) {
	var req analyzeCopyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, &core.RequestBodyError{Cause: err})
		return
	}

	s.writeJSON(w, http.StatusOK, analyzer.AnalyzeEmailCopy(req.Subject, req.Body))
}

// handleHealth reports service wiring status
// GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"provider": s.provider,
		"time":     time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status, body := mapError(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
	} else {
		s.logger.Debug("request rejected", zap.Error(err))
	}
	s.writeJSON(w, status, body)
}
