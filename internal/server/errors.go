package server

import (
	"errors"
	"net/http"

	"github.com/outboundhq/campaign-validator/internal/core"
)

// errorBody is the JSON shape every failure response carries
type errorBody struct {
	Error       string `json:"error"`
	Message     string `json:"message"`
	RawResponse string `json:"rawResponse,omitempty"`
}

// mapError converts a pipeline error to an HTTP status and a stable
// machine-readable tag. Store unavailability never reaches here; it is
// recovered inside the pipeline.
func mapError(err error) (int, errorBody) {
	var reqErr *core.RequestValidationError
	if errors.As(err, &reqErr) {
		return http.StatusBadRequest, errorBody{
			Error:   "Validation error",
			Message: reqErr.Error(),
		}
	}

	var bodyErr *core.RequestBodyError
	if errors.As(err, &bodyErr) {
		return http.StatusBadRequest, errorBody{
			Error:   "Invalid request body",
			Message: bodyErr.Error(),
		}
	}

	var cfgErr *core.ConfigurationError
	if errors.As(err, &cfgErr) {
		return http.StatusInternalServerError, errorBody{
			Error:   "Configuration error",
			Message: cfgErr.Error(),
		}
	}

	var parseErr *core.ModelResponseParsingError
	if errors.As(err, &parseErr) {
		return http.StatusInternalServerError, errorBody{
			Error:       "AI response parsing error",
			Message:     parseErr.Error(),
			RawResponse: parseErr.RawExcerpt,
		}
	}

	return http.StatusInternalServerError, errorBody{
		Error:   "Internal server error",
		Message: err.Error(),
	}
}
