package core

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrContextNotFound is returned by a ClientContextStore when no record
// exists for the requested client id. Callers treat it as a handled state,
// not a failure.
var ErrContextNotFound = errors.New("client context not found")

// rawExcerptLimit caps how much of a model response is carried in a parse
// error for diagnostics.
const rawExcerptLimit = 500

// RequestValidationError reports a campaign submission that is missing
// required fields or has empty sequence/lead arrays.
type RequestValidationError struct {
	MissingFields []string
}

func (e *RequestValidationError) Error() string {
	if len(e.MissingFields) == 0 {
		return "invalid validation request"
	}
	return fmt.Sprintf("missing or invalid required fields: %s", strings.Join(e.MissingFields, ", "))
}

// ConfigurationError reports absent or unusable LLM provider configuration.
// There is no fallback for this class.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// ModelResponseParsingError reports that the model's text output did not
// contain a parseable JSON object. RawExcerpt holds up to 500 characters of
// the raw response for diagnostics; a synthetic score is never substituted.
type ModelResponseParsingError struct {
	RawExcerpt string
	Cause      error
}

func (e *ModelResponseParsingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to parse model response: %v", e.Cause)
	}
	return "failed to parse model response"
}

func (e *ModelResponseParsingError) Unwrap() error {
	return e.Cause
}

// NewModelResponseParsingError builds a parsing error, truncating the raw
// response to the excerpt limit on a UTF-8 boundary.
func NewModelResponseParsingError(raw string, cause error) *ModelResponseParsingError {
	if len(raw) > rawExcerptLimit {
		raw = raw[:rawExcerptLimit]
		for !utf8.ValidString(raw) && len(raw) > 0 {
			raw = raw[:len(raw)-1]
		}
	}
	return &ModelResponseParsingError{RawExcerpt: raw, Cause: cause}
}

// RequestBodyError reports a request whose body was not valid JSON at the
// transport level.
type RequestBodyError struct {
	Cause error
}

func (e *RequestBodyError) Error() string {
	return fmt.Sprintf("malformed request body: %v", e.Cause)
}

func (e *RequestBodyError) Unwrap() error {
	return e.Cause
}
