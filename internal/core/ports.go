package core

import (
	"context"
)

// LLMClient defines the interface for the generative text model service.
// The prompt and the response are both opaque text; no structure is assumed
// beyond "likely contains one JSON object somewhere".
type LLMClient interface {
	// Complete sends one prompt and returns the raw model output
	Complete(ctx context.Context, prompt string) (string, error)
}

// PracticeStore defines the interface for the best-practices document store.
// Unavailability is a valid state handled by the caller via default guides.
type PracticeStore interface {
	// LoadGuides returns the full best-practices guide set
	LoadGuides(ctx context.Context) ([]BestPracticeGuide, error)
}

// ClientContextStore defines the interface for the per-client context store
type ClientContextStore interface {
	// LoadContext returns the context record for a client, or
	// ErrContextNotFound when no record exists
	LoadContext(ctx context.Context, clientID string) (*ClientContext, error)
}

// GuideCache caches the best-practices guide set with an injected TTL
type GuideCache interface {
	// GetOrCompute returns the cached guide set or loads it via compute
	GetOrCompute(ctx context.Context, compute func(context.Context) ([]BestPracticeGuide, error)) ([]BestPracticeGuide, error)

	// Invalidate drops the cached guide set
	Invalidate()
}
