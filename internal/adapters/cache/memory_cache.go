// Package cache provides an explicitly constructed in-memory cache for the
// best-practices guide set, with an injected TTL and explicit invalidation.
package cache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/outboundhq/campaign-validator/internal/core"
)

// GuideCache caches one guide set for a fixed TTL. Expiry is checked on
// read; there is no background sweeper because only one entry exists.
type GuideCache struct {
	mu        sync.Mutex
	guides    []core.BestPracticeGuide
	expiresAt time.Time
	ttl       time.Duration
	logger    *zap.Logger
}

// NewGuideCache creates a guide cache with the given TTL. A zero or
// negative TTL disables caching entirely.
func NewGuideCache(ttl time.Duration, logger *zap.Logger) *GuideCache {
	return &GuideCache{
		ttl:    ttl,
		logger: logger,
	}
}

// GetOrCompute returns the cached guide set if present and fresh, otherwise
// runs compute and caches its result. A compute failure is returned to the
// caller and nothing is cached.
func (c *GuideCache) GetOrCompute(ctx context.Context, compute func(context.Context) ([]core.BestPracticeGuide, error)) ([]core.BestPracticeGuide, error) {
	if c.ttl <= 0 {
		return compute(ctx)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.guides != nil && time.Now().Before(c.expiresAt) {
		c.logger.Debug("guide cache hit", zap.Int("guides", len(c.guides)))
		return c.guides, nil
	}

	guides, err := compute(ctx)
	if err != nil {
		return nil, err
	}

	c.guides = guides
	c.expiresAt = time.Now().Add(c.ttl)
	c.logger.Debug("guide cache refreshed",
		zap.Int("guides", len(guides)),
		zap.Time("expires_at", c.expiresAt))

	return guides, nil
}

// Invalidate drops the cached guide set so the next read recomputes
func (c *GuideCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.guides = nil
	c.expiresAt = time.Time{}
}
