package factory

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/outboundhq/campaign-validator/internal/adapters/cache"
	"github.com/outboundhq/campaign-validator/internal/adapters/clientctx"
	"github.com/outboundhq/campaign-validator/internal/adapters/practices"
	"github.com/outboundhq/campaign-validator/internal/config"
	"github.com/outboundhq/campaign-validator/internal/core"
)

// StoreFactory creates the external store adapters and the guide cache
type StoreFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewStoreFactory creates a new store factory
func NewStoreFactory(cfg *config.Config, logger *zap.Logger) *StoreFactory {
	return &StoreFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreatePracticeStore creates the file-backed best-practices store
func (f *StoreFactory) CreatePracticeStore() core.PracticeStore {
	return practices.NewFileStore(f.cfg.GetString("practices.path"), f.logger)
}

// CreateClientContextStore creates the file-backed client context store
func (f *StoreFactory) CreateClientContextStore() core.ClientContextStore {
	return clientctx.NewFileStore(f.cfg.GetString("clientctx.dir"), f.logger)
}

// CreateGuideCache creates the TTL cache for the guide set
func (f *StoreFactory) CreateGuideCache() (core.GuideCache, error) {
	ttl, err := f.cfg.GetDuration("practices.cache_ttl")
	if err != nil {
		return nil, fmt.Errorf("invalid practices cache TTL: %w", err)
	}
	return cache.NewGuideCache(ttl, f.logger), nil
}

// GetLLMTimeout returns the configured model-call timeout
func (f *StoreFactory) GetLLMTimeout() (time.Duration, error) {
	timeout, err := f.cfg.GetDuration("llm.timeout")
	if err != nil {
		return 0, fmt.Errorf("invalid llm timeout: %w", err)
	}
	return timeout, nil
}
