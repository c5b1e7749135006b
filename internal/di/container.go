// Package di wires the application together with a dig container.
package di

import (
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/outboundhq/campaign-validator/internal/config"
	"github.com/outboundhq/campaign-validator/internal/core"
	"github.com/outboundhq/campaign-validator/internal/factory"
	"github.com/outboundhq/campaign-validator/internal/logging"
	"github.com/outboundhq/campaign-validator/internal/prompt"
	"github.com/outboundhq/campaign-validator/internal/server"
	"github.com/outboundhq/campaign-validator/internal/utils"
	"github.com/outboundhq/campaign-validator/internal/validation"
)

// BuildContainer creates and configures the dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	providers := []interface{}{
		config.New,
		logging.InitLogger,
		factory.NewLLMFactory,
		factory.NewStoreFactory,
		utils.NewTextProcessor,

		func(f *factory.LLMFactory) (core.LLMClient, error) {
			return f.CreateLLMClient()
		},
		func(f *factory.StoreFactory) core.PracticeStore {
			return f.CreatePracticeStore()
		},
		func(f *factory.StoreFactory) core.ClientContextStore {
			return f.CreateClientContextStore()
		},
		func(f *factory.StoreFactory) (core.GuideCache, error) {
			return f.CreateGuideCache()
		},
		func(f *factory.StoreFactory) (time.Duration, error) {
			return f.GetLLMTimeout()
		},
		func(cfg *config.Config, tp *utils.TextProcessor) *prompt.Builder {
			return prompt.NewBuilder(tp, cfg.GetLLM().MaxBodySize)
		},
		validation.NewService,
		func(cfg *config.Config, svc *validation.Service, logger *zap.Logger) *server.Server {
			return server.NewServer(
				svc,
				logger,
				cfg.GetString("server.listen_address"),
				cfg.GetStringSlice("server.cors_origins"),
				cfg.GetLLM().Provider,
			)
		},
	}

	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return nil, err
		}
	}

	return container, nil
}
