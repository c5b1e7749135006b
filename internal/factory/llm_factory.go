package factory

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"go.uber.org/zap"

	"github.com/outboundhq/campaign-validator/internal/adapters/bedrock"
	"github.com/outboundhq/campaign-validator/internal/adapters/gemini"
	"github.com/outboundhq/campaign-validator/internal/adapters/openai"
	"github.com/outboundhq/campaign-validator/internal/config"
	"github.com/outboundhq/campaign-validator/internal/core"
)

// LLMFactory creates LLM clients from configuration
type LLMFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewLLMFactory creates a new LLM factory
func NewLLMFactory(cfg *config.Config, logger *zap.Logger) *LLMFactory {
	return &LLMFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateLLMClient creates the configured provider's client. Missing
// credentials are a ConfigurationError with no fallback.
func (f *LLMFactory) CreateLLMClient() (core.LLMClient, error) {
	llmConfig := f.cfg.GetLLM()

	switch llmConfig.Provider {
	case "openai":
		cfg := f.cfg.GetOpenAI()
		if cfg.APIKey == "" {
			return nil, &core.ConfigurationError{Reason: "openai.api_key is not set"}
		}
		return openai.NewOpenAIClient(cfg.APIKey, cfg.ModelName, cfg.MaxTokens, cfg.Temperature, cfg.TopP, f.logger), nil

	case "gemini":
		cfg := f.cfg.GetGemini()
		if cfg.APIKey == "" {
			return nil, &core.ConfigurationError{Reason: "gemini.api_key is not set"}
		}
		return gemini.NewGeminiClient(cfg.APIKey, cfg.ModelName, cfg.MaxTokens, cfg.Temperature, cfg.TopP, f.logger)

	case "bedrock":
		cfg := f.cfg.GetBedrock()
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.Region))
		if err != nil {
			return nil, &core.ConfigurationError{Reason: fmt.Sprintf("failed to load AWS configuration: %v", err)}
		}
		client := bedrockruntime.NewFromConfig(awsCfg)
		return bedrock.NewBedrockClient(client, cfg.ModelID, cfg.MaxTokens, cfg.Temperature, cfg.TopP, f.logger), nil

	default:
		return nil, &core.ConfigurationError{Reason: fmt.Sprintf("unsupported LLM provider: %s", llmConfig.Provider)}
	}
}
