package clients

import (
	"context"
	"time"

	"github.com/spacesedan/reviewflow/config"
	"github.com/spacesedan/reviewflow/internal/classifier"
)

type GeneratorOptions struct {
	Model   string
	BaseURL string
	Timeout time.Duration
}

// NewGenerator builds the configured provider's generator for apiKey.
func NewGenerator(ctx context.Context, cfg config.AnalysisConfig, apiKey string) (classifier.Generator, error) {
	opts := GeneratorOptions{
		Model:   cfg.Model,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.RemoteTimeout,
	}

	if cfg.Provider == PROVIDER_OPENAI {
		return NewOpenAIClient(apiKey, opts), nil
	}
	return NewGeminiClient(ctx, apiKey, opts)
}
