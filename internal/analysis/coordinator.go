package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spacesedan/reviewflow/config"
	"github.com/spacesedan/reviewflow/internal/classifier"
	"github.com/spacesedan/reviewflow/internal/clients"
	"github.com/spacesedan/reviewflow/internal/models"
	"github.com/spacesedan/reviewflow/internal/sentiment"
)

// ServiceClient posts review text to the central analysis service and
// returns its raw 2xx body.
type ServiceClient interface {
	Analyze(ctx context.Context, text string) ([]byte, error)
}

// KeySource yields the client-held API key; "" means none is configured.
type KeySource interface {
	APIKey(ctx context.Context) (string, error)
}

type KeyFunc func(ctx context.Context) (string, error)

func (f KeyFunc) APIKey(ctx context.Context) (string, error) {
	return f(ctx)
}

func StaticKey(key string) KeySource {
	return KeyFunc(func(context.Context) (string, error) { return key, nil })
}

// GeneratorFactory builds a model transport bound to apiKey.
type GeneratorFactory func(ctx context.Context, apiKey string) (classifier.Generator, error)

type LocalAnalyzer interface {
	Analyze(text string) models.AnalysisResult
}

// Coordinator picks exactly one tier per call: service, then direct remote,
// then local. It holds no per-call state and is safe for concurrent use.
type Coordinator struct {
	local          LocalAnalyzer
	service        ServiceClient
	serviceTimeout time.Duration
	keys           KeySource
	generators     GeneratorFactory
	remoteTimeout  time.Duration
	now            func() time.Time
}

type Option func(*Coordinator)

func WithService(service ServiceClient, timeout time.Duration) Option {
	return func(c *Coordinator) {
		c.service = service
		c.serviceTimeout = timeout
	}
}

func WithDirectRemote(keys KeySource, generators GeneratorFactory, timeout time.Duration) Option {
	return func(c *Coordinator) {
		c.keys = keys
		c.generators = generators
		c.remoteTimeout = timeout
	}
}

func NewCoordinator(local LocalAnalyzer, opts ...Option) *Coordinator {
	c := &Coordinator{local: local, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewCoordinatorFromConfig wires the production tiers. The service tier is
// enabled only when a service URL is configured.
func NewCoordinatorFromConfig(cfg config.AnalysisConfig, keys KeySource) *Coordinator {
	opts := []Option{
		WithDirectRemote(keys, func(ctx context.Context, apiKey string) (classifier.Generator, error) {
			return clients.NewGenerator(ctx, cfg, apiKey)
		}, cfg.RemoteTimeout),
	}
	if cfg.ServiceURL != "" {
		service := clients.NewAnalysisServiceClient(cfg.ServiceURL, cfg.ServiceTimeout, cfg.ServiceRetries)
		opts = append(opts, WithService(service, cfg.ServiceTimeout))
	}
	return NewCoordinator(sentiment.GetLocalAnalyzer(), opts...)
}

func (c *Coordinator) Analyze(ctx context.Context, text string) (models.AnalysisResult, error) {
	if strings.TrimSpace(text) == "" {
		return models.AnalysisResult{}, ErrEmptyInput
	}
	if err := ctx.Err(); err != nil {
		return models.AnalysisResult{}, err
	}

	logger := slog.With(slog.String("request_id", uuid.NewString()))

	// A degraded service answer is kept only if the direct tier is unavailable.
	var degraded *models.AnalysisResult
	if c.service != nil {
		result, err := c.analyzeWithService(ctx, text)
		switch {
		case err == nil && !result.Degraded():
			logger.Debug("[Coordinator] Service tier answered")
			return result, nil
		case err == nil:
			logger.Warn("[Coordinator] Service tier answered in degraded mode, advancing",
				slog.String("service_error", result.Error))
			degraded = &result
		default:
			logger.Warn("[Coordinator] Service tier failed, advancing",
				slog.String("error", err.Error()))
			if ctxErr := ctx.Err(); ctxErr != nil {
				return models.AnalysisResult{}, ctxErr
			}
		}
	}

	if key := c.apiKey(ctx, logger); key != "" {
		result, err := c.analyzeDirect(ctx, key, text)
		if err == nil {
			logger.Debug("[Coordinator] Direct remote tier answered")
			return result, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return models.AnalysisResult{}, ctxErr
		}

		logger.Warn("[Coordinator] Direct remote tier failed, using local fallback",
			slog.String("error", err.Error()))
		fallback := c.local.Analyze(text)
		fallback.Error = models.LOCAL_FALLBACK_ERROR
		return fallback, nil
	}

	if degraded != nil {
		return *degraded, nil
	}

	logger.Debug("[Coordinator] Using local tier")
	return c.local.Analyze(text), nil
}

func (c *Coordinator) analyzeWithService(ctx context.Context, text string) (models.AnalysisResult, error) {
	if c.serviceTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.serviceTimeout)
		defer cancel()
	}

	body, err := c.service.Analyze(ctx, text)
	if err != nil {
		return models.AnalysisResult{}, fmt.Errorf("%w: %w", ErrNetworkUnavailable, err)
	}
	return WrapServicePayload(body, c.now())
}

func (c *Coordinator) apiKey(ctx context.Context, logger *slog.Logger) string {
	if c.keys == nil || c.generators == nil {
		return ""
	}
	key, err := c.keys.APIKey(ctx)
	if err != nil {
		logger.Warn("[Coordinator] Key source failed, treating as no key",
			slog.String("error", err.Error()))
		return ""
	}
	return strings.TrimSpace(key)
}

func (c *Coordinator) analyzeDirect(ctx context.Context, key string, text string) (models.AnalysisResult, error) {
	gen, err := c.generators(ctx, key)
	if err != nil {
		return models.AnalysisResult{}, &RemoteClassificationError{
			Err: fmt.Errorf("%w: %w", ErrConfigurationMissing, err),
		}
	}
	return classifier.NewRemoteClassifier(gen, c.remoteTimeout).Classify(ctx, text)
}
