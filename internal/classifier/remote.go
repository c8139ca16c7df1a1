package classifier

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spacesedan/reviewflow/internal/models"
)

// Generator sends a prompt to a generative model and returns its text answer.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Named is implemented by generators that report their model provider.
type Named interface {
	Provider() string
}

type RemoteClassifier struct {
	generator Generator
	timeout   time.Duration
	now       func() time.Time
}

func NewRemoteClassifier(generator Generator, timeout time.Duration) *RemoteClassifier {
	return &RemoteClassifier{
		generator: generator,
		timeout:   timeout,
		now:       time.Now,
	}
}

// Classify asks the model for a structured analysis of text. Failures are
// always *RemoteClassificationError and never carry a partial result.
func (c *RemoteClassifier) Classify(ctx context.Context, text string) (models.AnalysisResult, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := c.generator.Generate(ctx, BuildPrompt(text))
	if err != nil {
		slog.Warn("[RemoteClassifier] Generation failed",
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()))
		return models.AnalysisResult{}, &RemoteClassificationError{
			Err: fmt.Errorf("%w: %w", ErrNetworkUnavailable, err),
		}
	}

	prediction, err := ParsePrediction(raw)
	if err != nil {
		slog.Warn("[RemoteClassifier] Rejected model output",
			slog.String("error", err.Error()),
			getPreview(raw))
		return models.AnalysisResult{}, &RemoteClassificationError{Err: err}
	}

	slog.Debug("[RemoteClassifier] Classification successful",
		slog.Duration("elapsed", time.Since(start)),
		slog.String("sentiment", prediction.Sentiment))

	result := prediction.Result(models.MethodRemoteDirect, c.now())
	if named, ok := c.generator.(Named); ok {
		result.Provider = named.Provider()
	}
	return result, nil
}

func getPreview(raw string) slog.Attr {
	if len(raw) > 50 {
		raw = raw[:50]
	}
	return slog.String("raw_response", raw)
}
