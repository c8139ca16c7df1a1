package analysis

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spacesedan/reviewflow/internal/classifier"
	"github.com/spacesedan/reviewflow/internal/models"
	"github.com/spacesedan/reviewflow/internal/sentiment"
)

// WrapServicePayload accepts any JSON object from the analysis service.
// Missing or unknown fields fall back to empty lists and a neutral label.
// A payload the service answered locally keeps the local method tag.
func WrapServicePayload(body []byte, at time.Time) (models.AnalysisResult, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return models.AnalysisResult{}, fmt.Errorf("%w: service body is not a JSON object", ErrMalformedResponse)
	}

	var payload models.ServicePayload
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return models.AnalysisResult{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	label := models.SentimentNeutral
	if payload.Sentiment != nil {
		if l := strings.ToLower(strings.TrimSpace(*payload.Sentiment)); models.IsSentimentLabel(l) {
			label = l
		}
	}

	score := 0.0
	if payload.Score != nil {
		score = sentiment.Clamp(*payload.Score)
	}

	method := models.MethodRemoteService
	if payload.Method == models.MethodLocal.Label() || payload.Method == string(models.MethodLocal) {
		method = models.MethodLocal
	}

	return models.AnalysisResult{
		RawScore:         score * classifier.RAW_SCORE_SCALE,
		ComparativeScore: score,
		NormalizedScore:  score,
		Sentiment:        label,
		Tokens:           []string{},
		PositiveTokens:   []string{},
		NegativeTokens:   []string{},
		Categories:       classifier.KnownCategories(payload.Categories),
		Emotions:         classifier.CleanList(payload.Emotions, 0),
		Keywords:         classifier.CleanList(payload.Keywords, sentiment.MAX_KEYWORDS),
		Method:           method,
		Error:            payload.Error,
		AnalyzedAt:       at.UTC(),
	}, nil
}
