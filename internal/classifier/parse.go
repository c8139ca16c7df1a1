package classifier

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spacesedan/reviewflow/internal/models"
	"github.com/spacesedan/reviewflow/internal/sentiment"
)

// RAW_SCORE_SCALE approximates an unnormalized magnitude from the model's
// continuous score. Display only; it is not a lexicon sum.
const RAW_SCORE_SCALE = 5

// Prediction is a validated model answer.
type Prediction struct {
	Sentiment  string
	Score      float64
	Emotions   []string
	Categories []string
	Keywords   []string
}

// ParsePrediction strips code fences from raw and validates the JSON object
// inside it. Any violation yields ErrMalformedResponse.
func ParsePrediction(raw string) (Prediction, error) {
	cleaned := StripFences(raw)
	if cleaned == "" {
		return Prediction{}, fmt.Errorf("%w: empty completion", ErrMalformedResponse)
	}

	var payload models.ServicePayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return Prediction{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	if payload.Sentiment == nil {
		return Prediction{}, fmt.Errorf("%w: missing sentiment", ErrMalformedResponse)
	}
	label := strings.ToLower(strings.TrimSpace(*payload.Sentiment))
	if !models.IsSentimentLabel(label) {
		return Prediction{}, fmt.Errorf("%w: unknown sentiment %q", ErrMalformedResponse, *payload.Sentiment)
	}

	if payload.Score == nil {
		return Prediction{}, fmt.Errorf("%w: missing score", ErrMalformedResponse)
	}
	score := *payload.Score
	if score < -1 || score > 1 {
		return Prediction{}, fmt.Errorf("%w: score %v outside [-1, 1]", ErrMalformedResponse, score)
	}

	return Prediction{
		Sentiment:  label,
		Score:      score,
		Emotions:   CleanList(payload.Emotions, 0),
		Categories: KnownCategories(payload.Categories),
		Keywords:   CleanList(payload.Keywords, sentiment.MAX_KEYWORDS),
	}, nil
}

// Result maps a prediction onto the shared result shape.
func (p Prediction) Result(method models.Method, at time.Time) models.AnalysisResult {
	return models.AnalysisResult{
		RawScore:         p.Score * RAW_SCORE_SCALE,
		ComparativeScore: p.Score,
		NormalizedScore:  p.Score,
		Sentiment:        p.Sentiment,
		Tokens:           []string{},
		PositiveTokens:   []string{},
		NegativeTokens:   []string{},
		Categories:       p.Categories,
		Emotions:         p.Emotions,
		Keywords:         p.Keywords,
		Method:           method,
		AnalyzedAt:       at.UTC(),
	}
}

// CleanList trims, drops blanks and duplicates, and caps the list when limit > 0.
func CleanList(values []string, limit int) []string {
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			cleaned = append(cleaned, v)
		}
	}
	cleaned = sentiment.Dedupe(cleaned)
	if limit > 0 && len(cleaned) > limit {
		cleaned = cleaned[:limit]
	}
	return cleaned
}

// KnownCategories keeps only the five fixed category names.
func KnownCategories(values []string) []string {
	known := make([]string, 0, len(values))
	for _, v := range CleanList(values, 0) {
		if sentiment.IsCategory(v) {
			known = append(known, v)
		}
	}
	return known
}
