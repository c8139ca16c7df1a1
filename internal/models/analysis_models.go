package models

import "time"

// Method identifies which tier produced an AnalysisResult.
type Method string

const (
	MethodLocal         Method = "local"
	MethodRemoteService Method = "remote-service"
	MethodRemoteDirect  Method = "remote-direct"
)

// Label is the provenance text shown next to a result.
func (m Method) Label() string {
	switch m {
	case MethodLocal:
		return "Local Logic"
	case MethodRemoteService:
		return "Server AI"
	case MethodRemoteDirect:
		return "Gemini AI"
	default:
		return string(m)
	}
}

const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

func IsSentimentLabel(label string) bool {
	switch label {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}

// LabelFromScore derives a sentiment label from the sign of a score.
func LabelFromScore(score float64) string {
	switch {
	case score > 0:
		return SentimentPositive
	case score < 0:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

const (
	PROVIDER_GEMINI = "gemini"
	PROVIDER_OPENAI = "openai"
)

// LOCAL_FALLBACK_ERROR marks a local result produced after a remote tier failed.
const LOCAL_FALLBACK_ERROR = "API Failed, used Local Fallback"

// SERVER_KEY_MISSING_ERROR marks a local result the server produced because it has no AI key.
const SERVER_KEY_MISSING_ERROR = "Server AI key not configured, used Local Fallback"

type AnalysisResult struct {
	RawScore         float64   `json:"raw_score"`
	ComparativeScore float64   `json:"comparative_score"`
	NormalizedScore  float64   `json:"normalized_score"`
	Sentiment        string    `json:"sentiment"`
	Tokens           []string  `json:"tokens"`
	PositiveTokens   []string  `json:"positive_tokens"`
	NegativeTokens   []string  `json:"negative_tokens"`
	Categories       []string  `json:"categories"`
	Emotions         []string  `json:"emotions"`
	Keywords         []string  `json:"keywords"`
	Method           Method    `json:"method"`
	Provider         string    `json:"provider,omitempty"`
	Error            string    `json:"error,omitempty"`
	AnalyzedAt       time.Time `json:"analyzed_at"`
}

// Degraded reports whether a local fallback produced the result in place of a remote tier.
func (r AnalysisResult) Degraded() bool {
	return r.Error != ""
}

// Provenance is Method.Label, naming the model provider for direct remote results.
func (r AnalysisResult) Provenance() string {
	if r.Method == MethodRemoteDirect && r.Provider == PROVIDER_OPENAI {
		return "OpenAI"
	}
	return r.Method.Label()
}

// Confidence buckets how extreme the normalized score is.
type Confidence struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

func ConfidenceFor(score float64) Confidence {
	abs := score
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs > 0.6:
		return Confidence{Value: 98, Label: "High"}
	case abs > 0.3:
		return Confidence{Value: 85, Label: "Medium"}
	default:
		return Confidence{Value: 65, Label: "Low (Ambiguous)"}
	}
}

// AnalyzeRequest is the body accepted by the central analysis service.
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// ServicePayload is what the central service and the remote model return.
// Pointers distinguish missing fields from zero values.
type ServicePayload struct {
	Sentiment  *string  `json:"sentiment"`
	Score      *float64 `json:"score"`
	Emotions   []string `json:"emotions"`
	Categories []string `json:"categories"`
	Keywords   []string `json:"keywords"`
	Method     string   `json:"method,omitempty"`
	Error      string   `json:"error,omitempty"`
	Timestamp  string   `json:"timestamp,omitempty"`
}

// PayloadFromResult is the service's wire answer for a computed result.
func PayloadFromResult(r AnalysisResult) ServicePayload {
	sentiment := r.Sentiment
	score := r.NormalizedScore
	return ServicePayload{
		Sentiment:  &sentiment,
		Score:      &score,
		Emotions:   r.Emotions,
		Categories: r.Categories,
		Keywords:   r.Keywords,
		Method:     r.Provenance(),
		Error:      r.Error,
		Timestamp:  r.AnalyzedAt.Format(time.RFC3339),
	}
}
