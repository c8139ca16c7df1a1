package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProvenance(t *testing.T) {
	tests := []struct {
		name   string
		result AnalysisResult
		want   string
	}{
		{"local", AnalysisResult{Method: MethodLocal}, "Local Logic"},
		{"service", AnalysisResult{Method: MethodRemoteService}, "Server AI"},
		{"direct gemini", AnalysisResult{Method: MethodRemoteDirect, Provider: PROVIDER_GEMINI}, "Gemini AI"},
		{"direct unknown provider", AnalysisResult{Method: MethodRemoteDirect}, "Gemini AI"},
		{"direct openai", AnalysisResult{Method: MethodRemoteDirect, Provider: PROVIDER_OPENAI}, "OpenAI"},
		{"provider ignored off direct tier", AnalysisResult{Method: MethodLocal, Provider: PROVIDER_OPENAI}, "Local Logic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.Provenance())
		})
	}
}

func TestPayloadFromResultUsesProvenance(t *testing.T) {
	payload := PayloadFromResult(AnalysisResult{
		Sentiment:       SentimentPositive,
		NormalizedScore: 0.6,
		Method:          MethodRemoteDirect,
		Provider:        PROVIDER_OPENAI,
		AnalyzedAt:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.Equal(t, "OpenAI", payload.Method)
	assert.Equal(t, SentimentPositive, *payload.Sentiment)
	assert.Equal(t, 0.6, *payload.Score)
	assert.Equal(t, "2024-01-01T00:00:00Z", payload.Timestamp)
}
