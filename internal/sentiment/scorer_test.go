package sentiment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/reviewflow/internal/models"
)

func TestTokenize(t *testing.T) {
	tokens := Tokenize("Food arrived COLD!! And... the rider?\tNever\nagain")
	assert.Equal(t, []string{"food", "arrived", "cold", "and", "the", "rider", "never", "again"}, tokens)

	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize(" ?!. ,, "))
	assert.Equal(t, []string{"i've", "had-better"}, Tokenize("I've had-better."))
}

func TestNewLexiconDomainOverridesBase(t *testing.T) {
	lexicon := NewLexicon(map[string]float64{"good": 1.9, "meh": -0.5})

	weight, ok := lexicon.Weight("good")
	require.True(t, ok)
	assert.Equal(t, 3.0, weight)

	weight, ok = lexicon.Weight("meh")
	require.True(t, ok)
	assert.Equal(t, -0.5, weight)

	_, ok = lexicon.Weight("biryani")
	assert.False(t, ok)
}

func TestDefaultLexiconKeepsDomainWeights(t *testing.T) {
	lexicon := DefaultLexicon()
	assert.Greater(t, lexicon.Size(), len(DOMAIN_VOCABULARY))

	for word, want := range DOMAIN_VOCABULARY {
		got, ok := lexicon.Weight(word)
		require.True(t, ok, word)
		assert.Equal(t, want, got, word)
	}
}

func TestScore(t *testing.T) {
	lexicon := NewLexicon(nil)

	tests := []struct {
		name       string
		text       string
		raw        float64
		normalized float64
		label      string
		positive   []string
		negative   []string
	}{
		{
			name:       "empty text",
			text:       "",
			raw:        0,
			normalized: 0,
			label:      models.SentimentNeutral,
			positive:   []string{},
			negative:   []string{},
		},
		{
			name:       "short positive text is amplified",
			text:       "Delicious!",
			raw:        4,
			normalized: 0.8,
			label:      models.SentimentPositive,
			positive:   []string{"delicious"},
			negative:   []string{},
		},
		{
			name:       "short negative text is amplified",
			text:       "Stale bread",
			raw:        -4,
			normalized: -0.8,
			label:      models.SentimentNegative,
			positive:   []string{},
			negative:   []string{"stale"},
		},
		{
			name:       "long text uses the comparative score",
			text:       "the biryani was tasty and the naan was fresh and warm",
			raw:        8,
			normalized: 0.73,
			label:      models.SentimentPositive,
			positive:   []string{"tasty", "fresh", "warm"},
			negative:   []string{},
		},
		{
			name:       "comparative score is clamped",
			text:       "great great great great great",
			raw:        20,
			normalized: 1,
			label:      models.SentimentPositive,
			positive:   []string{"great", "great", "great", "great", "great"},
			negative:   []string{},
		},
		{
			name:       "balanced text gets the negative floor first",
			text:       "The food was good but the delivery was late",
			raw:        0,
			normalized: -0.4,
			label:      models.SentimentNeutral,
			positive:   []string{"good"},
			negative:   []string{"late"},
		},
		{
			name:       "zero weight words do not count as matches",
			text:       "spicy portion with average packaging and hygiene",
			raw:        0,
			normalized: 0,
			label:      models.SentimentNeutral,
			positive:   []string{},
			negative:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := lexicon.Score(tt.text)
			assert.Equal(t, tt.raw, score.RawScore)
			assert.Equal(t, tt.normalized, score.NormalizedScore)
			assert.Equal(t, tt.label, score.Label())
			assert.Equal(t, tt.positive, score.PositiveTokens)
			assert.Equal(t, tt.negative, score.NegativeTokens)
		})
	}
}

func TestScoreComparative(t *testing.T) {
	score := NewLexicon(nil).Score("cold cold and the rest was fine")
	assert.Equal(t, -6.0, score.RawScore)
	assert.InDelta(t, -6.0/7.0, score.ComparativeScore, 1e-9)
	assert.Equal(t, -0.86, score.NormalizedScore)
}

func TestScoreSensitivityFloor(t *testing.T) {
	text := "soft" + strings.Repeat(" the", 250)

	score := NewLexicon(nil).Score(text)

	require.Len(t, score.Tokens, 251)
	assert.Equal(t, 1.0, score.RawScore)
	assert.Equal(t, SENSITIVITY_FLOOR, score.NormalizedScore)
	assert.Equal(t, models.SentimentPositive, score.Label())
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name        string
		raw         float64
		comparative float64
		tokens      int
		pos, neg    bool
		want        float64
	}{
		{"short text beats comparative", 2, 0.5, 4, true, false, 0.8},
		{"short text negative", -1, -0.25, 4, false, true, -0.8},
		{"five tokens is not short", 2, 0.4, 5, true, false, 0.4},
		{"clamp high", 12, 2.4, 5, true, false, 1},
		{"clamp low", -12, -2.4, 5, false, true, -1},
		{"zero raw with both kinds floors negative", 0, 0, 8, true, true, -0.4},
		{"no matches stays zero", 0, 0, 8, false, false, 0},
		{"rounded to zero floors positive", 1, 0.004, 250, true, false, 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw, tt.comparative, tt.tokens, tt.pos, tt.neg))
		})
	}
}

func TestScoreWithVADERBaseLabelFollowsRawScore(t *testing.T) {
	lexicon := DefaultLexicon()
	texts := []string{
		"Found a hair in my food! This is unacceptable hygiene.",
		"Absolutely loved the biryani! The delivery was super fast and the packaging was premium.",
		"It was okay. Not the best butter chicken I've had, but edible.",
		"Cold food delivered after a 90 minute wait. Totally wasted my money.",
		"ok",
		"!!!",
	}

	for _, text := range texts {
		score := lexicon.Score(text)
		assert.Equal(t, models.LabelFromScore(score.RawScore), score.Label(), text)
		assert.GreaterOrEqual(t, score.NormalizedScore, -1.0, text)
		assert.LessOrEqual(t, score.NormalizedScore, 1.0, text)
	}
}
