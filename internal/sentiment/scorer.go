package sentiment

import (
	"math"

	"github.com/spacesedan/reviewflow/internal/models"
)

const (
	SHORT_TEXT_TOKENS    = 5
	SHORT_TEXT_MAGNITUDE = 0.8
	SENSITIVITY_FLOOR    = 0.4
)

// Score is the lexicon scorer's output for one text.
type Score struct {
	RawScore         float64
	ComparativeScore float64
	NormalizedScore  float64
	Tokens           []string
	PositiveTokens   []string
	NegativeTokens   []string
}

func (s Score) Label() string {
	return models.LabelFromScore(s.RawScore)
}

// Score sums the weights of every token found in the lexicon.
func (l *Lexicon) Score(text string) Score {
	tokens := Tokenize(text)
	score := Score{
		Tokens:         tokens,
		PositiveTokens: make([]string, 0),
		NegativeTokens: make([]string, 0),
	}

	for _, token := range tokens {
		weight, ok := l.Weight(token)
		if !ok {
			continue
		}
		score.RawScore += weight
		switch {
		case weight > 0:
			score.PositiveTokens = append(score.PositiveTokens, token)
		case weight < 0:
			score.NegativeTokens = append(score.NegativeTokens, token)
		}
	}

	score.ComparativeScore = score.RawScore / float64(max(1, len(tokens)))
	score.NormalizedScore = Normalize(score.RawScore, score.ComparativeScore, len(tokens),
		len(score.PositiveTokens) > 0, len(score.NegativeTokens) > 0)

	return score
}

// Normalize applies, in order: 2-decimal rounding of the comparative score,
// the short-text override, clamping to [-1, 1], and the sensitivity floor.
func Normalize(raw, comparative float64, tokenCount int, hasPositive, hasNegative bool) float64 {
	normalized := round2(comparative)

	if tokenCount < SHORT_TEXT_TOKENS && raw != 0 {
		if raw > 0 {
			normalized = SHORT_TEXT_MAGNITUDE
		} else {
			normalized = -SHORT_TEXT_MAGNITUDE
		}
	}

	normalized = Clamp(normalized)

	if hasNegative && normalized == 0 {
		normalized = -SENSITIVITY_FLOOR
	}
	if hasPositive && normalized == 0 {
		normalized = SENSITIVITY_FLOOR
	}

	return normalized
}

// Clamp bounds a score to [-1, 1]. NaN collapses to 0.
func Clamp(score float64) float64 {
	if math.IsNaN(score) {
		return 0
	}
	return math.Max(-1, math.Min(1, score))
}

func round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		// drop negative zero
		return 0
	}
	return r
}
