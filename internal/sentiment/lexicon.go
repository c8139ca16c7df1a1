package sentiment

import "sync"

// DOMAIN_VOCABULARY overrides the base lexicon for food-delivery reviews.
var DOMAIN_VOCABULARY = map[string]float64{
	"tasty": 3, "delicious": 4, "yummy": 4, "stale": -4, "cold": -3, "late": -3, "fast": 3,
	"spicy": 0, "bland": -3, "raw": -4, "premium": 3, "quantity": 1, "portion": 0,
	"packaging": 0, "hygiene": 0, "hair": -5, "bug": -5, "love": 4, "hate": -4, "best": 4, "worst": -4,
	"bad": -3, "terrible": -4, "horrible": -4, "awful": -4, "good": 3, "great": 4, "excellent": 4, "average": 0, "poor": -3,
	"salty": -3, "bitter": -2, "sour": -1, "oily": -2, "greasy": -2, "dry": -2, "hard": -2, "tough": -2,
	"warm": 2, "fresh": 3, "hot": 2, "crispy": 3, "soft": 1, "tender": 3,
	"burnt": -4, "undercooked": -4, "overcooked": -3,
}

// Lexicon is a read-only word -> weight table. Safe for concurrent use.
type Lexicon struct {
	weights map[string]float64
}

// NewLexicon merges base with DOMAIN_VOCABULARY; domain weights win on conflict.
// A nil base yields a lexicon of the domain vocabulary alone.
func NewLexicon(base map[string]float64) *Lexicon {
	weights := make(map[string]float64, len(base)+len(DOMAIN_VOCABULARY))
	for word, weight := range base {
		weights[word] = weight
	}
	for word, weight := range DOMAIN_VOCABULARY {
		weights[word] = weight
	}
	return &Lexicon{weights: weights}
}

var (
	defaultLexicon     *Lexicon
	defaultLexiconOnce sync.Once
)

// DefaultLexicon is the VADER lexicon overridden by the domain vocabulary.
func DefaultLexicon() *Lexicon {
	defaultLexiconOnce.Do(func() {
		defaultLexicon = NewLexicon(BaseLexicon())
	})
	return defaultLexicon
}

// Weight reports the weight of an already lower-cased token.
func (l *Lexicon) Weight(token string) (float64, bool) {
	weight, ok := l.weights[token]
	return weight, ok
}

func (l *Lexicon) Size() int {
	return len(l.weights)
}
