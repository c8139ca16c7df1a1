package sentiment

import (
	"log/slog"
	"sync"

	"github.com/jonreiter/govader"
)

var (
	baseLexicon     map[string]float64
	baseLexiconOnce sync.Once
)

// BaseLexicon returns a private copy of the VADER lexicon shipped with govader.
// It is loaded once and never mutated afterwards.
func BaseLexicon() map[string]float64 {
	baseLexiconOnce.Do(func() {
		analyzer := govader.NewSentimentIntensityAnalyzer()
		baseLexicon = make(map[string]float64, len(analyzer.Lexicon))
		for word, valence := range analyzer.Lexicon {
			baseLexicon[word] = valence
		}
		slog.Debug("[Sentiment] VADER base lexicon loaded",
			slog.Int("entries", len(baseLexicon)))
	})
	return baseLexicon
}
