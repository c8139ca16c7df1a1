package sentiment

import (
	"sync"
	"time"

	"github.com/spacesedan/reviewflow/internal/models"
)

// LocalAnalyzer is the no-network tier: lexicon score, categories, emotions
// and keywords computed from fixed tables.
type LocalAnalyzer struct {
	lexicon  *Lexicon
	keywords *KeywordExtractor
	now      func() time.Time
}

func NewLocalAnalyzer(lexicon *Lexicon, keywords *KeywordExtractor) *LocalAnalyzer {
	return &LocalAnalyzer{
		lexicon:  lexicon,
		keywords: keywords,
		now:      time.Now,
	}
}

var (
	localAnalyzer     *LocalAnalyzer
	localAnalyzerOnce sync.Once
)

// GetLocalAnalyzer returns the process-wide analyzer backed by the VADER
// lexicon and the prose tagger.
func GetLocalAnalyzer() *LocalAnalyzer {
	localAnalyzerOnce.Do(func() {
		localAnalyzer = NewLocalAnalyzer(DefaultLexicon(), NewKeywordExtractor(ProseTagger{}))
	})
	return localAnalyzer
}

func (a *LocalAnalyzer) Analyze(text string) models.AnalysisResult {
	score := a.lexicon.Score(text)

	return models.AnalysisResult{
		RawScore:         score.RawScore,
		ComparativeScore: score.ComparativeScore,
		NormalizedScore:  score.NormalizedScore,
		Sentiment:        score.Label(),
		Tokens:           score.Tokens,
		PositiveTokens:   score.PositiveTokens,
		NegativeTokens:   score.NegativeTokens,
		Categories:       MatchCategories(score.Tokens),
		Emotions:         MatchEmotions(score.Tokens, score.RawScore),
		Keywords:         a.keywords.Extract(text),
		Method:           models.MethodLocal,
		AnalyzedAt:       a.now().UTC(),
	}
}
