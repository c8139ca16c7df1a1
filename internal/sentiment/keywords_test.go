package sentiment

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

type fakeTagger struct {
	words []TaggedWord
	err   error
	calls int
}

func (f *fakeTagger) Tag(string) ([]TaggedWord, error) {
	f.calls++
	return f.words, f.err
}

func TestKeywordExtractorNounsThenAdjectives(t *testing.T) {
	tagger := &fakeTagger{words: []TaggedWord{
		{"The", "DT"}, {"spicy", "JJ"}, {"biryani", "NN"}, {"was", "VBD"},
		{"great", "JJ"}, {"but", "CC"}, {"the", "DT"}, {"rider", "NN"},
		{"was", "VBD"}, {"rude", "JJ"}, {"biryani", "NN"}, {"ok", "JJ"}, {"Zomato", "NNP"},
	}}

	got := NewKeywordExtractor(tagger).Extract("ignored by the fake")

	assert.Equal(t, []string{"biryani", "rider", "Zomato", "spicy", "great", "rude"}, got)
}

func TestKeywordExtractorCapsAtEight(t *testing.T) {
	var words []TaggedWord
	for _, w := range []string{"naan", "dal", "paneer", "tikka", "raita", "rice", "curry", "kulfi", "lassi", "chai"} {
		words = append(words, TaggedWord{w, "NN"})
	}

	got := NewKeywordExtractor(&fakeTagger{words: words}).Extract("menu")

	assert.Equal(t, []string{"naan", "dal", "paneer", "tikka", "raita", "rice", "curry", "kulfi"}, got)
}

func TestKeywordExtractorDegradesOnTaggerError(t *testing.T) {
	tagger := &fakeTagger{err: errors.New("model not loaded")}
	assert.Empty(t, NewKeywordExtractor(tagger).Extract("some text"))
}

func TestKeywordExtractorSkipsBlankText(t *testing.T) {
	tagger := &fakeTagger{}
	assert.Empty(t, NewKeywordExtractor(tagger).Extract("   "))
	assert.Zero(t, tagger.calls)
}

func TestProseTaggerKeywordsInvariants(t *testing.T) {
	extractor := NewKeywordExtractor(ProseTagger{})

	got := extractor.Extract("The paneer tikka was delicious, the naan was soft and the delivery rider was polite and quick.")

	assert.LessOrEqual(t, len(got), MAX_KEYWORDS)
	assert.Equal(t, Dedupe(got), got)
	for _, k := range got {
		assert.GreaterOrEqual(t, utf8.RuneCountInString(k), MIN_KEYWORD_LENGTH, k)
	}
}
