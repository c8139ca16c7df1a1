package sentiment

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/jdkato/prose/v2"
)

const (
	MAX_KEYWORDS       = 8
	MIN_KEYWORD_LENGTH = 3
)

// TaggedWord is a token with its Penn Treebank part-of-speech tag.
type TaggedWord struct {
	Text string
	Tag  string
}

type Tagger interface {
	Tag(text string) ([]TaggedWord, error)
}

// ProseTagger tags text with prose's averaged perceptron model.
type ProseTagger struct{}

func (ProseTagger) Tag(text string) ([]TaggedWord, error) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, err
	}

	tokens := doc.Tokens()
	tagged := make([]TaggedWord, 0, len(tokens))
	for _, tok := range tokens {
		tagged = append(tagged, TaggedWord{Text: tok.Text, Tag: tok.Tag})
	}
	return tagged, nil
}

type KeywordExtractor struct {
	tagger Tagger
}

func NewKeywordExtractor(tagger Tagger) *KeywordExtractor {
	return &KeywordExtractor{tagger: tagger}
}

// Extract returns up to MAX_KEYWORDS unique nouns followed by adjectives,
// skipping words shorter than MIN_KEYWORD_LENGTH.
func (k *KeywordExtractor) Extract(text string) []string {
	keywords := make([]string, 0, MAX_KEYWORDS)
	if strings.TrimSpace(text) == "" {
		return keywords
	}

	tagged, err := k.tagger.Tag(text)
	if err != nil {
		slog.Warn("[KeywordExtractor] Tagging failed, returning no keywords",
			slog.String("error", err.Error()))
		return keywords
	}

	var nouns, adjectives []string
	for _, word := range tagged {
		switch {
		case strings.HasPrefix(word.Tag, "NN"):
			nouns = append(nouns, word.Text)
		case strings.HasPrefix(word.Tag, "JJ"):
			adjectives = append(adjectives, word.Text)
		}
	}

	for _, candidate := range Dedupe(append(nouns, adjectives...)) {
		if utf8.RuneCountInString(candidate) < MIN_KEYWORD_LENGTH {
			continue
		}
		keywords = append(keywords, candidate)
		if len(keywords) == MAX_KEYWORDS {
			break
		}
	}

	return keywords
}
