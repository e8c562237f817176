package sentiment

import (
	"context"
	"strings"
	"unicode"

	"news-insight/internal/usecase/news"
)

var (
	positiveWords = wordSet(
		"good", "great", "excellent", "positive", "success", "successful", "win", "wins",
		"gain", "gains", "growth", "improve", "improved", "improves", "record", "strong",
		"rise", "rises", "rally", "boost", "breakthrough", "benefit", "hope", "celebrate",
		"happy", "best", "progress", "recover", "recovery", "profit", "safe",
	)
	negativeWords = wordSet(
		"bad", "poor", "negative", "fail", "fails", "failure", "loss", "losses", "lose",
		"decline", "drop", "drops", "fall", "falls", "crash", "crisis", "risk", "weak",
		"war", "attack", "death", "dead", "killed", "fear", "concern", "warning", "worst",
		"cut", "cuts", "layoffs", "lawsuit", "scandal", "fraud", "slump",
	)
)

func wordSet(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// Lexicon is an offline classifier that counts words from two fixed lists.
// Ties, including text with no listed words, are NEGATIVE.
type Lexicon struct{}

var _ news.Classifier = Lexicon{}

// NewLexicon returns the lexicon classifier.
func NewLexicon() Lexicon { return Lexicon{} }

// Classify counts positive and negative words in input. Ties and texts
// without hits are NEGATIVE.
func (Lexicon) Classify(_ context.Context, input string) (news.Classification, error) {
	var pos, neg int
	for _, w := range strings.FieldsFunc(strings.ToLower(input), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	}) {
		if _, ok := positiveWords[w]; ok {
			pos++
		}
		if _, ok := negativeWords[w]; ok {
			neg++
		}
	}

	total := pos + neg
	if total == 0 {
		return news.Classification{Label: "NEGATIVE", Score: 0.5}, nil
	}
	if pos > neg {
		return news.Classification{Label: "POSITIVE", Score: float64(pos) / float64(total)}, nil
	}
	return news.Classification{Label: "NEGATIVE", Score: float64(neg) / float64(total)}, nil
}
