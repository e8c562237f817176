// Package news implements the "list enriched news" use case: fetch top headlines,
// then summarize and classify every article that has content.
package news

import (
	"context"

	"news-insight/internal/domain/entity"
)

// Fixed request parameters sent to the news source.
const (
	Language = "en"
	PageSize = 5
)

// HeadlinesQuery is the set of filters passed through to the news source.
type HeadlinesQuery struct {
	Query    string
	Category string
	Language string
	PageSize int
}

// Source returns a bounded list of top headlines.
type Source interface {
	TopHeadlines(ctx context.Context, q HeadlinesQuery) ([]entity.Article, error)
}

// Summarizer produces a bounded-length abstractive summary of text.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Classification is the raw output of a sentiment classifier.
type Classification struct {
	Label string
	Score float64
}

// Classifier labels the polarity of text.
type Classifier interface {
	Classify(ctx context.Context, text string) (Classification, error)
}
