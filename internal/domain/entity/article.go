// Package entity defines the core domain entities of the news enrichment service.
// It contains the Article snapshot fetched from the news source, the enriched
// ArticleResponse served to clients, the Sentiment label and the fixed Category list.
package entity

// Article is an immutable snapshot of a news item returned by the news source.
// It lives only for the duration of a single request.
type Article struct {
	Title       string
	Description string
	Content     string
	URL         string
	Source      string
	PublishedAt string

	// Missing names the required fields (title, url) the source sent as null
	// or left out. An empty string is present, not missing.
	Missing []string
}

// HasContent reports whether the article carries a body to enrich.
// Any non-empty string counts, whitespace included.
func (a Article) HasContent() bool {
	return a.Content != ""
}

// Validate checks the fields every article must carry.
func (a Article) Validate() error {
	if len(a.Missing) > 0 {
		return &ValidationError{Field: a.Missing[0], Message: "is required"}
	}
	return nil
}

// ArticleResponse wraps an Article with its derived summary and sentiment.
type ArticleResponse struct {
	Article   Article
	Summary   string
	Sentiment Sentiment
}
