// Package news serves the enriched headline endpoints.
package news

import "news-insight/internal/domain/entity"

// ArticleDTO is the article part of a response item.
type ArticleDTO struct {
	Title string `json:"title" example:"Markets rally as inflation cools"`
	// Description is null when the source omitted it.
	Description *string `json:"description" example:"Stocks rose on Tuesday..."`
	Content     *string `json:"content" example:"Stocks rose on Tuesday after..."`
	URL         string  `json:"url" example:"https://example.com/markets"`
	Source      string  `json:"source" example:"Reuters"`
	PublishedAt string  `json:"published_at" example:"2025-03-01T08:00:00Z"`
}

// DTO is one element of the /api/news response.
type DTO struct {
	Article   ArticleDTO `json:"article"`
	Summary   string     `json:"summary" example:"Stocks rose after inflation data came in below forecasts."`
	Sentiment string     `json:"sentiment" example:"positive" enums:"positive,negative"`
}

// CategoriesDTO is the /api/categories response.
type CategoriesDTO struct {
	Categories []string `json:"categories" example:"general,business,technology,science,health,entertainment,sports"`
}

func toDTO(r entity.ArticleResponse) DTO {
	return DTO{
		Article: ArticleDTO{
			Title:       r.Article.Title,
			Description: nullable(r.Article.Description),
			Content:     nullable(r.Article.Content),
			URL:         r.Article.URL,
			Source:      r.Article.Source,
			PublishedAt: r.Article.PublishedAt,
		},
		Summary:   r.Summary,
		Sentiment: r.Sentiment.String(),
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
