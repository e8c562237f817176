// Package newsapi implements the news source on top of the NewsAPI.org REST API.
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"news-insight/internal/domain/entity"
	"news-insight/internal/resilience/circuitbreaker"
	"news-insight/internal/usecase/news"
)

// DefaultBaseURL is the public NewsAPI endpoint.
const DefaultBaseURL = "https://newsapi.org"

const maxResponseBytes = 8 << 20

// Config holds the NewsAPI connection settings.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Client fetches top headlines from NewsAPI.
type Client struct {
	apiKey         string
	baseURL        string
	httpClient     *http.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
}

var _ news.Source = (*Client)(nil)

// APIError carries the error code and message NewsAPI reports for a failed call.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("newsapi error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("newsapi error (status %d, code %s): %s", e.StatusCode, e.Code, e.Message)
}

type headlinesResponse struct {
	Status       string       `json:"status"`
	Code         string       `json:"code"`
	Message      string       `json:"message"`
	TotalResults int          `json:"totalResults"`
	Articles     []apiArticle `json:"articles"`
}

type apiArticle struct {
	Source      apiSource `json:"source"`
	Author      *string   `json:"author"`
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	URL         *string   `json:"url"`
	URLToImage  *string   `json:"urlToImage"`
	PublishedAt string    `json:"publishedAt"`
	Content     *string   `json:"content"`
}

type apiSource struct {
	ID   *string `json:"id"`
	Name string  `json:"name"`
}

// NewClient builds a NewsAPI client.
func NewClient(cfg Config) *Client {
	base := strings.TrimSuffix(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		apiKey:         cfg.APIKey,
		baseURL:        base,
		httpClient:     &http.Client{Timeout: timeout},
		circuitBreaker: circuitbreaker.New(circuitbreaker.NewsAPIConfig()),
	}
}

// TopHeadlines calls /v2/top-headlines with the query passed through unchanged.
// Articles are returned in the order NewsAPI lists them.
func (c *Client) TopHeadlines(ctx context.Context, q news.HeadlinesQuery) ([]entity.Article, error) {
	return circuitbreaker.Run(c.circuitBreaker, func() ([]entity.Article, error) {
		return c.topHeadlines(ctx, q)
	})
}

func (c *Client) topHeadlines(ctx context.Context, q news.HeadlinesQuery) ([]entity.Article, error) {
	params := url.Values{}
	params.Set("q", q.Query)
	params.Set("category", q.Category)
	params.Set("language", q.Language)
	params.Set("pageSize", strconv.Itoa(q.PageSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v2/top-headlines?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build newsapi request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsapi request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read newsapi response: %w", err)
	}

	var decoded headlinesResponse
	decodeErr := json.Unmarshal(body, &decoded)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || decoded.Status == "error" {
		apiErr := &APIError{StatusCode: resp.StatusCode, Code: decoded.Code, Message: decoded.Message}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return nil, apiErr
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode newsapi response: %w", decodeErr)
	}
	if decoded.Status != "ok" {
		return nil, fmt.Errorf("newsapi returned unexpected status %q", decoded.Status)
	}

	slog.DebugContext(ctx, "newsapi top headlines fetched",
		slog.String("category", q.Category),
		slog.Int("total_results", decoded.TotalResults),
		slog.Int("returned", len(decoded.Articles)),
		slog.Duration("duration", time.Since(start)))

	articles := make([]entity.Article, 0, len(decoded.Articles))
	for _, a := range decoded.Articles {
		articles = append(articles, toEntity(a))
	}
	return articles, nil
}

// toEntity maps one NewsAPI article. A null title or url is recorded in
// Missing rather than rejected here: the article may be skipped for lack of
// content before anyone needs those fields.
func toEntity(a apiArticle) entity.Article {
	var missing []string
	if a.Title == nil {
		missing = append(missing, "title")
	}
	if a.URL == nil {
		missing = append(missing, "url")
	}
	return entity.Article{
		Title:       deref(a.Title),
		Description: deref(a.Description),
		Content:     deref(a.Content),
		URL:         deref(a.URL),
		Source:      a.Source.Name,
		PublishedAt: a.PublishedAt,
		Missing:     missing,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Breaker returns the circuit breaker guarding NewsAPI calls.
func (c *Client) Breaker() *circuitbreaker.CircuitBreaker {
	return c.circuitBreaker
}
