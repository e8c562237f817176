package newsapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-insight/internal/domain/entity"
	"news-insight/internal/resilience/circuitbreaker"
	"news-insight/internal/usecase/news"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{APIKey: "test-key", BaseURL: srv.URL + "/", Timeout: 2 * time.Second})
}

func defaultQuery() news.HeadlinesQuery {
	return news.HeadlinesQuery{Query: "", Category: "technology", Language: news.Language, PageSize: news.PageSize}
}

func TestTopHeadlines_RequestShape(t *testing.T) {
	var gotPath, gotKey string
	var gotQuery map[string][]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-Api-Key")
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"status":"ok","totalResults":0,"articles":[]}`))
	})

	got, err := c.TopHeadlines(context.Background(), defaultQuery())

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, "/v2/top-headlines", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, []string{""}, gotQuery["q"])
	assert.Equal(t, []string{"technology"}, gotQuery["category"])
	assert.Equal(t, []string{"en"}, gotQuery["language"])
	assert.Equal(t, []string{"5"}, gotQuery["pageSize"])
}

func TestTopHeadlines_MapsArticles(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"status": "ok",
			"totalResults": 2,
			"articles": [
				{
					"source": {"id": "bbc-news", "name": "BBC News"},
					"author": "Reporter",
					"title": "First",
					"description": "First description",
					"url": "https://example.com/1",
					"urlToImage": null,
					"publishedAt": "2025-03-01T08:00:00Z",
					"content": "Body one"
				},
				{
					"source": {"id": null, "name": "Wire"},
					"title": "Second",
					"description": null,
					"url": "https://example.com/2",
					"publishedAt": "2025-03-01T09:00:00Z",
					"content": null
				}
			]
		}`))
	})

	got, err := c.TopHeadlines(context.Background(), defaultQuery())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, entity.Article{
		Title:       "First",
		Description: "First description",
		Content:     "Body one",
		URL:         "https://example.com/1",
		Source:      "BBC News",
		PublishedAt: "2025-03-01T08:00:00Z",
	}, got[0])
	assert.Equal(t, "Second", got[1].Title)
	assert.Empty(t, got[1].Description)
	assert.Empty(t, got[1].Content)
	assert.False(t, got[1].HasContent())
}

func TestTopHeadlines_ErrorStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status":"error","code":"apiKeyInvalid","message":"Your API key is invalid."}`))
	})

	_, err := c.TopHeadlines(context.Background(), defaultQuery())

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "apiKeyInvalid", apiErr.Code)
	assert.Contains(t, err.Error(), "Your API key is invalid.")
}

func TestTopHeadlines_ErrorBodyWithOKStatusCode(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"error","code":"parameterInvalid","message":"bad category"}`))
	})

	_, err := c.TopHeadlines(context.Background(), defaultQuery())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "parameterInvalid", apiErr.Code)
}

func TestTopHeadlines_NonJSONErrorUsesStatusText(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	})

	_, err := c.TopHeadlines(context.Background(), defaultQuery())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusText(http.StatusBadGateway), apiErr.Message)
}

func TestTopHeadlines_RecordsNullTitleAndURL(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok","articles":[
			{"source":{"name":"A"},"title":"","url":"https://example.com/ok","content":"x"},
			{"source":{"name":"B"},"title":null,"url":null,"content":null},
			{"source":{"name":"C"},"url":"https://example.com/3","content":"z"}
		]}`))
	})

	got, err := c.TopHeadlines(context.Background(), defaultQuery())

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Empty(t, got[0].Missing)
	assert.NoError(t, got[0].Validate())
	assert.Equal(t, []string{"title", "url"}, got[1].Missing)
	assert.Equal(t, []string{"title"}, got[2].Missing)
	assert.ErrorIs(t, got[2].Validate(), entity.ErrMalformedArticle)
}

func TestTopHeadlines_InvalidJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := c.TopHeadlines(context.Background(), defaultQuery())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode newsapi response")
}

func TestTopHeadlines_ContextCanceled(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok","articles":[]}`))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.TopHeadlines(ctx, defaultQuery())

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestTopHeadlines_OpenCircuitFailsFast(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	})

	// NewsAPIConfig trips after five requests with at least 60% failures.
	for i := 0; i < 5; i++ {
		_, err := c.TopHeadlines(context.Background(), defaultQuery())
		require.Error(t, err)
	}
	require.Equal(t, 5, calls)

	_, err := c.TopHeadlines(context.Background(), defaultQuery())

	require.ErrorIs(t, err, circuitbreaker.ErrOpen)
	assert.Equal(t, 5, calls)
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(Config{APIKey: "k"})

	assert.Equal(t, DefaultBaseURL, c.baseURL)
	assert.Equal(t, 10*time.Second, c.httpClient.Timeout)
}
