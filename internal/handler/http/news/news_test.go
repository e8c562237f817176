package news

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-insight/internal/domain/entity"
)

type stubLister struct {
	results  []entity.ArticleResponse
	err      error
	query    string
	category string
	calls    int
}

func (s *stubLister) ListEnriched(_ context.Context, query, category string) ([]entity.ArticleResponse, error) {
	s.calls++
	s.query, s.category = query, category
	return s.results, s.err
}

func newMux(svc Lister) *http.ServeMux {
	mux := http.NewServeMux()
	Register(mux, svc, nil)
	return mux
}

func TestListHandler_Success(t *testing.T) {
	svc := &stubLister{results: []entity.ArticleResponse{
		{
			Article: entity.Article{
				Title:       "Rates hold steady",
				Description: "The central bank paused.",
				Content:     "The central bank kept rates unchanged...",
				URL:         "https://example.com/rates",
				Source:      "Reuters",
				PublishedAt: "2025-03-01T08:00:00Z",
			},
			Summary:   "The central bank paused its hiking cycle.",
			Sentiment: entity.SentimentPositive,
		},
		{
			Article: entity.Article{
				Title:   "Storm hits coast",
				Content: "A storm made landfall...",
				URL:     "https://example.com/storm",
				Source:  "AP",
			},
			Summary:   "A storm made landfall overnight.",
			Sentiment: entity.SentimentNegative,
		},
	}}
	rec := httptest.NewRecorder()

	newMux(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/news?query=rates&category=business", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "rates", svc.query)
	assert.Equal(t, "business", svc.category)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)

	first := got[0]
	assert.Equal(t, "The central bank paused its hiking cycle.", first["summary"])
	assert.Equal(t, "positive", first["sentiment"])
	article := first["article"].(map[string]any)
	assert.Equal(t, map[string]any{
		"title":        "Rates hold steady",
		"description":  "The central bank paused.",
		"content":      "The central bank kept rates unchanged...",
		"url":          "https://example.com/rates",
		"source":       "Reuters",
		"published_at": "2025-03-01T08:00:00Z",
	}, article)

	second := got[1]
	assert.Equal(t, "negative", second["sentiment"])
	secondArticle := second["article"].(map[string]any)
	assert.Contains(t, secondArticle, "description")
	assert.Nil(t, secondArticle["description"])
}

func TestListHandler_Defaults(t *testing.T) {
	svc := &stubLister{}
	rec := httptest.NewRecorder()

	newMux(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/news", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", svc.query)
	assert.Equal(t, "general", svc.category)
}

func TestListHandler_ExplicitEmptyCategoryPassedThrough(t *testing.T) {
	svc := &stubLister{}
	rec := httptest.NewRecorder()

	newMux(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/news?query=&category=", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", svc.query)
	assert.Equal(t, "", svc.category)
}

func TestListHandler_EmptyResultIsArray(t *testing.T) {
	rec := httptest.NewRecorder()

	newMux(&stubLister{results: nil}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/news", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListHandler_ErrorReturnsDetail(t *testing.T) {
	svc := &stubLister{err: errors.New("fetch headlines: newsapi error (status 401, code apiKeyInvalid): Your API key is invalid.")}
	rec := httptest.NewRecorder()

	newMux(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/news?category=technology", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t,
		`{"detail":"fetch headlines: newsapi error (status 401, code apiKeyInvalid): Your API key is invalid."}`,
		rec.Body.String())
}

func TestListHandler_ErrorMasksSecrets(t *testing.T) {
	svc := &stubLister{err: errors.New("summarize article 0: claude api error: bad key sk-ant-api03-secretsecret")}
	rec := httptest.NewRecorder()

	newMux(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/news", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secretsecret")
	assert.Contains(t, rec.Body.String(), "sk-ant-****")
}

func TestListHandler_MethodNotAllowed(t *testing.T) {
	svc := &stubLister{}
	rec := httptest.NewRecorder()

	newMux(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/news", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Zero(t, svc.calls)
}

func TestCategoriesHandler(t *testing.T) {
	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()

		newMux(&stubLister{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/categories", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t,
			`{"categories":["general","business","technology","science","health","entertainment","sports"]}`,
			rec.Body.String())
	}
}
