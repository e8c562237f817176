package news

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"news-insight/internal/domain/entity"
	"news-insight/internal/handler/http/respond"
	"news-insight/internal/observability/logging"
)

// Lister produces enriched articles. *news.Service implements it.
type Lister interface {
	ListEnriched(ctx context.Context, query, category string) ([]entity.ArticleResponse, error)
}

// ListHandler serves GET /api/news. A nil Logger uses slog.Default.
type ListHandler struct {
	Svc    Lister
	Logger *slog.Logger
}

// ServeHTTP lists enriched top headlines.
// @Summary      List summarized headlines with sentiment
// @Description  Fetches up to 5 English top headlines, skips articles without content and adds a summary and a positive/negative sentiment to the rest. Any failure fails the whole request.
// @Tags         news
// @Produce      json
// @Param        query     query  string  false  "Free-text search"
// @Param        category  query  string  false  "News category"     default(general)
// @Success      200 {array}  DTO
// @Failure      500 {object} respond.ErrorBody "detail carries the error message"
// @Router       /api/news [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	logger := logging.WithRequestID(ctx, h.logger())

	q := r.URL.Query()
	query := q.Get("query")
	// An explicit empty category is passed on as is.
	category := entity.DefaultCategory
	if q.Has("category") {
		category = q.Get("category")
	}

	results, err := h.Svc.ListEnriched(ctx, query, category)
	if err != nil {
		logger.Error("failed to list news",
			slog.String("query", query),
			slog.String("category", category),
			slog.String("error", respond.SanitizeError(err)))
		respond.Detail(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]DTO, 0, len(results))
	for _, res := range results {
		out = append(out, toDTO(res))
	}

	logger.Info("news listed",
		slog.String("query", query),
		slog.String("category", category),
		slog.Int("count", len(out)),
		slog.Duration("duration", time.Since(start)))

	respond.JSON(w, http.StatusOK, out)
}

func (h ListHandler) logger() *slog.Logger {
	if h.Logger == nil {
		return slog.Default()
	}
	return h.Logger
}
