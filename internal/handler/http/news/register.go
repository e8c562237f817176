package news

import (
	"log/slog"
	"net/http"
)

// Register mounts the news endpoints on mux.
func Register(mux *http.ServeMux, svc Lister, logger *slog.Logger) {
	mux.Handle("GET /api/news", ListHandler{Svc: svc, Logger: logger})
	mux.HandleFunc("GET /api/categories", CategoriesHandler)
}
