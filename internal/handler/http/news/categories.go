package news

import (
	"net/http"

	"news-insight/internal/domain/entity"
	"news-insight/internal/handler/http/respond"
)

// CategoriesHandler returns the fixed category list.
// @Summary      List news categories
// @Description  Returns the seven supported categories in a fixed order.
// @Tags         news
// @Produce      json
// @Success      200 {object} CategoriesDTO
// @Router       /api/categories [get]
func CategoriesHandler(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, CategoriesDTO{Categories: entity.Categories()})
}
