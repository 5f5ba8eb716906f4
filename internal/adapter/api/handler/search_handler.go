package handler

import (
	"github.com/labstack/echo/v4"

	"gameshelf/internal/usecase"
	"gameshelf/pkg/response"
)

type SearchHandler struct {
	searchUseCase *usecase.SearchUseCase
}

func NewSearchHandler(searchUseCase *usecase.SearchUseCase) *SearchHandler {
	return &SearchHandler{searchUseCase: searchUseCase}
}

// Search runs the free-text search; the query string carries the term
// and the optional publisher, price_max and genres filters.
func (h *SearchHandler) Search(c echo.Context) error {
	games, err := h.searchUseCase.Search(c.Request().Context(), c.QueryParams())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, games)
}

func (h *SearchHandler) ListPublishers(c echo.Context) error {
	publishers, err := h.searchUseCase.GetPublishers(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, publishers)
}
