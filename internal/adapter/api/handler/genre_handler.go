package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"gameshelf/internal/usecase"
	"gameshelf/pkg/response"
)

type GenreHandler struct {
	genreUseCase     *usecase.GenreUseCase
	utilitiesUseCase *usecase.UtilitiesUseCase
}

func NewGenreHandler(genreUseCase *usecase.GenreUseCase, utilitiesUseCase *usecase.UtilitiesUseCase) *GenreHandler {
	return &GenreHandler{
		genreUseCase:     genreUseCase,
		utilitiesUseCase: utilitiesUseCase,
	}
}

func (h *GenreHandler) ListGenres(c echo.Context) error {
	genres, err := h.genreUseCase.GetGenres(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, genres)
}

// PopularGenres returns genres ranked by how many catalog games carry
// them, for the featured-genres sidebar.
func (h *GenreHandler) PopularGenres(c echo.Context) error {
	ranking, err := h.utilitiesUseCase.GetGenresSortedByPopularity(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, ranking)
}

// GamesForGenre returns one page of the games carrying the named genre.
func (h *GenreHandler) GamesForGenre(c echo.Context) error {
	ctx := c.Request().Context()
	name := c.Param("name")
	if _, err := h.genreUseCase.GetGenre(ctx, name); err != nil {
		return response.Error(c, err)
	}

	pageSize, _ := strconv.Atoi(c.QueryParam("limit"))
	games, pagination, err := h.genreUseCase.GetPaginatedGenreGames(ctx, name, c.QueryParam("page"), pageSize)
	if err != nil {
		return response.Error(c, err)
	}
	total, err := h.genreUseCase.GetNumberOfGamesForGenre(ctx, name)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, games, total, pagination.Page, pagination.PageSize, pagination.NumPages)
}
