package router

import (
	"github.com/labstack/echo/v4"

	"gameshelf/internal/adapter/api/handler"
)

func SetupGenreRouter(e *echo.Echo, genreHandler *handler.GenreHandler) {
	genres := e.Group("/v1/genres")
	genres.GET("", genreHandler.ListGenres)
	genres.GET("/popular", genreHandler.PopularGenres)
	genres.GET("/:name/games", genreHandler.GamesForGenre)
}
