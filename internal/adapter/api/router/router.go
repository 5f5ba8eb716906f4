package router

import (
	"github.com/labstack/echo/v4"

	"gameshelf/internal/adapter/api/handler"
	"gameshelf/internal/adapter/api/middleware"
)

type Handlers struct {
	Game    *handler.GameHandler
	Genre   *handler.GenreHandler
	Search  *handler.SearchHandler
	Auth    *handler.AuthHandler
	Profile *handler.ProfileHandler
}

func Setup(e *echo.Echo, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	SetupHealthRouter(e)
	SetupAuthRouter(e, handlers.Auth)
	SetupGameRouter(e, handlers.Game, authMiddleware)
	SetupGenreRouter(e, handlers.Genre)
	SetupSearchRouter(e, handlers.Search)
	SetupProfileRouter(e, handlers.Profile, authMiddleware)
}
