package router

import (
	"github.com/labstack/echo/v4"

	"gameshelf/internal/adapter/api/handler"
	"gameshelf/internal/adapter/api/middleware"
)

func SetupGameRouter(e *echo.Echo, gameHandler *handler.GameHandler, authMiddleware *middleware.AuthMiddleware) {
	games := e.Group("/v1/games")
	games.GET("", gameHandler.ListGames)
	games.GET("/recent", gameHandler.MostRecentGames)
	games.GET("/:id", gameHandler.GetGame)

	authenticated := e.Group("/v1/games", authMiddleware.Authenticate)
	authenticated.POST("/:id/review", gameHandler.CreateReview)
	authenticated.DELETE("/:id/review", gameHandler.DeleteReview)
}
