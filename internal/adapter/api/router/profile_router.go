package router

import (
	"github.com/labstack/echo/v4"

	"gameshelf/internal/adapter/api/handler"
	"gameshelf/internal/adapter/api/middleware"
)

func SetupProfileRouter(e *echo.Echo, profileHandler *handler.ProfileHandler, authMiddleware *middleware.AuthMiddleware) {
	profile := e.Group("/v1/profile", authMiddleware.Authenticate)
	profile.GET("", profileHandler.GetProfile)
	profile.GET("/reviews", profileHandler.GetReviews)
	profile.GET("/favourites", profileHandler.GetFavourites)
	profile.POST("/favourites/:gameId", profileHandler.AddFavourite)
	profile.DELETE("/favourites/:gameId", profileHandler.RemoveFavourite)
}
