package router

import (
	"github.com/labstack/echo/v4"

	"gameshelf/internal/adapter/api/handler"
)

func SetupSearchRouter(e *echo.Echo, searchHandler *handler.SearchHandler) {
	e.GET("/v1/search", searchHandler.Search)
	e.GET("/v1/publishers", searchHandler.ListPublishers)
}
