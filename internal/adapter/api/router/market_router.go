package router

import (
	"chainmart/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupMarketRouter(e *echo.Echo) {
	marketHandler := handler.GetMarketHandler()

	markets := e.Group("/v1/markets")
	markets.POST("", marketHandler.CreateMarket)
	markets.GET("", marketHandler.ListMarkets)
	markets.GET("/owner/:ownerAddress", marketHandler.GetMarketByOwner)
	markets.GET("/:marketPlaceAddress", marketHandler.GetMarket)
	markets.PUT("/:marketPlaceAddress", marketHandler.UpdateMarketData)
	markets.PUT("/:marketPlaceAddress/owner", marketHandler.UpdateMarketOwner)
	markets.PUT("/:marketPlaceAddress/rating", marketHandler.UpdateMarketRating)
	markets.PUT("/:marketPlaceAddress/volume", marketHandler.AddTradedVolume)
	markets.DELETE("/:marketPlaceAddress", marketHandler.DeleteMarket)
}
