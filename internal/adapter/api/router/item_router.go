package router

import (
	"chainmart/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupItemRouter(e *echo.Echo) {
	itemHandler := handler.GetItemHandler()

	e.POST("/v1/markets/:marketPlaceAddress/products/:productId/items", itemHandler.RecordItem)
	e.GET("/v1/markets/:marketPlaceAddress/products/:productId/items", itemHandler.ListProductItems)
	e.PUT("/v1/markets/:marketPlaceAddress/products/:productId/items/product-name", itemHandler.SyncProductName)

	market := e.Group("/v1/markets/:marketPlaceAddress")
	market.GET("/items", itemHandler.ListMarketItems)
	market.GET("/items/:itemId", itemHandler.GetItem)
	market.GET("/buyers/:buyer/items", itemHandler.ListBoughtInMarket)
	market.GET("/owners/:owner/items", itemHandler.ListOwnedInMarket)
	market.PUT("/items/market-name", itemHandler.SyncMarketName)

	e.GET("/v1/buyers/:buyer/items", itemHandler.ListBought)
	e.GET("/v1/owners/:owner/items", itemHandler.ListOwned)
}
