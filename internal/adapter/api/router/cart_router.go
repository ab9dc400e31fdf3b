package router

import (
	"chainmart/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupCartRouter(e *echo.Echo) {
	cartHandler := handler.GetCartHandler()

	e.POST("/v1/markets/:marketPlaceAddress/products/:productId/cart", cartHandler.AddCartItem)
	e.GET("/v1/markets/:marketPlaceAddress/carts/:userWallet", cartHandler.ListMarketCart)
	e.PUT("/v1/markets/:marketPlaceAddress/cart-items/market-name", cartHandler.SyncMarketName)
	e.PUT("/v1/markets/:marketPlaceAddress/products/:productId/cart-items/product-data", cartHandler.SyncProductSnapshot)

	carts := e.Group("/v1/carts/:userWallet")
	carts.GET("", cartHandler.ListCart)
	carts.DELETE("/items", cartHandler.RemoveCartItem)
	carts.DELETE("", cartHandler.ClearCart)
}
