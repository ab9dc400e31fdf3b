package router

import (
	"chainmart/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupProductRouter(e *echo.Echo) {
	productHandler := handler.GetProductHandler()

	products := e.Group("/v1/markets/:marketPlaceAddress/products")
	products.POST("", productHandler.CreateProduct)
	products.GET("", productHandler.ListMarketProducts)
	products.GET("/:productId", productHandler.GetProduct)
	products.PUT("/:productId", productHandler.UpdateProductData)
	products.PUT("/:productId/rating", productHandler.UpdateProductRating)
	products.DELETE("/:productId", productHandler.DeleteProduct)
}
