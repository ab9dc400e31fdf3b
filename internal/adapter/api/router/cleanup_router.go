package router

import (
	"chainmart/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

// Cleanup routes sweep the children of already-deleted parents. They
// are idempotent and safe to re-drive after a failed cascade.
func SetupCleanupRouter(e *echo.Echo) {
	productHandler := handler.GetProductHandler()
	marketReviewHandler := handler.GetMarketReviewHandler()
	productReviewHandler := handler.GetProductReviewHandler()
	cartHandler := handler.GetCartHandler()

	cleanup := e.Group("/v1/cleanup/markets/:marketPlaceAddress")
	cleanup.DELETE("/products", productHandler.PurgeMarketProducts)
	cleanup.DELETE("/market-reviews", marketReviewHandler.PurgeMarketReviews)
	cleanup.DELETE("/product-reviews", productReviewHandler.PurgeMarketProductReviews)
	cleanup.DELETE("/cart-items", cartHandler.PurgeMarketCartItems)
	cleanup.DELETE("/products/:productId/product-reviews", productReviewHandler.PurgeProductReviews)
}
