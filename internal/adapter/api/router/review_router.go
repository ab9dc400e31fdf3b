package router

import (
	"chainmart/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupMarketReviewRouter(e *echo.Echo) {
	reviewHandler := handler.GetMarketReviewHandler()

	reviews := e.Group("/v1/markets/:marketPlaceAddress/reviews")
	reviews.POST("", reviewHandler.CreateReview)
	reviews.PUT("", reviewHandler.UpdateReview)
	reviews.GET("", reviewHandler.ListReviews)
	reviews.GET("/:userWallet", reviewHandler.GetReview)
	reviews.DELETE("/:userWallet", reviewHandler.DeleteReview)
}

func SetupProductReviewRouter(e *echo.Echo) {
	reviewHandler := handler.GetProductReviewHandler()

	reviews := e.Group("/v1/markets/:marketPlaceAddress/products/:productId/reviews")
	reviews.POST("", reviewHandler.CreateReview)
	reviews.PUT("", reviewHandler.UpdateReview)
	reviews.GET("", reviewHandler.ListReviews)
	reviews.GET("/:userWallet", reviewHandler.GetReview)
	reviews.DELETE("/:userWallet", reviewHandler.DeleteReview)
}
