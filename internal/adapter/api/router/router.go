package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Setup(e *echo.Echo) {
	SetupMarketRouter(e)
	SetupProductRouter(e)
	SetupItemRouter(e)
	SetupMarketReviewRouter(e)
	SetupProductReviewRouter(e)
	SetupCartRouter(e)
	SetupCleanupRouter(e)
	SetupReportRouter(e)
	SetupHealthRouter(e)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
