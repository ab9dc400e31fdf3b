package router

import (
	"chainmart/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupReportRouter(e *echo.Echo) {
	reportHandler := handler.GetReportHandler()

	reports := e.Group("/v1/reports")
	reports.POST("", reportHandler.FileReport)
	reports.GET("", reportHandler.ListReports)
}
