package router

import (
	"github.com/labstack/echo/v4"

	"corruptx/internal/adapter/api/handler"
	"corruptx/internal/adapter/api/middleware"
)

func SetupReportRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	reportHandler := handler.GetReportHandler()
	heatmapHandler := handler.GetHeatmapHandler()

	// The heatmap is the public face of the platform
	e.GET("/v1/heatmap", heatmapHandler.GetHeatmap)

	reports := e.Group("/v1/reports")
	reports.Use(authMiddleware.Authenticate)

	reports.POST("", reportHandler.Submit, rateLimitMiddleware.Limit("submit_report"))
	reports.GET("/me", reportHandler.ListMine)
}
