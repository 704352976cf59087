package router

import (
	"github.com/labstack/echo/v4"

	"corruptx/internal/adapter/api/handler"
	"corruptx/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()
	campaignHandler := handler.GetCampaignHandler()
	requestHandler := handler.GetCampaignRequestHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate, adminMiddleware.AdminOnly)

	admin.GET("/stats", adminHandler.GetDashboardStats)

	admin.GET("/users", adminHandler.ListUsers)
	admin.PATCH("/users/:id/role", adminHandler.SetUserRole)

	admin.GET("/reports", adminHandler.ListReports)
	admin.DELETE("/reports/:id", adminHandler.DeleteReport)

	admin.GET("/proposals", requestHandler.List)
	admin.POST("/proposals/:id/approve", requestHandler.Approve)
	admin.POST("/proposals/:id/reject", requestHandler.Reject)

	admin.POST("/campaigns", campaignHandler.Create)
	admin.PUT("/campaigns/:id", campaignHandler.Update)
	admin.PATCH("/campaigns/:id/status", campaignHandler.SetStatus)
	admin.DELETE("/campaigns/:id", campaignHandler.Delete)

	admin.GET("/reporters", adminHandler.ListReporters)
	admin.PATCH("/reporters/:id/active", adminHandler.SetReporterActive)
	admin.POST("/assignments", adminHandler.DispatchAssignment)
}
