package router

import (
	"github.com/labstack/echo/v4"

	"corruptx/internal/adapter/api/handler"
	"corruptx/internal/adapter/api/middleware"
)

func SetupReporterRouter(
	e *echo.Echo,
	authMiddleware *middleware.AuthMiddleware,
	reporterMiddleware *middleware.ReporterMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
) {
	reporterHandler := handler.GetReporterHandler()
	assignmentHandler := handler.GetAssignmentHandler()

	reporters := e.Group("/v1/reporters")
	reporters.Use(authMiddleware.Authenticate)

	reporters.POST("", reporterHandler.Join)
	reporters.GET("/me", reporterHandler.Me)

	// Assignment worklist, reporters only
	assignments := e.Group("/v1/assignments")
	assignments.Use(authMiddleware.Authenticate, reporterMiddleware.ReporterOnly)

	assignments.GET("", assignmentHandler.Worklist)
	assignments.POST("/:id/accept", assignmentHandler.Accept)
	assignments.POST("/:id/ignore", assignmentHandler.Ignore)

	e.POST("/v1/reports/:reportId/verification", assignmentHandler.SubmitVerification,
		authMiddleware.Authenticate, reporterMiddleware.ReporterOnly, rateLimitMiddleware.Limit("submit_verification"))
}
