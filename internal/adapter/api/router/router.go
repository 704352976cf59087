package router

import (
	"github.com/labstack/echo/v4"

	"corruptx/internal/adapter/api/middleware"
)

func Setup(
	e *echo.Echo,
	authMiddleware *middleware.AuthMiddleware,
	adminMiddleware *middleware.AdminMiddleware,
	reporterMiddleware *middleware.ReporterMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
) {
	SetupAuthRouter(e, authMiddleware)
	SetupReportRouter(e, authMiddleware, rateLimitMiddleware)
	SetupCampaignRouter(e, authMiddleware, rateLimitMiddleware)
	SetupReporterRouter(e, authMiddleware, reporterMiddleware, rateLimitMiddleware)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
	SetupHealthRouter(e)
}
