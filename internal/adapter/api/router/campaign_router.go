package router

import (
	"github.com/labstack/echo/v4"

	"corruptx/internal/adapter/api/handler"
	"corruptx/internal/adapter/api/middleware"
)

func SetupCampaignRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	campaignHandler := handler.GetCampaignHandler()
	requestHandler := handler.GetCampaignRequestHandler()

	// Public routes
	e.GET("/v1/campaigns", campaignHandler.List)
	e.GET("/v1/campaigns/:id", campaignHandler.Get)

	// Proposal routes
	proposals := e.Group("/v1/proposals")
	proposals.Use(authMiddleware.Authenticate)

	proposals.POST("", requestHandler.Submit, rateLimitMiddleware.Limit("submit_proposal"))
	proposals.GET("/me", requestHandler.ListMine)
}
