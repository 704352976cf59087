package handler

import (
	"corruptx/internal/usecase"
)

var (
	authHandler            *AuthHandler
	reportHandler          *ReportHandler
	heatmapHandler         *HeatmapHandler
	campaignHandler        *CampaignHandler
	campaignRequestHandler *CampaignRequestHandler
	reporterHandler        *ReporterHandler
	assignmentHandler      *AssignmentHandler
	adminHandler           *AdminHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	reportUseCase *usecase.ReportUseCase,
	heatmapUseCase *usecase.HeatmapUseCase,
	campaignUseCase *usecase.CampaignUseCase,
	campaignRequestUseCase *usecase.CampaignRequestUseCase,
	reporterUseCase *usecase.ReporterUseCase,
	assignmentUseCase *usecase.AssignmentUseCase,
	profileUseCase *usecase.ProfileUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	reportHandler = NewReportHandler(reportUseCase)
	heatmapHandler = NewHeatmapHandler(heatmapUseCase)
	campaignHandler = NewCampaignHandler(campaignUseCase)
	campaignRequestHandler = NewCampaignRequestHandler(campaignRequestUseCase)
	reporterHandler = NewReporterHandler(reporterUseCase)
	assignmentHandler = NewAssignmentHandler(assignmentUseCase)
	adminHandler = NewAdminHandler(profileUseCase, reportUseCase, campaignRequestUseCase, reporterUseCase, assignmentUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetReportHandler() *ReportHandler {
	return reportHandler
}

func GetHeatmapHandler() *HeatmapHandler {
	return heatmapHandler
}

func GetCampaignHandler() *CampaignHandler {
	return campaignHandler
}

func GetCampaignRequestHandler() *CampaignRequestHandler {
	return campaignRequestHandler
}

func GetReporterHandler() *ReporterHandler {
	return reporterHandler
}

func GetAssignmentHandler() *AssignmentHandler {
	return assignmentHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}
