package handler

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"corruptx/internal/domain/entity"
	"corruptx/internal/domain/repository"
	"corruptx/internal/usecase"
	"corruptx/pkg/errors"
	"corruptx/pkg/response"
	"corruptx/pkg/utils"
)

type AdminHandler struct {
	profileUseCase    *usecase.ProfileUseCase
	reportUseCase     *usecase.ReportUseCase
	requestUseCase    *usecase.CampaignRequestUseCase
	reporterUseCase   *usecase.ReporterUseCase
	assignmentUseCase *usecase.AssignmentUseCase
}

func NewAdminHandler(
	profileUseCase *usecase.ProfileUseCase,
	reportUseCase *usecase.ReportUseCase,
	requestUseCase *usecase.CampaignRequestUseCase,
	reporterUseCase *usecase.ReporterUseCase,
	assignmentUseCase *usecase.AssignmentUseCase,
) *AdminHandler {
	return &AdminHandler{
		profileUseCase:    profileUseCase,
		reportUseCase:     reportUseCase,
		requestUseCase:    requestUseCase,
		reporterUseCase:   reporterUseCase,
		assignmentUseCase: assignmentUseCase,
	}
}

// GetDashboardStats summarizes the moderation workload.
func (h *AdminHandler) GetDashboardStats(c echo.Context) error {
	ctx := c.Request().Context()

	reportStats, err := h.reportUseCase.Stats(ctx)
	if err != nil {
		return response.Error(c, err)
	}

	_, totalProfiles, err := h.profileUseCase.ListProfiles(ctx, 1, 0)
	if err != nil {
		return response.Error(c, err)
	}

	pendingProposals := 0
	proposals, err := h.requestUseCase.ListProposals(ctx)
	if err == nil {
		for _, p := range proposals {
			if p.Status == entity.RequestStatusPending {
				pendingProposals++
			}
		}
	}

	return response.Success(c, map[string]interface{}{
		"total_users":       totalProfiles,
		"total_reports":     reportStats.Total,
		"recent_reports":    reportStats.Recent,
		"pending_proposals": pendingProposals,
		"last_updated":      time.Now().Format(time.RFC3339),
	})
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	profiles, total, err := h.profileUseCase.ListProfiles(c.Request().Context(), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, profiles, total, pagination.Page, pagination.PageSize)
}

func (h *AdminHandler) SetUserRole(c echo.Context) error {
	adminID := c.Get("uid").(string)

	var req struct {
		Role string `json:"role" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	profile, err := h.profileUseCase.SetRole(c.Request().Context(), adminID, c.Param("id"), req.Role)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

// ListReports returns filtered reports with short-lived signed media URLs.
func (h *AdminHandler) ListReports(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	filter := repository.ReportFilter{
		CampaignID:     c.QueryParam("campaign_id"),
		CorruptionType: c.QueryParam("corruption_type"),
	}
	if raw := c.QueryParam("is_anonymous"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			filter.IsAnonymous = &v
		}
	}
	if raw := c.QueryParam("campaign_pending"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			filter.CampaignPending = &v
		}
	}
	if from := c.QueryParam("from"); from != "" {
		if t, err := time.Parse(time.RFC3339, from); err == nil {
			filter.CreatedFrom = &t
		}
	}
	if to := c.QueryParam("to"); to != "" {
		if t, err := time.Parse(time.RFC3339, to); err == nil {
			filter.CreatedTo = &t
		}
	}

	views, total, err := h.reportUseCase.AdminListReports(c.Request().Context(), filter, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, views, total, pagination.Page, pagination.PageSize)
}

func (h *AdminHandler) DeleteReport(c echo.Context) error {
	if err := h.reportUseCase.DeleteReport(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Report deleted"})
}

func (h *AdminHandler) ListReporters(c echo.Context) error {
	overviews, err := h.reporterUseCase.ListReporters(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, overviews)
}

func (h *AdminHandler) SetReporterActive(c echo.Context) error {
	var req struct {
		Active *bool `json:"active" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	reporter, err := h.reporterUseCase.SetActive(c.Request().Context(), c.Param("id"), *req.Active)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reporter)
}

// DispatchAssignment hands a report to a reporter by hand.
func (h *AdminHandler) DispatchAssignment(c echo.Context) error {
	var req struct {
		ReporterID string `json:"reporter_id" validate:"required"`
		ReportID   string `json:"report_id" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	assignment, err := h.assignmentUseCase.Dispatch(c.Request().Context(), req.ReporterID, req.ReportID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, assignment)
}
