package handler

import (
	"github.com/labstack/echo/v4"

	"corruptx/internal/domain/entity"
	"corruptx/internal/usecase"
	"corruptx/pkg/errors"
	"corruptx/pkg/response"
)

type CampaignHandler struct {
	campaignUseCase *usecase.CampaignUseCase
}

func NewCampaignHandler(campaignUseCase *usecase.CampaignUseCase) *CampaignHandler {
	return &CampaignHandler{
		campaignUseCase: campaignUseCase,
	}
}

// List returns active campaigns for citizens picking a campaign to report
// under. Admins pass ?status= to see paused or completed ones too.
func (h *CampaignHandler) List(c echo.Context) error {
	status := c.QueryParam("status")
	if status == "" {
		status = entity.CampaignStatusActive
	}

	campaigns, err := h.campaignUseCase.ListCampaigns(c.Request().Context(), status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, campaigns)
}

func (h *CampaignHandler) Get(c echo.Context) error {
	campaign, err := h.campaignUseCase.GetCampaign(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, campaign)
}

func (h *CampaignHandler) Create(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req usecase.CampaignInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	campaign, err := h.campaignUseCase.CreateCampaign(c.Request().Context(), uid, req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, campaign)
}

func (h *CampaignHandler) Update(c echo.Context) error {
	var req usecase.CampaignInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	campaign, err := h.campaignUseCase.UpdateCampaign(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, campaign)
}

func (h *CampaignHandler) SetStatus(c echo.Context) error {
	var req struct {
		Status string `json:"status" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	campaign, err := h.campaignUseCase.SetStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, campaign)
}

func (h *CampaignHandler) Delete(c echo.Context) error {
	if err := h.campaignUseCase.DeleteCampaign(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Campaign deleted"})
}
