package handler

import (
	"github.com/labstack/echo/v4"

	"corruptx/internal/usecase"
	"corruptx/pkg/errors"
	"corruptx/pkg/response"
)

type CampaignRequestHandler struct {
	requestUseCase *usecase.CampaignRequestUseCase
}

func NewCampaignRequestHandler(requestUseCase *usecase.CampaignRequestUseCase) *CampaignRequestHandler {
	return &CampaignRequestHandler{
		requestUseCase: requestUseCase,
	}
}

func (h *CampaignRequestHandler) Submit(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req usecase.CampaignRequestInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	request, err := h.requestUseCase.SubmitProposal(c.Request().Context(), uid, req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, request)
}

func (h *CampaignRequestHandler) ListMine(c echo.Context) error {
	uid := c.Get("uid").(string)

	requests, err := h.requestUseCase.ListMyProposals(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, requests)
}

func (h *CampaignRequestHandler) List(c echo.Context) error {
	requests, err := h.requestUseCase.ListProposals(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, requests)
}

func (h *CampaignRequestHandler) Approve(c echo.Context) error {
	campaign, err := h.requestUseCase.ApproveProposal(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, campaign)
}

func (h *CampaignRequestHandler) Reject(c echo.Context) error {
	if err := h.requestUseCase.RejectProposal(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Proposal rejected"})
}
