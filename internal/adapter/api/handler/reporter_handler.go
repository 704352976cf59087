package handler

import (
	"github.com/labstack/echo/v4"

	"corruptx/internal/usecase"
	"corruptx/pkg/errors"
	"corruptx/pkg/response"
)

type ReporterHandler struct {
	reporterUseCase *usecase.ReporterUseCase
}

func NewReporterHandler(reporterUseCase *usecase.ReporterUseCase) *ReporterHandler {
	return &ReporterHandler{
		reporterUseCase: reporterUseCase,
	}
}

func (h *ReporterHandler) Join(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req usecase.JoinReporterInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	reporter, err := h.reporterUseCase.Join(c.Request().Context(), uid, req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, reporter)
}

func (h *ReporterHandler) Me(c echo.Context) error {
	uid := c.Get("uid").(string)

	reporter, err := h.reporterUseCase.GetByUser(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reporter)
}
