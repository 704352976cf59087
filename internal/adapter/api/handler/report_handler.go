package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"corruptx/internal/usecase"
	"corruptx/pkg/errors"
	"corruptx/pkg/response"
	"corruptx/pkg/utils"
)

type ReportHandler struct {
	reportUseCase *usecase.ReportUseCase
}

func NewReportHandler(reportUseCase *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{
		reportUseCase: reportUseCase,
	}
}

// Submit accepts a multipart evidence submission. Coordinates come as form
// fields; absent or malformed values are treated as missing and rejected
// by the workflow's location gate.
func (h *ReportHandler) Submit(c echo.Context) error {
	uid := c.Get("uid").(string)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Please select a file to upload", err))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read uploaded file", err))
	}
	defer file.Close()

	input := usecase.SubmitReportInput{
		File:              file,
		Filename:          fileHeader.Filename,
		ContentType:       fileHeader.Header.Get("Content-Type"),
		Size:              fileHeader.Size,
		Description:       c.FormValue("description"),
		Location:          c.FormValue("location"),
		CorruptionType:    c.FormValue("corruption_type"),
		CampaignID:        c.FormValue("campaign_id"),
		CampaignRequestID: c.FormValue("campaign_request_id"),
		ShareX:            formBool(c, "share_x"),
		ShareInstagram:    formBool(c, "share_instagram"),
		ShareFacebook:     formBool(c, "share_facebook"),
		IsAnonymous:       formBool(c, "is_anonymous"),
		ReporterName:      c.FormValue("reporter_name"),
		ReporterContact:   c.FormValue("reporter_contact"),
	}
	input.Latitude = formFloat(c, "latitude")
	input.Longitude = formFloat(c, "longitude")

	result, err := h.reportUseCase.SubmitReport(c.Request().Context(), uid, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}

func (h *ReportHandler) ListMine(c echo.Context) error {
	uid := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	reports, total, err := h.reportUseCase.ListMyReports(c.Request().Context(), uid, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, reports, total, pagination.Page, pagination.PageSize)
}

func formBool(c echo.Context, field string) bool {
	v, _ := strconv.ParseBool(c.FormValue(field))
	return v
}

func formFloat(c echo.Context, field string) *float64 {
	raw := c.FormValue(field)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
