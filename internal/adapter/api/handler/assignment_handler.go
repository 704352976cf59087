package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"corruptx/internal/usecase"
	"corruptx/pkg/errors"
	"corruptx/pkg/response"
)

type AssignmentHandler struct {
	assignmentUseCase *usecase.AssignmentUseCase
}

func NewAssignmentHandler(assignmentUseCase *usecase.AssignmentUseCase) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentUseCase: assignmentUseCase,
	}
}

// Worklist returns the caller's pending assignments. ?all=true includes
// handled ones for the reporter's history view.
func (h *AssignmentHandler) Worklist(c echo.Context) error {
	uid := c.Get("uid").(string)
	includeHandled, _ := strconv.ParseBool(c.QueryParam("all"))

	views, err := h.assignmentUseCase.Worklist(c.Request().Context(), uid, includeHandled)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, views)
}

func (h *AssignmentHandler) Accept(c echo.Context) error {
	uid := c.Get("uid").(string)

	assignment, err := h.assignmentUseCase.Accept(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, assignment)
}

func (h *AssignmentHandler) Ignore(c echo.Context) error {
	uid := c.Get("uid").(string)

	assignment, err := h.assignmentUseCase.Ignore(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, assignment)
}

// SubmitVerification accepts the reporter's on-site media for a report.
func (h *AssignmentHandler) SubmitVerification(c echo.Context) error {
	uid := c.Get("uid").(string)
	reportID := c.Param("reportId")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Please select a verification file", err))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read uploaded file", err))
	}
	defer file.Close()

	input := usecase.SubmitVerificationInput{
		File:        file,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Description: c.FormValue("description"),
	}

	report, err := h.assignmentUseCase.SubmitVerification(c.Request().Context(), uid, reportID, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, report)
}
