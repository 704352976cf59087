package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"corruptx/internal/usecase"
	"corruptx/pkg/response"
)

type HeatmapHandler struct {
	heatmapUseCase *usecase.HeatmapUseCase
}

func NewHeatmapHandler(heatmapUseCase *usecase.HeatmapUseCase) *HeatmapHandler {
	return &HeatmapHandler{
		heatmapUseCase: heatmapUseCase,
	}
}

// GetHeatmap returns aggregated map points, optionally filtered by
// campaign, corruption type, and an RFC3339 date window. Malformed dates
// are ignored rather than rejected.
func (h *HeatmapHandler) GetHeatmap(c echo.Context) error {
	filter := usecase.HeatmapFilter{
		CampaignID:     c.QueryParam("campaign_id"),
		CorruptionType: c.QueryParam("corruption_type"),
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

	points, err := h.heatmapUseCase.GetHeatmap(c.Request().Context(), filter)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, points)
}
