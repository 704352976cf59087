package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"corruptx/internal/domain/service"
)

type HealthHandler struct {
	media service.MediaStorageService
}

var healthHandler *HealthHandler

func NewHealthHandler(media service.MediaStorageService) *HealthHandler {
	return &HealthHandler{
		media: media,
	}
}

func SetupHealthHandler(media service.MediaStorageService) {
	healthHandler = NewHealthHandler(media)
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "Server is running",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// CheckStorageHealth lists one page of the bucket to prove the storage
// credentials still work.
func (h *HealthHandler) CheckStorageHealth(c echo.Context) error {
	if _, err := h.media.List(c.Request().Context(), ""); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"status": "Storage connection failed",
			"error":  err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "Storage connected successfully",
	})
}
