package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"corruptx/internal/domain/repository"
)

type ReporterMiddleware struct {
	reporterRepo repository.ReporterRepository
}

func NewReporterMiddleware(reporterRepo repository.ReporterRepository) *ReporterMiddleware {
	return &ReporterMiddleware{
		reporterRepo: reporterRepo,
	}
}

// ReporterOnly gates routes on an existing reporter registration. The
// registration itself is the credential; an inactive reporter can still
// see their history but receives no new work.
func (m *ReporterMiddleware) ReporterOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		if _, err := m.reporterRepo.GetByUserID(c.Request().Context(), uid); err != nil {
			return echo.NewHTTPError(http.StatusForbidden, "Reporter registration required")
		}

		return next(c)
	}
}
