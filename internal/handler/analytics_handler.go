package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Raffi85/NetDash-Website/internal/service"
)

// AnalyticsHandler serves the admin dashboard counters.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetAnalytics godoc
// @Summary Get dashboard analytics (admin)
// @Tags analytics
// @Produce json
// @Success 200 {object} service.Analytics
// @Failure 403 {object} errors.StatusResponse
// @Router /analytics [get]
func (h *AnalyticsHandler) GetAnalytics(c echo.Context) error {
	analytics, err := h.analyticsService.GetAnalytics(c.Request().Context())
	if err != nil {
		return respondError(c, err, "get analytics")
	}
	return c.JSON(http.StatusOK, analytics)
}
