package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/Raffi85/NetDash-Website/internal/errors"
	"github.com/Raffi85/NetDash-Website/internal/service"
)

// SettingsHandler handles platform settings endpoints.
type SettingsHandler struct {
	settingsService service.SettingsService
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// EmailConfigRequest carries new SMTP settings.
type EmailConfigRequest struct {
	SMTPServer   string `json:"smtp_server"`
	SMTPPort     int    `json:"smtp_port"`
	SMTPUsername string `json:"smtp_username" validate:"required"`
	SMTPPassword string `json:"smtp_password" validate:"required"`
}

// UpdateEmailConfig godoc
// @Summary Update the outbound SMTP configuration (admin)
// @Tags settings
// @Accept json
// @Produce json
// @Param request body EmailConfigRequest true "SMTP settings"
// @Success 200 {object} errors.StatusResponse
// @Failure 400 {object} errors.StatusResponse
// @Failure 403 {object} errors.StatusResponse
// @Router /email-config [post]
func (h *SettingsHandler) UpdateEmailConfig(c echo.Context) error {
	var req EmailConfigRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, "SMTP username and password are required")
	}

	if err := h.settingsService.UpdateEmailConfig(c.Request().Context(), req.SMTPServer, req.SMTPPort, req.SMTPUsername, req.SMTPPassword); err != nil {
		return respondError(c, err, "update email config")
	}
	return c.JSON(http.StatusOK, apperrors.Success("Email configuration updated successfully"))
}
