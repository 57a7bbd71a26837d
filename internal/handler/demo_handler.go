package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Raffi85/NetDash-Website/internal/service"
)

// DemoHandler handles time-boxed demo session endpoints.
type DemoHandler struct {
	demoService service.DemoService
}

// NewDemoHandler creates a new demo handler.
func NewDemoHandler(demoService service.DemoService) *DemoHandler {
	return &DemoHandler{demoService: demoService}
}

// StartDemoRequest carries an optional visitor email for a demo session.
type StartDemoRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
}

// StartDemoResponse is returned when a demo session is created.
type StartDemoResponse struct {
	Status     string    `json:"status"`
	DemoToken  string    `json:"demo_token"`
	ExpiryTime time.Time `json:"expiry_time"`
}

// AccessDemoResponse describes an active demo session.
type AccessDemoResponse struct {
	Status        string    `json:"status"`
	DemoActive    bool      `json:"demo_active"`
	RemainingTime time.Time `json:"remaining_time"`
	Features      []string  `json:"features"`
}

// StartDemo godoc
// @Summary Start an anonymous demo session
// @Tags demo
// @Accept json
// @Produce json
// @Param request body StartDemoRequest true "Visitor data"
// @Success 201 {object} StartDemoResponse
// @Router /demo/start [post]
func (h *DemoHandler) StartDemo(c echo.Context) error {
	var req StartDemoRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, "Invalid email address")
	}

	demo, err := h.demoService.StartDemo(c.Request().Context(), req.Email)
	if err != nil {
		return respondError(c, err, "start demo")
	}
	return c.JSON(http.StatusCreated, StartDemoResponse{
		Status:     "success",
		DemoToken:  demo.Token,
		ExpiryTime: demo.ExpiryTime,
	})
}

// AccessDemo godoc
// @Summary Access an active demo session
// @Tags demo
// @Produce json
// @Param token path string true "Demo token"
// @Success 200 {object} AccessDemoResponse
// @Failure 404 {object} errors.StatusResponse
// @Router /demo/access/{token} [get]
func (h *DemoHandler) AccessDemo(c echo.Context) error {
	access, err := h.demoService.AccessDemo(c.Request().Context(), c.Param("token"))
	if err != nil {
		return respondError(c, err, "access demo")
	}
	return c.JSON(http.StatusOK, AccessDemoResponse{
		Status:        "success",
		DemoActive:    true,
		RemainingTime: access.RemainingUntil,
		Features:      access.Features,
	})
}
