package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "github.com/Raffi85/NetDash-Website/internal/errors"
	"github.com/Raffi85/NetDash-Website/internal/service"
	"github.com/Raffi85/NetDash-Website/internal/session"
)

// PlanHandler handles subscription plan endpoints.
type PlanHandler struct {
	planService service.PlanService
}

// NewPlanHandler creates a new plan handler.
func NewPlanHandler(planService service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// PlanRequest carries plan fields for create/update.
type PlanRequest struct {
	Name     string   `json:"name" validate:"required"`
	Price    float64  `json:"price" validate:"gte=0"`
	Features []string `json:"features"`
	IsActive *bool    `json:"is_active"`
}

// ListPlans godoc
// @Summary List subscription plans
// @Tags plans
// @Produce json
// @Success 200 {array} service.PlanView
// @Failure 401 {object} errors.StatusResponse
// @Router /plans [get]
func (h *PlanHandler) ListPlans(c echo.Context) error {
	claims, _ := session.FromContext(c)

	plans, err := h.planService.ListPlans(c.Request().Context(), claims.Role)
	if err != nil {
		return respondError(c, err, "list plans")
	}
	return c.JSON(http.StatusOK, plans)
}

// CreatePlan godoc
// @Summary Create a plan (admin)
// @Tags plans
// @Accept json
// @Produce json
// @Param request body PlanRequest true "Plan data"
// @Success 201 {object} errors.StatusResponse
// @Failure 403 {object} errors.StatusResponse
// @Router /plans [post]
func (h *PlanHandler) CreatePlan(c echo.Context) error {
	var req PlanRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, "Name and price are required")
	}

	_, err := h.planService.CreatePlan(c.Request().Context(), service.PlanInput{
		Name:     req.Name,
		Price:    req.Price,
		Features: req.Features,
	})
	if err != nil {
		return respondError(c, err, "create plan")
	}
	return c.JSON(http.StatusCreated, apperrors.Success("Plan created successfully"))
}

// UpdatePlan godoc
// @Summary Update a plan (admin)
// @Tags plans
// @Accept json
// @Produce json
// @Param id path int true "Plan ID"
// @Param request body PlanRequest true "Plan data"
// @Success 200 {object} errors.StatusResponse
// @Failure 404 {object} errors.StatusResponse
// @Router /plans/{id} [put]
func (h *PlanHandler) UpdatePlan(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return respondBadRequest(c, "Invalid plan id")
	}

	var req PlanRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "Invalid request body")
	}

	err = h.planService.UpdatePlan(c.Request().Context(), uint(id), service.PlanInput{
		Name:     req.Name,
		Price:    req.Price,
		Features: req.Features,
		IsActive: req.IsActive,
	})
	if err != nil {
		return respondError(c, err, "update plan")
	}
	return c.JSON(http.StatusOK, apperrors.Success("Plan updated successfully"))
}
