package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "github.com/Raffi85/NetDash-Website/internal/errors"
	"github.com/Raffi85/NetDash-Website/internal/service"
	"github.com/Raffi85/NetDash-Website/internal/session"
)

// PurchaseHandler handles subscription purchase endpoints.
type PurchaseHandler struct {
	purchaseService service.PurchaseService
}

// NewPurchaseHandler creates a new purchase handler.
func NewPurchaseHandler(purchaseService service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// CreatePurchaseRequest carries a plan purchase request.
type CreatePurchaseRequest struct {
	PlanID uint    `json:"plan_id" validate:"required"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// CreatePurchaseResponse is returned after a purchase is recorded.
type CreatePurchaseResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	PurchaseID  uint   `json:"purchase_id"`
	EmailStatus string `json:"email_status"`
}

// UpdatePurchaseStatusRequest carries a purchase status change.
type UpdatePurchaseStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CreatePurchase godoc
// @Summary Purchase a subscription plan
// @Tags purchases
// @Accept json
// @Produce json
// @Param request body CreatePurchaseRequest true "Purchase data"
// @Success 201 {object} CreatePurchaseResponse
// @Failure 400 {object} errors.StatusResponse
// @Failure 401 {object} errors.StatusResponse
// @Router /purchase [post]
func (h *PurchaseHandler) CreatePurchase(c echo.Context) error {
	claims, ok := session.FromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, apperrors.Error("Authentication required"))
	}

	var req CreatePurchaseRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, "Plan ID and amount are required")
	}

	purchase, err := h.purchaseService.CreatePurchase(c.Request().Context(), claims.UserID, claims.Email, req.PlanID, req.Amount)
	if err != nil {
		return respondError(c, err, "create purchase")
	}
	return c.JSON(http.StatusCreated, CreatePurchaseResponse{
		Status:      "success",
		Message:     "Purchase initiated successfully",
		PurchaseID:  purchase.ID,
		EmailStatus: "pending",
	})
}

// ListPurchases godoc
// @Summary List purchases with user and plan details (admin)
// @Tags purchases
// @Produce json
// @Success 200 {array} model.PurchaseDetail
// @Failure 403 {object} errors.StatusResponse
// @Router /purchases [get]
func (h *PurchaseHandler) ListPurchases(c echo.Context) error {
	purchases, err := h.purchaseService.ListPurchases(c.Request().Context())
	if err != nil {
		return respondError(c, err, "list purchases")
	}
	return c.JSON(http.StatusOK, purchases)
}

// UpdateStatus godoc
// @Summary Update a purchase status (admin)
// @Tags purchases
// @Accept json
// @Produce json
// @Param id path int true "Purchase ID"
// @Param request body UpdatePurchaseStatusRequest true "New status"
// @Success 200 {object} errors.StatusResponse
// @Failure 400 {object} errors.StatusResponse
// @Failure 404 {object} errors.StatusResponse
// @Router /purchases/{id}/status [put]
func (h *PurchaseHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return respondBadRequest(c, "Invalid purchase ID")
	}

	var req UpdatePurchaseStatusRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, "Status is required")
	}

	if err := h.purchaseService.UpdateStatus(c.Request().Context(), uint(id), req.Status); err != nil {
		return respondError(c, err, "update purchase status")
	}
	return c.JSON(http.StatusOK, apperrors.Success("Purchase status updated successfully"))
}
