package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "github.com/Raffi85/NetDash-Website/internal/errors"
	"github.com/Raffi85/NetDash-Website/internal/model"
	"github.com/Raffi85/NetDash-Website/internal/service"
	"github.com/Raffi85/NetDash-Website/internal/session"
)

// ReviewHandler handles review endpoints.
type ReviewHandler struct {
	reviewService service.ReviewService
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// CreateReviewRequest carries a submitted review.
type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// ListReviews godoc
// @Summary List all reviews (admin)
// @Tags reviews
// @Produce json
// @Success 200 {array} model.Review
// @Failure 403 {object} errors.StatusResponse
// @Router /reviews [get]
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	reviews, err := h.reviewService.ListReviews(c.Request().Context())
	if err != nil {
		return respondError(c, err, "list reviews")
	}
	return c.JSON(http.StatusOK, reviews)
}

// CreateReview godoc
// @Summary Submit a review
// @Tags reviews
// @Accept json
// @Produce json
// @Param request body CreateReviewRequest true "Review data"
// @Success 201 {object} errors.StatusResponse
// @Failure 401 {object} errors.StatusResponse
// @Failure 403 {object} errors.StatusResponse
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	claims, _ := session.FromContext(c)

	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, "Rating between 1 and 5 is required")
	}

	if err := h.reviewService.CreateReview(c.Request().Context(), claims.UserID, req.Rating, req.Comment); err != nil {
		return respondError(c, err, "create review")
	}
	return c.JSON(http.StatusCreated, apperrors.Success("Review submitted successfully"))
}

// ListPublicReviews godoc
// @Summary List latest reviews for public display
// @Tags reviews
// @Produce json
// @Success 200 {array} model.Review
// @Router /reviews/public [get]
func (h *ReviewHandler) ListPublicReviews(c echo.Context) error {
	reviews, err := h.reviewService.ListPublicReviews(c.Request().Context())
	if err != nil {
		// Public listing degrades to an empty list rather than erroring.
		return c.JSON(http.StatusOK, []model.Review{})
	}
	return c.JSON(http.StatusOK, reviews)
}

// ApproveReview godoc
// @Summary Approve a review (admin)
// @Tags reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} errors.StatusResponse
// @Router /reviews/{id}/approve [put]
func (h *ReviewHandler) ApproveReview(c echo.Context) error {
	return h.setApproval(c, true, "Review approved successfully")
}

// RejectReview godoc
// @Summary Reject a review (admin)
// @Tags reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} errors.StatusResponse
// @Router /reviews/{id}/reject [put]
func (h *ReviewHandler) RejectReview(c echo.Context) error {
	return h.setApproval(c, false, "Review rejected successfully")
}

func (h *ReviewHandler) setApproval(c echo.Context, approved bool, message string) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return respondBadRequest(c, "Invalid review id")
	}

	if err := h.reviewService.SetApproval(c.Request().Context(), uint(id), approved); err != nil {
		return respondError(c, err, "set review approval")
	}
	return c.JSON(http.StatusOK, apperrors.Success(message))
}
