package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "github.com/Raffi85/NetDash-Website/internal/errors"
	"github.com/Raffi85/NetDash-Website/internal/service"
	"github.com/Raffi85/NetDash-Website/internal/session"
)

// UserHandler handles profile and admin user-management endpoints.
type UserHandler struct {
	userService  service.UserService
	secureCookie bool
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService, secureCookie bool) *UserHandler {
	return &UserHandler{userService: userService, secureCookie: secureCookie}
}

// UpdateProfileRequest carries optional profile fields.
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Name      *string `json:"name"`
}

// GetProfile godoc
// @Summary Get the caller's profile
// @Tags profile
// @Produce json
// @Success 200 {object} model.User
// @Failure 401 {object} errors.StatusResponse
// @Failure 404 {object} errors.StatusResponse
// @Router /profile [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	claims, _ := session.FromContext(c)

	user, err := h.userService.GetProfile(c.Request().Context(), claims.UserID)
	if err != nil {
		return respondError(c, err, "get profile")
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary Update the caller's profile
// @Tags profile
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "Fields to update"
// @Success 200 {object} errors.StatusResponse
// @Failure 401 {object} errors.StatusResponse
// @Router /profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	claims, _ := session.FromContext(c)

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "Invalid request body")
	}

	err := h.userService.UpdateProfile(c.Request().Context(), claims.UserID, service.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Name:      req.Name,
	})
	if err != nil {
		return respondError(c, err, "update profile")
	}
	return c.JSON(http.StatusOK, apperrors.Success("Profile updated successfully"))
}

// DeleteAccount godoc
// @Summary Delete the caller's account
// @Tags profile
// @Produce json
// @Success 200 {object} errors.StatusResponse
// @Failure 401 {object} errors.StatusResponse
// @Router /profile [delete]
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	claims, _ := session.FromContext(c)
	sessionID, _ := session.IDFromContext(c)

	if err := h.userService.DeleteAccount(c.Request().Context(), claims.UserID, sessionID); err != nil {
		return respondError(c, err, "delete account")
	}

	session.ClearCookie(c, h.secureCookie)
	return c.JSON(http.StatusOK, apperrors.Success("Account deleted successfully"))
}

// ListUsers godoc
// @Summary List users (admin)
// @Tags users
// @Produce json
// @Param search query string false "Filter by email or name"
// @Success 200 {array} model.User
// @Failure 403 {object} errors.StatusResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return respondError(c, err, "list users")
	}
	return c.JSON(http.StatusOK, users)
}

// GetUser godoc
// @Summary Get user details (admin)
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.StatusResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return respondBadRequest(c, "Invalid user id")
	}

	user, err := h.userService.GetUser(c.Request().Context(), uint(id))
	if err != nil {
		return respondError(c, err, "get user")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":           user.ID,
		"email":        user.Email,
		"first_name":   user.FirstName,
		"last_name":    user.LastName,
		"name":         user.Name,
		"role":         user.Role,
		"is_suspended": user.IsSuspended,
		"created_at":   user.CreatedAt,
		"plan_name":    "Free Trial",
	})
}

// SuspendUser godoc
// @Summary Suspend a user (admin)
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} errors.StatusResponse
// @Router /users/{id}/suspend [post]
func (h *UserHandler) SuspendUser(c echo.Context) error {
	return h.setSuspension(c, true, "User suspended successfully")
}

// UnsuspendUser godoc
// @Summary Unsuspend a user (admin)
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} errors.StatusResponse
// @Router /users/{id}/unsuspend [post]
func (h *UserHandler) UnsuspendUser(c echo.Context) error {
	return h.setSuspension(c, false, "User unsuspended successfully")
}

func (h *UserHandler) setSuspension(c echo.Context, suspended bool, message string) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return respondBadRequest(c, "Invalid user id")
	}

	if err := h.userService.SetSuspension(c.Request().Context(), uint(id), suspended); err != nil {
		return respondError(c, err, "set suspension")
	}
	return c.JSON(http.StatusOK, apperrors.Success(message))
}
