package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/Raffi85/NetDash-Website/internal/errors"
	"github.com/Raffi85/NetDash-Website/internal/model"
	"github.com/Raffi85/NetDash-Website/internal/service"
	"github.com/Raffi85/NetDash-Website/internal/session"
)

// AuthHandler handles registration, login and session endpoints.
type AuthHandler struct {
	authService  service.AuthService
	resetService service.ResetService
	secureCookie bool
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, resetService service.ResetService, secureCookie bool) *AuthHandler {
	return &AuthHandler{authService: authService, resetService: resetService, secureCookie: secureCookie}
}

// RegisterRequest represents a registration request.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Role      string `json:"role"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Remember bool   `json:"remember"`
}

// ResetRequest asks for a password reset link.
type ResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// NewPasswordRequest carries the replacement password for a reset token.
type NewPasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

// UserResponse is the claim set returned to clients. It never includes the
// password hash.
type UserResponse struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Name      string `json:"name"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func toUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		Name:      u.Name,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} errors.StatusResponse
// @Failure 400 {object} errors.StatusResponse
// @Router /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, "All fields are required")
	}

	_, err := h.authService.Register(c.Request().Context(), service.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
	})
	if err != nil {
		return respondError(c, err, "register")
	}

	return c.JSON(http.StatusCreated, apperrors.Success("User registered successfully"))
}

// Login godoc
// @Summary Authenticate and establish a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.StatusResponse
// @Failure 401 {object} errors.StatusResponse
// @Failure 403 {object} errors.StatusResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, "Email and password are required")
	}

	user, sessionID, err := h.authService.Login(c.Request().Context(), req.Email, req.Password, req.Remember)
	if err != nil {
		return respondError(c, err, "login")
	}

	session.WriteCookie(c, sessionID, req.Remember, h.secureCookie)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "success",
		"user":   toUserResponse(user),
	})
}

// Logout godoc
// @Summary Destroy the current session
// @Tags auth
// @Produce json
// @Success 200 {object} errors.StatusResponse
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if sessionID, ok := session.IDFromContext(c); ok {
		if err := h.authService.Logout(c.Request().Context(), sessionID); err != nil {
			return respondError(c, err, "logout")
		}
	}
	session.ClearCookie(c, h.secureCookie)
	return c.JSON(http.StatusOK, apperrors.Success("Logged out successfully"))
}

// CheckAuth godoc
// @Summary Report current authentication state
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /check-auth [get]
func (h *AuthHandler) CheckAuth(c echo.Context) error {
	claims, ok := session.FromContext(c)
	if !ok {
		return c.JSON(http.StatusOK, map[string]interface{}{"authenticated": false})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"authenticated": true,
		"user": map[string]interface{}{
			"id":    claims.UserID,
			"email": claims.Email,
			"name":  claims.Name,
			"role":  claims.Role,
		},
	})
}

// RequestReset godoc
// @Summary Request a password reset link
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ResetRequest true "Account email"
// @Success 200 {object} errors.StatusResponse
// @Failure 400 {object} errors.StatusResponse
// @Router /reset-password [post]
func (h *AuthHandler) RequestReset(c echo.Context) error {
	var req ResetRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, "Email is required")
	}

	if err := h.resetService.RequestReset(c.Request().Context(), req.Email); err != nil {
		return respondError(c, err, "request password reset")
	}

	return c.JSON(http.StatusOK, apperrors.Success("If your email is registered, you will receive reset instructions"))
}

// ConsumeReset godoc
// @Summary Reset a password with a token
// @Tags auth
// @Accept json
// @Produce json
// @Param token path string true "Reset token"
// @Param request body NewPasswordRequest true "New password"
// @Success 200 {object} errors.StatusResponse
// @Failure 400 {object} errors.StatusResponse
// @Router /reset-password/{token} [post]
func (h *AuthHandler) ConsumeReset(c echo.Context) error {
	var req NewPasswordRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, "Password is required")
	}

	if err := h.resetService.ConsumeReset(c.Request().Context(), c.Param("token"), req.Password); err != nil {
		return respondError(c, err, "consume password reset")
	}

	return c.JSON(http.StatusOK, apperrors.Success("Password has been reset successfully"))
}

// RedirectAfterLogin godoc
// @Summary Resolve the post-login landing page for the caller's role
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /redirect-after-login [get]
func (h *AuthHandler) RedirectAfterLogin(c echo.Context) error {
	claims, _ := session.FromContext(c)

	redirect := "/"
	switch claims.Role {
	case model.RolePlatformAdmin:
		redirect = "/admin_dashboard.html"
	case model.RoleCompanyAdmin:
		redirect = "/company_dashboard.html"
	}
	return c.JSON(http.StatusOK, map[string]string{"redirect": redirect})
}
