package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when the email or password is wrong.
	// The message deliberately does not distinguish an unknown email from a
	// wrong password.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// ErrAccountSuspended is returned when a correct password hits a
	// suspended account.
	ErrAccountSuspended = errors.New("Account is suspended")
	// ErrEmailExists is returned when registering an already-used email.
	ErrEmailExists = errors.New("Email already exists")
	// ErrUserNotFound is returned when a user record is missing.
	ErrUserNotFound = errors.New("User not found")
	// ErrInvalidOrExpiredToken is returned for unknown, already-consumed or
	// expired reset tokens.
	ErrInvalidOrExpiredToken = errors.New("Invalid or expired token")
	// ErrWeakPassword is returned when a new password is below the minimum length.
	ErrWeakPassword = errors.New("Password must be at least 8 characters")
	// ErrForbidden is returned when the caller's role does not permit the operation.
	ErrForbidden = errors.New("Unauthorized to perform this action")
	// ErrPurchaseNotFound is returned when a purchase record is missing.
	ErrPurchaseNotFound = errors.New("Purchase not found")
	// ErrPlanNotFound is returned when a plan record is missing.
	ErrPlanNotFound = errors.New("Plan not found")
	// ErrInvalidStatus is returned for an unrecognized purchase status.
	ErrInvalidStatus = errors.New("Invalid status")
	// ErrDemoNotFound is returned for unknown or expired demo tokens.
	ErrDemoNotFound = errors.New("Invalid or expired demo")
)

// StatusResponse is the standard response envelope.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Error builds an error envelope.
func Error(message string) StatusResponse {
	return StatusResponse{Status: "error", Message: message}
}

// Success builds a success envelope.
func Success(message string) StatusResponse {
	return StatusResponse{Status: "success", Message: message}
}

// HTTPStatus maps domain errors to HTTP status codes. Unrecognized errors
// map to 500; handlers log the underlying error and return a generic message.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrAccountSuspended):
		return http.StatusForbidden
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrEmailExists),
		errors.Is(err, ErrInvalidOrExpiredToken),
		errors.Is(err, ErrWeakPassword),
		errors.Is(err, ErrInvalidStatus):
		return http.StatusBadRequest
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrPurchaseNotFound),
		errors.Is(err, ErrPlanNotFound),
		errors.Is(err, ErrDemoNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
