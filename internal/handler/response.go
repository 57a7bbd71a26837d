package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/Raffi85/NetDash-Website/internal/errors"
)

// respondError translates a service error into the standard envelope.
// Known domain errors surface their own message; anything else is logged
// with full detail and reported as a generic 500.
func respondError(c echo.Context, err error, op string) error {
	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		slog.Error(op, "error", err, "path", c.Path())
		return c.JSON(status, apperrors.Error("An unexpected error occurred"))
	}
	return c.JSON(status, apperrors.Error(err.Error()))
}

func respondBadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, apperrors.Error(message))
}
