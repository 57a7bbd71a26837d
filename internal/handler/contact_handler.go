package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/Raffi85/NetDash-Website/internal/errors"
	"github.com/Raffi85/NetDash-Website/internal/service"
)

// ContactHandler handles contact form endpoints.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// CreateContactRequest carries a contact form submission.
type CreateContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// CreateContact godoc
// @Summary Submit a contact message
// @Tags contacts
// @Accept json
// @Produce json
// @Param request body CreateContactRequest true "Contact data"
// @Success 201 {object} errors.StatusResponse
// @Failure 400 {object} errors.StatusResponse
// @Router /contact [post]
func (h *ContactHandler) CreateContact(c echo.Context) error {
	var req CreateContactRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, "Name, email and message are required")
	}

	if err := h.contactService.CreateContact(c.Request().Context(), req.Name, req.Email, req.Message); err != nil {
		return respondError(c, err, "create contact")
	}
	return c.JSON(http.StatusCreated, apperrors.Success("Contact message sent successfully"))
}

// ListContacts godoc
// @Summary List contact messages (admin)
// @Tags contacts
// @Produce json
// @Success 200 {array} model.Contact
// @Failure 403 {object} errors.StatusResponse
// @Router /contacts [get]
func (h *ContactHandler) ListContacts(c echo.Context) error {
	contacts, err := h.contactService.ListContacts(c.Request().Context())
	if err != nil {
		return respondError(c, err, "list contacts")
	}
	return c.JSON(http.StatusOK, contacts)
}
