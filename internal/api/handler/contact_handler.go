package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bazarhub/marketplace-api/internal/api/metrics"
	"github.com/bazarhub/marketplace-api/internal/core/domain"
	"github.com/bazarhub/marketplace-api/internal/core/ports"
)

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

type contactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type contactPageResponse struct {
	Items      []contactResponse `json:"items"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

func toContactResponse(ct domain.Contact) contactResponse {
	return contactResponse{
		ID:        ct.ID,
		Name:      ct.Name,
		Email:     ct.Email,
		Message:   ct.Message,
		CreatedAt: ct.CreatedAt,
	}
}

// ContactHandler serves the public contact form and the admin-facing inbox.
type ContactHandler struct {
	contacts ports.ContactService
}

func NewContactHandler(contacts ports.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// Submit accepts a contact-form submission from anyone, logged in or not.
//
// @Summary      Submit the contact form
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Submission"
// @Success      201   {object}  contactResponse
// @Failure      400   {object}  errorResponse
// @Router       /contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ct, err := h.contacts.Submit(c.Request().Context(), ports.SubmitContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		return err
	}
	metrics.ContactSubmissionsTotal.Inc()
	return c.JSON(http.StatusCreated, toContactResponse(*ct))
}

// List pages over submissions for the operators, newest first.
//
// @Summary      List contact submissions
// @Tags         contact
// @Produce      json
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  contactPageResponse
// @Router       /admin/contacts [get]
func (h *ContactHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.contacts.List(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}

	items := make([]contactResponse, 0, len(result.Items))
	for _, ct := range result.Items {
		items = append(items, toContactResponse(*ct))
	}
	return c.JSON(http.StatusOK, contactPageResponse{
		Items:      items,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}
