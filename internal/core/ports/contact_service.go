package ports

import (
	"context"

	"github.com/bazarhub/marketplace-api/internal/core/domain"
)

// SubmitContactInput carries a contact-form submission.
type SubmitContactInput struct {
	Name    string
	Email   string
	Message string
}

// ContactPage is one page of submissions, newest first.
type ContactPage struct {
	Items      []*domain.Contact
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ContactService persists submissions and notifies the operators.
type ContactService interface {
	Submit(ctx context.Context, input SubmitContactInput) (*domain.Contact, error)
	List(ctx context.Context, page, limit int) (*ContactPage, error)
}
