package ports

import (
	"context"

	"github.com/bazarhub/marketplace-api/internal/core/domain"
)

// ContactRepository stores inbound contact-form submissions.
type ContactRepository interface {
	Insert(ctx context.Context, contact *domain.Contact) (*domain.Contact, error)
	List(ctx context.Context, page, limit int) ([]*domain.Contact, int64, error)
}
