package ports

import (
	"context"

	"github.com/bazarhub/marketplace-api/internal/core/domain"
)

// ListUsersFilter carries query parameters for listing accounts.
// Filtering by client status only applies to records with kind="Client".
type ListUsersFilter struct {
	Role   string // optional: filter by role tag
	Kind   string // optional: "Client" restricts to client accounts
	Status string // optional: client status (pending/approved/suspended)
	Search string // optional: partial match on firstName, businessName or email
	Page   int    // 1-based
	Limit  int    // max rows per page (capped by the service)
}

// UserRepository defines persistence operations for the user collection.
// Both user variants live in the same collection; the unique email index is
// the only guard against concurrent duplicate registrations, so Create and
// Update surface duplicate-key failures as domain.ErrEmailTaken.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// Update replaces the stored document for user.ID.
	Update(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// List returns a page of users matching filter and the total count.
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, int64, error)
}
