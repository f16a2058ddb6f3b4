package ports

import (
	"context"

	"github.com/bazarhub/marketplace-api/internal/core/domain"
)

// AdminRepository defines persistence operations for admin records.
// A unique index on the user reference keeps admin-per-user at most one;
// Create surfaces a duplicate as domain.ErrAdminExists.
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
	FindByID(ctx context.Context, id string) (*domain.Admin, error)
	FindByUserID(ctx context.Context, userID string) (*domain.Admin, error)
	UpdatePermissions(ctx context.Context, id string, perms domain.Permissions) error
}

// AuditRepository is append-only: entries are inserted and read, never
// mutated or deleted.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditLog) error
	// List returns entries newest first.
	List(ctx context.Context, page, limit int) ([]*domain.AuditLog, int64, error)
}
