package ports

import (
	"context"

	"github.com/bazarhub/marketplace-api/internal/core/domain"
)

// ListUsersInput carries parameters for the admin user listing.
type ListUsersInput struct {
	Role   string
	Kind   string
	Status string
	Search string
	Page   int
	Limit  int
}

// ListUsersResult is returned by ListUsers.
type ListUsersResult struct {
	Items      []*domain.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// AuditPage is one page of the audit trail, newest first.
type AuditPage struct {
	Items      []*domain.AuditLog
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// AdminService defines moderation use cases. Every mutating operation writes
// an audit entry recording the acting admin and the affected user.
type AdminService interface {
	// Promote creates the admin record with default permissions and sets the
	// user's role to "admin" in the same operation.
	Promote(ctx context.Context, actorID, userID string) (*domain.Admin, error)
	SetPermissions(ctx context.Context, actorID, adminID string, perms domain.Permissions) error

	// SetClientStatus drives the client visibility axis (pending/approved/
	// suspended). The target must be a client account.
	SetClientStatus(ctx context.Context, actorID, userID string, status domain.ClientStatus) error
	// SetSuspended drives the account-level lockout axis.
	SetSuspended(ctx context.Context, actorID, userID string, suspended bool) error
	// BanUser locks the account for the given number of days; zero means
	// indefinitely.
	BanUser(ctx context.Context, actorID, userID string, days int) error
	UnbanUser(ctx context.Context, actorID, userID string) error

	ListUsers(ctx context.Context, input ListUsersInput) (*ListUsersResult, error)
	ListAuditLogs(ctx context.Context, page, limit int) (*AuditPage, error)
}
