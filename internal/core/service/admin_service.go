package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bazarhub/marketplace-api/internal/core/domain"
	"github.com/bazarhub/marketplace-api/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// AuditRecorder decouples the service from how audit entries are written.
// The queue-backed writer preserves per-target ordering and never blocks the
// moderation path.
type AuditRecorder interface {
	Record(entry *domain.AuditLog)
}

// AdminService implements moderation use cases. Every mutating operation
// records an audit entry naming the acting admin and the affected user.
type AdminService struct {
	users     ports.UserRepository
	admins    ports.AdminRepository
	auditLog  ports.AuditRepository
	recorder  AuditRecorder
	standings StandingCache
	logger    zerolog.Logger
}

func NewAdminService(
	users ports.UserRepository,
	admins ports.AdminRepository,
	auditLog ports.AuditRepository,
	recorder AuditRecorder,
	standings StandingCache,
	logger zerolog.Logger,
) *AdminService {
	return &AdminService{
		users:     users,
		admins:    admins,
		auditLog:  auditLog,
		recorder:  recorder,
		standings: standings,
		logger:    logger,
	}
}

func (s *AdminService) audit(action, targetUser, actorID, details string) {
	s.recorder.Record(&domain.AuditLog{
		Action:      action,
		TargetUser:  targetUser,
		PerformedBy: actorID,
		Details:     details,
		Timestamp:   time.Now().UTC(),
	})
}

// Promote creates the admin record with default permissions and flips the
// user's role to "admin" in the same operation, keeping the role tag and the
// admin collection consistent. The unique index on the user reference rejects
// a second promotion.
func (s *AdminService) Promote(ctx context.Context, actorID, userID string) (*domain.Admin, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	admin, err := s.admins.Create(ctx, &domain.Admin{
		UserID:      userID,
		Permissions: domain.DefaultPermissions(),
		AssignedAt:  now,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	user.Role = domain.RoleAdmin
	user.UpdatedAt = now
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.audit("user_promoted", userID, actorID, "promoted to admin with default permissions")
	s.logger.Info().Str("user_id", userID).Str("admin_id", admin.ID).Msg("user promoted to admin")
	return admin, nil
}

func (s *AdminService) SetPermissions(ctx context.Context, actorID, adminID string, perms domain.Permissions) error {
	admin, err := s.admins.FindByID(ctx, adminID)
	if err != nil {
		return err
	}

	if err := s.admins.UpdatePermissions(ctx, adminID, perms); err != nil {
		return err
	}

	s.audit("permissions_changed", admin.UserID, actorID,
		fmt.Sprintf("manageUsers=%t manageContent=%t viewAuditLogs=%t superAdmin=%t",
			perms.ManageUsers, perms.ManageContent, perms.ViewAuditLogs, perms.SuperAdmin))
	return nil
}

func (s *AdminService) SetClientStatus(ctx context.Context, actorID, userID string, status domain.ClientStatus) error {
	if !status.Valid() {
		return domain.ErrValidation
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.IsClient() {
		return domain.ErrNotClient
	}

	user.Client.Status = status
	user.Approved = status == domain.ClientApproved
	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}
	s.invalidateStanding(ctx, userID)

	s.audit("client_status_changed", userID, actorID, "status set to "+string(status))
	return nil
}

func (s *AdminService) SetSuspended(ctx context.Context, actorID, userID string, suspended bool) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	user.Suspended = suspended
	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}
	s.invalidateStanding(ctx, userID)

	action := "user_suspended"
	if !suspended {
		action = "user_unsuspended"
	}
	s.audit(action, userID, actorID, "")
	return nil
}

func (s *AdminService) BanUser(ctx context.Context, actorID, userID string, days int) error {
	if days < 0 {
		return domain.ErrValidation
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	user.Ban = domain.Ban{Status: true, Days: days, BannedAt: now}
	user.UpdatedAt = now
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}
	s.invalidateStanding(ctx, userID)

	details := "indefinite ban"
	if days > 0 {
		details = fmt.Sprintf("banned for %d days", days)
	}
	s.audit("user_banned", userID, actorID, details)
	s.logger.Info().Str("user_id", userID).Int("days", days).Msg("user banned")
	return nil
}

func (s *AdminService) UnbanUser(ctx context.Context, actorID, userID string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	user.Ban = domain.Ban{}
	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}
	s.invalidateStanding(ctx, userID)

	s.audit("user_unbanned", userID, actorID, "")
	return nil
}

func (s *AdminService) invalidateStanding(ctx context.Context, userID string) {
	if s.standings == nil {
		return
	}
	if err := s.standings.Invalidate(ctx, userID); err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("failed to invalidate standing cache")
	}
}

func (s *AdminService) ListUsers(ctx context.Context, input ports.ListUsersInput) (*ports.ListUsersResult, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	users, total, err := s.users.List(ctx, ports.ListUsersFilter{
		Role:   input.Role,
		Kind:   input.Kind,
		Status: input.Status,
		Search: input.Search,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	return &ports.ListUsersResult{
		Items:      users,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *AdminService) ListAuditLogs(ctx context.Context, page, limit int) (*ports.AuditPage, error) {
	page, limit = normalizePage(page, limit)

	entries, total, err := s.auditLog.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	return &ports.AuditPage{
		Items:      entries,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
