package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bazarhub/marketplace-api/internal/core/domain"
	"github.com/bazarhub/marketplace-api/internal/core/ports"
)

type stubAdminRepo struct {
	admins map[string]*domain.Admin
	nextID int
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{admins: make(map[string]*domain.Admin)}
}

func (r *stubAdminRepo) Create(_ context.Context, admin *domain.Admin) (*domain.Admin, error) {
	for _, a := range r.admins {
		if a.UserID == admin.UserID {
			return nil, domain.ErrAdminExists
		}
	}
	r.nextID++
	copy := *admin
	copy.ID = fmt.Sprintf("admin_%d", r.nextID)
	r.admins[copy.ID] = &copy
	clone := copy
	return &clone, nil
}

func (r *stubAdminRepo) FindByID(_ context.Context, id string) (*domain.Admin, error) {
	a, ok := r.admins[id]
	if !ok {
		return nil, domain.ErrAdminNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAdminRepo) FindByUserID(_ context.Context, userID string) (*domain.Admin, error) {
	for _, a := range r.admins {
		if a.UserID == userID {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrAdminNotFound
}

func (r *stubAdminRepo) UpdatePermissions(_ context.Context, id string, perms domain.Permissions) error {
	a, ok := r.admins[id]
	if !ok {
		return domain.ErrAdminNotFound
	}
	a.Permissions = perms
	a.UpdatedAt = time.Now().UTC()
	return nil
}

type stubAuditRepo struct {
	entries []*domain.AuditLog
}

func (r *stubAuditRepo) Insert(_ context.Context, entry *domain.AuditLog) error {
	r.entries = append(r.entries, entry)
	return nil
}

func (r *stubAuditRepo) List(_ context.Context, page, limit int) ([]*domain.AuditLog, int64, error) {
	out := make([]*domain.AuditLog, 0, len(r.entries))
	for i := len(r.entries) - 1; i >= 0; i-- {
		out = append(out, r.entries[i])
	}
	return out, int64(len(r.entries)), nil
}

// syncRecorder writes audit entries straight to the repo, standing in for the
// queue-backed writer so tests can assert on the trail immediately.
type syncRecorder struct {
	repo *stubAuditRepo
}

func (r *syncRecorder) Record(entry *domain.AuditLog) {
	_ = r.repo.Insert(context.Background(), entry)
}

func newTestAdminService(users *stubUserRepo) (*AdminService, *stubAuditRepo) {
	audit := &stubAuditRepo{}
	svc := NewAdminService(users, newStubAdminRepo(), audit, &syncRecorder{repo: audit}, newStubStandingCache(), zerolog.Nop())
	return svc, audit
}

func seedUser(t *testing.T, users *stubUserRepo, email string) *domain.User {
	t.Helper()
	user, err := users.Create(context.Background(), &domain.User{
		FirstName: "Nora",
		Email:     email,
		Password:  "$2a$10$fakehashfakehashfakehashfakehashfakehashfakehashfak",
		Role:      domain.RoleUser,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func lastAudit(t *testing.T, audit *stubAuditRepo) *domain.AuditLog {
	t.Helper()
	if len(audit.entries) == 0 {
		t.Fatalf("expected an audit entry")
	}
	return audit.entries[len(audit.entries)-1]
}

func TestAdminService_Promote(t *testing.T) {
	users := newStubUserRepo()
	svc, audit := newTestAdminService(users)
	user := seedUser(t, users, "nora@example.com")

	admin, err := svc.Promote(context.Background(), "actor_1", user.ID)
	if err != nil {
		t.Fatalf("promote failed: %v", err)
	}
	if admin.UserID != user.ID {
		t.Fatalf("admin references %s, want %s", admin.UserID, user.ID)
	}
	if !admin.Permissions.ManageUsers || !admin.Permissions.ViewAuditLogs {
		t.Fatalf("default permissions missing moderation flags: %+v", admin.Permissions)
	}
	if admin.Permissions.ManageContent || admin.Permissions.SuperAdmin {
		t.Fatalf("default permissions must not grant elevated flags: %+v", admin.Permissions)
	}
	if users.users[user.ID].Role != domain.RoleAdmin {
		t.Fatalf("user role not flipped to admin")
	}

	entry := lastAudit(t, audit)
	if entry.Action != "user_promoted" || entry.TargetUser != user.ID || entry.PerformedBy != "actor_1" {
		t.Fatalf("unexpected audit entry: %+v", entry)
	}
}

func TestAdminService_Promote_Twice(t *testing.T) {
	users := newStubUserRepo()
	svc, _ := newTestAdminService(users)
	user := seedUser(t, users, "olga@example.com")

	if _, err := svc.Promote(context.Background(), "actor_1", user.ID); err != nil {
		t.Fatalf("first promote failed: %v", err)
	}
	if _, err := svc.Promote(context.Background(), "actor_1", user.ID); !errors.Is(err, domain.ErrAdminExists) {
		t.Fatalf("expected ErrAdminExists, got %v", err)
	}
}

func TestAdminService_SetPermissions(t *testing.T) {
	users := newStubUserRepo()
	svc, audit := newTestAdminService(users)
	user := seedUser(t, users, "pam@example.com")

	admin, err := svc.Promote(context.Background(), "actor_1", user.ID)
	if err != nil {
		t.Fatalf("promote failed: %v", err)
	}

	perms := domain.Permissions{ManageUsers: true, ManageContent: true, ViewAuditLogs: true, SuperAdmin: true}
	if err := svc.SetPermissions(context.Background(), "actor_1", admin.ID, perms); err != nil {
		t.Fatalf("set permissions failed: %v", err)
	}

	entry := lastAudit(t, audit)
	if entry.Action != "permissions_changed" || entry.TargetUser != user.ID {
		t.Fatalf("unexpected audit entry: %+v", entry)
	}
	if !strings.Contains(entry.Details, "superAdmin=true") {
		t.Fatalf("details missing flag state: %q", entry.Details)
	}
}

func TestAdminService_SetClientStatus(t *testing.T) {
	users := newStubUserRepo()
	svc, audit := newTestAdminService(users)

	client, err := users.Create(context.Background(), &domain.User{
		FirstName: "Quinn",
		Email:     "quinn@example.com",
		Password:  "hash",
		Role:      domain.RoleClient,
		Kind:      domain.KindClient,
		Client:    &domain.ClientProfile{Status: domain.ClientPending},
	})
	if err != nil {
		t.Fatalf("seed client: %v", err)
	}

	if err := svc.SetClientStatus(context.Background(), "actor_1", client.ID, domain.ClientApproved); err != nil {
		t.Fatalf("set status failed: %v", err)
	}
	stored := users.users[client.ID]
	if stored.Client.Status != domain.ClientApproved {
		t.Fatalf("status not applied: %s", stored.Client.Status)
	}
	if !stored.Approved {
		t.Fatalf("approved flag must track approved status")
	}

	entry := lastAudit(t, audit)
	if entry.Action != "client_status_changed" {
		t.Fatalf("unexpected audit action: %s", entry.Action)
	}

	if err := svc.SetClientStatus(context.Background(), "actor_1", client.ID, "invalid"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAdminService_SetClientStatus_NotClient(t *testing.T) {
	users := newStubUserRepo()
	svc, _ := newTestAdminService(users)
	user := seedUser(t, users, "rita@example.com")

	if err := svc.SetClientStatus(context.Background(), "actor_1", user.ID, domain.ClientApproved); !errors.Is(err, domain.ErrNotClient) {
		t.Fatalf("expected ErrNotClient, got %v", err)
	}
}

func TestAdminService_SuspendAndBan(t *testing.T) {
	users := newStubUserRepo()
	svc, audit := newTestAdminService(users)
	user := seedUser(t, users, "sam@example.com")
	now := time.Now().UTC()

	if err := svc.SetSuspended(context.Background(), "actor_1", user.ID, true); err != nil {
		t.Fatalf("suspend failed: %v", err)
	}
	if !users.users[user.ID].Suspended {
		t.Fatalf("suspended flag not set")
	}
	if lastAudit(t, audit).Action != "user_suspended" {
		t.Fatalf("unexpected audit action")
	}

	if err := svc.SetSuspended(context.Background(), "actor_1", user.ID, false); err != nil {
		t.Fatalf("unsuspend failed: %v", err)
	}
	if lastAudit(t, audit).Action != "user_unsuspended" {
		t.Fatalf("unexpected audit action")
	}

	if err := svc.BanUser(context.Background(), "actor_1", user.ID, 7); err != nil {
		t.Fatalf("ban failed: %v", err)
	}
	ban := users.users[user.ID].Ban
	if !ban.Status || ban.Days != 7 || !ban.ActiveAt(now) {
		t.Fatalf("unexpected ban state: %+v", ban)
	}
	entry := lastAudit(t, audit)
	if entry.Action != "user_banned" || !strings.Contains(entry.Details, "7 days") {
		t.Fatalf("unexpected audit entry: %+v", entry)
	}

	if err := svc.BanUser(context.Background(), "actor_1", user.ID, -1); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for negative days, got %v", err)
	}

	if err := svc.UnbanUser(context.Background(), "actor_1", user.ID); err != nil {
		t.Fatalf("unban failed: %v", err)
	}
	if users.users[user.ID].Ban.Status {
		t.Fatalf("ban not cleared")
	}
}

func TestAdminService_ListAuditLogs(t *testing.T) {
	users := newStubUserRepo()
	svc, _ := newTestAdminService(users)
	user := seedUser(t, users, "tess@example.com")

	_ = svc.SetSuspended(context.Background(), "actor_1", user.ID, true)
	_ = svc.SetSuspended(context.Background(), "actor_1", user.ID, false)

	page, err := svc.ListAuditLogs(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Total != 2 {
		t.Fatalf("expected 2 entries, got %d", page.Total)
	}
	if page.Page != 1 || page.Limit != defaultPageLimit {
		t.Fatalf("page defaults not applied: page=%d limit=%d", page.Page, page.Limit)
	}
	// Newest first.
	if page.Items[0].Action != "user_unsuspended" {
		t.Fatalf("expected newest entry first, got %s", page.Items[0].Action)
	}
}

func TestAdminService_ListUsers_PageCap(t *testing.T) {
	users := newStubUserRepo()
	svc, _ := newTestAdminService(users)
	seedUser(t, users, "uma@example.com")

	result, err := svc.ListUsers(context.Background(), ports.ListUsersInput{Limit: 10000})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if result.Limit != maxPageLimit {
		t.Fatalf("limit not capped: %d", result.Limit)
	}
}
