package domain

import "time"

// Permissions is the admin capability set. Each flag toggles independently.
type Permissions struct {
	ManageUsers   bool `json:"manage_users" bson:"manageUsers"`
	ManageContent bool `json:"manage_content" bson:"manageContent"`
	ViewAuditLogs bool `json:"view_audit_logs" bson:"viewAuditLogs"`
	SuperAdmin    bool `json:"super_admin" bson:"superAdmin"`
}

// DefaultPermissions is what a freshly promoted admin receives: moderation and
// audit visibility, but no content control or super-privileges. Anything more
// requires explicit elevation.
func DefaultPermissions() Permissions {
	return Permissions{
		ManageUsers:   true,
		ManageContent: false,
		ViewAuditLogs: true,
		SuperAdmin:    false,
	}
}

// Admin links a user to its permission set. At most one admin record may
// reference a given user; the repository enforces this with a unique index.
type Admin struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	UserID      string      `json:"user_id" bson:"user"`
	Permissions Permissions `json:"permissions" bson:"permissions"`
	AssignedAt  time.Time   `json:"assigned_at" bson:"assignedAt"`
	CreatedAt   time.Time   `json:"created_at" bson:"createdAt"`
	UpdatedAt   time.Time   `json:"updated_at" bson:"updatedAt"`
}
