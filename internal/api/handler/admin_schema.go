package handler

import (
	"time"

	"github.com/bazarhub/marketplace-api/internal/core/domain"
)

type permissionsRequest struct {
	ManageUsers   bool `json:"manage_users"`
	ManageContent bool `json:"manage_content"`
	ViewAuditLogs bool `json:"view_audit_logs"`
	SuperAdmin    bool `json:"super_admin"`
}

type clientStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved suspended"`
}

type suspendRequest struct {
	Suspended *bool `json:"suspended" validate:"required"`
}

type banRequest struct {
	Days int `json:"days" validate:"min=0"`
}

type adminResponse struct {
	ID          string             `json:"id"`
	UserID      string             `json:"user_id"`
	Permissions permissionsRequest `json:"permissions"`
	AssignedAt  time.Time          `json:"assigned_at"`
}

type userListResponse struct {
	Items      []userResponse `json:"items"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}

type auditLogResponse struct {
	ID          string    `json:"id"`
	Action      string    `json:"action"`
	TargetUser  string    `json:"target_user,omitempty"`
	PerformedBy string    `json:"performed_by,omitempty"`
	Details     string    `json:"details,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

type auditPageResponse struct {
	Items      []auditLogResponse `json:"items"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
}

func toAdminResponse(a domain.Admin) adminResponse {
	return adminResponse{
		ID:     a.ID,
		UserID: a.UserID,
		Permissions: permissionsRequest{
			ManageUsers:   a.Permissions.ManageUsers,
			ManageContent: a.Permissions.ManageContent,
			ViewAuditLogs: a.Permissions.ViewAuditLogs,
			SuperAdmin:    a.Permissions.SuperAdmin,
		},
		AssignedAt: a.AssignedAt,
	}
}

func toAuditLogResponse(l domain.AuditLog) auditLogResponse {
	return auditLogResponse{
		ID:          l.ID,
		Action:      l.Action,
		TargetUser:  l.TargetUser,
		PerformedBy: l.PerformedBy,
		Details:     l.Details,
		Timestamp:   l.Timestamp,
	}
}
