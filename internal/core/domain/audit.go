package domain

import "time"

// AuditLog is one append-only record of an administrative action. Entries are
// never updated or deleted once written.
type AuditLog struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Action      string    `json:"action" bson:"action"`
	TargetUser  string    `json:"target_user,omitempty" bson:"targetUser,omitempty"`
	PerformedBy string    `json:"performed_by,omitempty" bson:"performedBy,omitempty"`
	Details     string    `json:"details,omitempty" bson:"details,omitempty"`
	Timestamp   time.Time `json:"timestamp" bson:"timestamp"`
}
