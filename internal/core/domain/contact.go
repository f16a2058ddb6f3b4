package domain

import "time"

// Contact is an inbound contact-form submission. It has no relationship to
// any user record.
type Contact struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Message   string    `json:"message" bson:"message"`
	CreatedAt time.Time `json:"created_at" bson:"createdAt"`
}
