package model

import "time"

// Lead is a contact-form submission, stored locally and forwarded to the
// external CRM endpoint on a best-effort basis.
type Lead struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	SessionID string    `json:"sessionId,omitempty" bson:"sessionId,omitempty"`
	FullName  string    `json:"fullName" bson:"fullName"`
	Phone     string    `json:"phone" bson:"phone"`
	Email     string    `json:"email" bson:"email"`
	Message   string    `json:"message,omitempty" bson:"message,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
