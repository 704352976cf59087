package entity

import (
	"time"
)

const (
	RoleUser     = "user"
	RoleAdmin    = "admin"
	RoleReporter = "reporter"
)

// Profile mirrors the auth provider's user with app-level attributes.
// ID equals the auth uid.
type Profile struct {
	ID                   string     `json:"id" firestore:"id"`
	Email                string     `json:"email" firestore:"email"`
	Role                 string     `json:"role" firestore:"role"`
	DisclaimerAccepted   bool       `json:"disclaimer_accepted" firestore:"disclaimerAccepted"`
	DisclaimerAcceptedAt *time.Time `json:"disclaimer_accepted_at,omitempty" firestore:"disclaimerAcceptedAt,omitempty"`
	CreatedAt            time.Time  `json:"created_at" firestore:"createdAt"`
}
