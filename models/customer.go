package models

import "time"

// Customer is keyed by the identity provider's uid. Appointment history
// is never stored here; it is always computed by query.
type Customer struct {
	ID         string    `bson:"id" json:"id"` // auth uid
	Name       string    `bson:"name" json:"name"`
	Email      string    `bson:"email" json:"email"`
	Phone      string    `bson:"phone" json:"phone"`
	FCMToken   string    `bson:"fcmToken,omitempty" json:"fcmToken,omitempty"`
	LineUserID string    `bson:"lineUserId,omitempty" json:"lineUserId,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Identity is the request-scoped result of verifying a bearer token.
// It is resolved once per request by the auth middleware and carried in
// the request context, never in a global.
type Identity struct {
	UID     string `json:"uid"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}
