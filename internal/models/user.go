package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered user in the system
type User struct {
	ID                     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email                  string             `bson:"email" json:"email"`
	PasswordHash           string             `bson:"passwordHash" json:"-"`
	Role                   string             `bson:"role" json:"role"`
	SubscriptionExpiryDate *time.Time         `bson:"subscriptionExpiryDate,omitempty" json:"subscription_expiry_date,omitempty"`
	FetchCount             int                `bson:"fetchCount" json:"fetch_count"`
	CreatedAt              time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt              time.Time          `bson:"updatedAt" json:"updated_at"`
}

// Role constants
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleUser   = "user"
)

// IsValidRole checks if a role is valid
func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleEditor, RoleUser:
		return true
	default:
		return false
	}
}

// HasUnlimitedAccess reports whether the user holds an active subscription at
// the given instant. True iff the expiry date is set and strictly in the future.
func (u *User) HasUnlimitedAccess(now time.Time) bool {
	return u.SubscriptionExpiryDate != nil && u.SubscriptionExpiryDate.After(now)
}
