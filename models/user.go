package models

import "time"

// User is an account in the identity store. Accounts exist solely to scope
// saved menu records to their owner; nothing else in the application is
// gated on identity.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is used at the persistence layer and as the menu record owner value.
	UserID int64 `json:"-"`

	// Email is the unique sign-in identifier.
	Email string `json:"email"`

	// Password carries the plaintext password only on inbound
	// register/login requests. It is never persisted or returned.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt digest stored for the account.
	// Never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the account creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
