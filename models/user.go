package models

import "time"

// User represents an account entity used for authentication and authorization.
// It owns zero or more cards and is never physically deleted.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique, lowercased login identifier.
	Email string `json:"email"`

	// Password carries the plaintext password on inbound register/login
	// requests only. It is never persisted and never serialized back.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of the password. It never leaves
	// the persistence layer.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// Public returns the projection of the user that is safe to return to
// callers: the plaintext password and hash are cleared.
func (u User) Public() User {
	u.Password = ""
	u.PasswordHash = ""
	return u
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
