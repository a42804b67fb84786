package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is server-assigned at registration time and immutable afterwards.
	UserID int64 `json:"id"`

	// Username is the unique login identifier chosen at registration.
	// Immutable after creation.
	Username string `json:"username"`

	// Email is the unique contact address, compared case-insensitively.
	// Immutable after creation.
	Email string `json:"email"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name,omitempty"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// It is never serialized and must never be logged or returned.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
