// Package utils provides general-purpose helper utilities
// used across different parts of the application:
// type-safe context keys, bcrypt password hashing, JWT token generation
// and validation, HTTP response writing, and outbound HTTP client setup.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the access-guard middleware stores the
// verified subject of the session token. Downstream handlers must read the
// identity from here and never from any client-supplied field.
var UserIDCtxKey = contextKey("userID")

// SetUserIDToContext returns a child context carrying the verified user
// identifier.
func SetUserIDToContext(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext retrieves the verified user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true  — value is found and has the correct int64 type
//   - ok == false — value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
