// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, JWT token generation and validation,
// and other common operations.
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

// UserCtxKey is the key used to store the authenticated operator in the
// context. Used together with GetUserFromContext for type-safe retrieval.
var UserCtxKey = contextKey("user")

// SessionUser is the authenticated operator identity carried through the
// request context: the login from the token subject and the role capability.
type SessionUser struct {
	Login string
	Role  string
}

// WithUser returns a child context carrying the authenticated operator.
func WithUser(ctx context.Context, user SessionUser) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}

// GetUserFromContext retrieves the authenticated operator from the context.
//
// Returns the operator and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func GetUserFromContext(ctx context.Context) (SessionUser, bool) {
	user, ok := ctx.Value(UserCtxKey).(SessionUser)
	return user, ok
}
