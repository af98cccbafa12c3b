package models

import "time"

// Operator roles. Admin capability gates the approve/deny/revoke/verify
// custody transitions; officers may request access and unlock approved items.
const (
	RoleOfficer = "OFFICER"
	RoleAdmin   = "ADMIN"
)

// User represents an authenticated operator session subject.
//
// The login gate is simulated: any non-empty credentials are accepted after a
// fixed delay and no credential store exists. The record therefore carries
// only what the session token needs.
type User struct {
	// Login is the operator identifier entered at the login gate.
	Login string `json:"login"`

	// Password is only ever read during login and never stored.
	Password string `json:"password,omitempty"`

	// Role is either RoleOfficer or RoleAdmin.
	Role string `json:"role"`

	// AuthenticatedAt is when the simulated security check completed.
	AuthenticatedAt time.Time `json:"authenticated_at"`
}

// IsAdmin reports whether the user carries the admin capability.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
