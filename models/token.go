package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the JWT claim set issued by the login gate. The operator
// login travels in the standard "sub" claim; the role capability is a custom
// claim checked by the admin-gated custody transitions.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Role is RoleOfficer or RoleAdmin.
	Role string `json:"role"`
}

// Token wraps a session JWT with convenience accessors.
//
// SignedString holds the compact serialized form (header.payload.signature)
// ready to be transmitted in the Authorization header. Login and Role are
// cached copies of the corresponding claims, populated during generation or
// parsing to avoid repeated claim lookups.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON because only the compact string form is meaningful
	// outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Login is the operator identifier from the "sub" claim.
	Login string `json:"-"`

	// Role is the capability from the custom "role" claim.
	Role string `json:"-"`
}

// GetLogin extracts the operator login from the token's "sub" claim.
func (t *Token) GetLogin() (string, error) {
	login, err := t.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting login from token: %w", err)
	}
	return login, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
