package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims are the JWT claims the Identity Gate cares about. The subject
// claim is the opaque user identity every operation is scoped to.
type AccessClaims struct {
	jwt.RegisteredClaims
	Role  string `json:"role,omitempty"`
	Email string `json:"email,omitempty"`
}
