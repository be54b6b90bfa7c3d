package auth

import (
	"fleet-management/fleetboard/internal/constants"

	"github.com/golang-jwt/jwt/v5"
)

// UserClaims is what handlers and middleware see of an authenticated caller.
type UserClaims interface {
	UserID() string
	Role() constants.AccessRole
	Source() string
	CanWrite() bool
}

// JWTClaims is the payload of a fleetboard bearer token.
type JWTClaims struct {
	RoleValue constants.AccessRole `json:"role"`
	jwt.RegisteredClaims
}

func (c *JWTClaims) UserID() string             { return c.Subject }
func (c *JWTClaims) Role() constants.AccessRole { return c.RoleValue }
func (c *JWTClaims) Source() string             { return "JWT" }
func (c *JWTClaims) CanWrite() bool             { return c.RoleValue.CanWrite() }
