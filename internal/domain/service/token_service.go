package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the validated contents of an access token.
type Claims struct {
	AccountID uuid.UUID
	Roles     []string
	jwt.RegisteredClaims
}

// TokenService issues and validates bearer tokens. Account management lives elsewhere; the
// service only needs to trust tokens signed with the shared access secret.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for an account and its roles.
	GenerateAccessToken(accountID uuid.UUID, roles []string) (string, error)

	// ValidateToken checks the signature, expiry and type of an access token.
	ValidateToken(tokenString string) (*Claims, error)
}
