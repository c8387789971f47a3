package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by the access token.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a new signed access token for the given user.
	Generate(userID uuid.UUID) (string, error)

	// Validate checks the validity of a token string and returns its claims.
	Validate(tokenString string) (*Claims, error)
}
