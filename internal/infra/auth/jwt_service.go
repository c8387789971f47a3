package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"

	"tienda/config"
	"tienda/internal/domain/service"
)

// accessTokenTTL is the fixed lifetime of an issued bearer token.
const accessTokenTTL = 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    string        // Process-wide signing secret, loaded once at startup.
	accessTTL time.Duration // Time-to-live for access tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:    cfg.SecretKey.Access,
		accessTTL: accessTokenTTL,
	}, nil
}

// Generate creates a signed HS256 access token carrying the user identity.
func (s *jwtService) Generate(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID.String(),             // Subject (who the token is for)
		"iat": now.Unix(),                  // Issued At
		"exp": now.Add(s.accessTTL).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// Validate checks the signature and expiry of a token string and extracts its claims.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, pkgerrors.New("token is not valid")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, pkgerrors.New("failed to parse token claims")
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok {
		return nil, pkgerrors.New("user ID missing from token")
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "invalid user ID in token")
	}

	return &service.Claims{UserID: userID}, nil
}
