package middleware

import (
	"strings"

	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// UserIDKey is the echo.Context key under which the authenticated user ID is stored.
const UserIDKey = "userID"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer access token and stores the caller's
// user ID on the context. A missing or malformed header is an
// authentication failure (401); a token that fails verification is a
// rejection (403).
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrUnauthenticated
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return domainerrors.ErrTokenInvalid
		}

		// Set user info on the context for handlers to use
		c.Set(UserIDKey, claims.UserID)

		return next(c)
	}
}
