package middleware

import (
	"net/http"
	"strings"

	"routehub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys populated by Authenticate for downstream handlers.
const (
	ContextKeyUserID = "userID"
	ContextKeyUser   = "user"
)

// AuthMiddleware validates bearer tokens against the external auth service
// and stashes the resolved identity on the request context.
type AuthMiddleware struct {
	authClient service.AuthClient
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authClient service.AuthClient) *AuthMiddleware {
	return &AuthMiddleware{authClient: authClient}
}

// Authenticate is the core middleware function that validates the access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		creator, err := m.authClient.VerifyToken(c.Request().Context(), tokenString)
		if err != nil || creator == nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		c.Set(ContextKeyUserID, creator.ID)
		c.Set(ContextKeyUser, creator)

		return next(c)
	}
}
