package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/quizarena/internal/pkg/jwt"
	"github.com/piresc/quizarena/internal/pkg/models"
	"github.com/piresc/quizarena/internal/utils"
)

// Echo context keys set by JWTAuthMiddleware
const (
	ContextUserID   = "user_id"
	ContextUserRole = "user_role"
)

// BearerToken extracts the token from an "Authorization: Bearer <token>" header value
func BearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authentication required")
			}

			tokenString, ok := BearerToken(authHeader)
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(tokenString, config)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid or expired token")
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextUserRole, claims.Role)

			return next(c)
		}
	}
}

// RequireRole rejects authenticated callers without the given role
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if got, _ := c.Get(ContextUserRole).(string); got != role {
				return utils.ForbiddenResponse(c, "Admin access required")
			}
			return next(c)
		}
	}
}

// UserID returns the authenticated user id, or "" on public routes
func UserID(c echo.Context) string {
	id, _ := c.Get(ContextUserID).(string)
	return id
}
