package middleware

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/fleetops/dispatch/internal/pkg/jwt"
	"github.com/fleetops/dispatch/internal/pkg/models"
	"github.com/fleetops/dispatch/internal/utils"
)

// JWTAuthMiddleware creates a middleware for JWT authentication. It places
// the account_id and role claims on the Echo context for downstream guards.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			tokenString := parts[1]

			claims, err := jwtpkg.ValidateToken(tokenString, config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			accountID, ok := (*claims)["account_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing account_id claim")
			}

			role, ok := (*claims)["role"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}

			c.Set("account_id", fmt.Sprintf("%v", accountID))
			c.Set("user_role", fmt.Sprintf("%v", role))

			return next(c)
		}
	}
}

// AccountID returns the authenticated account scope from the Echo context
func AccountID(c echo.Context) string {
	if v, ok := c.Get("account_id").(string); ok {
		return v
	}
	return ""
}

// Role returns the authenticated role from the Echo context
func Role(c echo.Context) string {
	if v, ok := c.Get("user_role").(string); ok {
		return v
	}
	return ""
}
