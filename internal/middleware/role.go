package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireOwner admits only requests whose token subject is the configured
// administrator.  It must run after BearerAuth.  A valid token for anyone
// else is treated like an invalid one.
func RequireOwner(owner string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if owner == "" || Username(c) != owner {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			return next(c)
		}
	}
}
