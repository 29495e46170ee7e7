package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/villa-booking/internal/auth"
)

// BearerAuth validates the Authorization bearer token and stores its
// subject under ContextUsername.  Missing, malformed and expired tokens
// all answer 401.
func BearerAuth(tokens *auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			scheme, raw, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(raw) == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			subject, err := tokens.Validate(strings.TrimSpace(raw))
			if err != nil {
				msg := auth.ErrUnauthenticated.Error()
				if errors.Is(err, auth.ErrExpired) {
					msg = auth.ErrExpired.Error()
				}
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": msg})
			}
			c.Set(ContextUsername, subject)
			return next(c)
		}
	}
}
