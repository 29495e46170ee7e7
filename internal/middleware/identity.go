package middleware

import "github.com/labstack/echo/v4"

// ContextUsername is the echo context key BearerAuth stores the token
// subject under.
const ContextUsername = "username"

// Username returns the authenticated subject, or "anon" when the request
// carries no validated token.
func Username(c echo.Context) string {
	if s, ok := c.Get(ContextUsername).(string); ok && s != "" {
		return s
	}
	return "anon"
}
