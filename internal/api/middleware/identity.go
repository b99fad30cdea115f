package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nefroclinica/clinic-system/internal/core/ports"
)

// Context keys under which the established principal is stored.
const (
	ContextKeyEmail = "principal_email"
	ContextKeyRole  = "principal_role"
)

const bearerPrefix = "Bearer "

// Identity establishes the caller's identity from a bearer token, if one is
// present and valid. It enriches the request context and nothing else: a
// missing, malformed, expired or unresolvable token simply leaves the request
// unauthenticated, and the access-policy layer downstream decides whether
// that is acceptable. This middleware never terminates a request.
func Identity(codec ports.TokenCodec, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, bearerPrefix) {
				return next(c)
			}
			token := authHeader[len(bearerPrefix):]

			subject, err := codec.ExtractSubject(token)
			if err != nil {
				return next(c)
			}

			user, err := users.FindByEmail(c.Request().Context(), subject)
			if err != nil {
				return next(c)
			}

			if codec.IsValid(token, user) {
				c.Set(ContextKeyEmail, user.Email)
				c.Set(ContextKeyRole, user.Rol)
			}
			return next(c)
		}
	}
}
