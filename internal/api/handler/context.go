package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/nefroclinica/clinic-system/internal/api/middleware"
	"github.com/nefroclinica/clinic-system/internal/core/domain"
)

// principal returns the authenticated caller established by the Identity
// middleware. ok is false for unauthenticated requests; the access policy
// normally rejects those before a handler runs, so handlers only consult
// this for auditing and response shaping.
func principal(c echo.Context) (email string, role domain.Role, ok bool) {
	email, _ = c.Get(middleware.ContextKeyEmail).(string)
	role, okRole := c.Get(middleware.ContextKeyRole).(domain.Role)
	return email, role, email != "" && okRole
}
