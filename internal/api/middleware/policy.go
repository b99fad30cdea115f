package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nefroclinica/clinic-system/internal/api/metrics"
	"github.com/nefroclinica/clinic-system/internal/core/domain"
)

// AnyMethod matches every HTTP method in a rule.
const AnyMethod = "*"

// Rule is one entry of the access table: requests whose method and path match
// are allowed only for the listed roles. A nil role set means the route is
// public; an empty non-nil set means any authenticated principal.
type Rule struct {
	Method  string
	Path    string
	Allowed []domain.Role
}

// Public marks a rule as requiring no authentication.
var Public []domain.Role = nil

// AnyAuthenticated marks a rule as requiring a principal with any role.
var AnyAuthenticated = []domain.Role{}

// DefaultRules is the clinic's access table, evaluated first match wins.
// Unmatched requests fall to the trailing any-authenticated rule.
var DefaultRules = []Rule{
	{http.MethodOptions, "/api/auth/**", Public},
	{AnyMethod, "/api/auth/**", Public},

	{http.MethodPost, "/api/pacientes", []domain.Role{domain.RoleAdmin, domain.RoleMedico}},
	{http.MethodPut, "/api/pacientes/**", []domain.Role{domain.RoleAdmin, domain.RoleMedico}},
	{http.MethodDelete, "/api/pacientes/**", []domain.Role{domain.RoleAdmin, domain.RoleMedico}},
	{http.MethodGet, "/api/pacientes", []domain.Role{domain.RoleAdmin, domain.RoleMedico, domain.RoleEnfermero, domain.RoleTecnico}},
	{http.MethodGet, "/api/pacientes/**", []domain.Role{domain.RoleAdmin, domain.RoleMedico, domain.RoleEnfermero, domain.RoleTecnico}},

	{http.MethodGet, "/api/qr/**", []domain.Role{domain.RoleAdmin, domain.RoleMedico, domain.RoleEnfermero, domain.RoleTecnico}},

	{AnyMethod, "/api/usuarios/**", []domain.Role{domain.RoleAdmin}},

	// Operational endpoints are deliberately open; they sit outside /api.
	{AnyMethod, "/health/**", Public},
	{AnyMethod, "/metrics", Public},
	{AnyMethod, "/swagger/**", Public},

	{AnyMethod, "/**", AnyAuthenticated},
}

// Policy enforces the access table against the principal established by the
// Identity middleware. Unauthenticated requests to protected routes get 401,
// authenticated requests with an insufficient role get 403. Denied requests
// never reach business logic.
func Policy(rules []Rule) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rule := match(rules, c.Request().Method, c.Request().URL.Path)
			if rule == nil || rule.Allowed == nil {
				return next(c)
			}

			role, authenticated := c.Get(ContextKeyRole).(domain.Role)
			if !authenticated {
				metrics.PolicyDenialsTotal.WithLabelValues("unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			if len(rule.Allowed) == 0 {
				return next(c)
			}
			for _, allowed := range rule.Allowed {
				if role == allowed {
					return next(c)
				}
			}

			metrics.PolicyDenialsTotal.WithLabelValues("forbidden").Inc()
			return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
		}
	}
}

// match returns the first rule whose method and path patterns cover the
// request, or nil when nothing matches.
func match(rules []Rule, method, path string) *Rule {
	for i := range rules {
		r := &rules[i]
		if r.Method != AnyMethod && r.Method != method {
			continue
		}
		if pathMatches(r.Path, path) {
			return r
		}
	}
	return nil
}

// pathMatches compares a pattern against a request path segment by segment.
// "*" matches exactly one segment; a trailing "**" matches zero or more.
func pathMatches(pattern, path string) bool {
	pp := splitPath(pattern)
	ps := splitPath(path)

	for i, seg := range pp {
		if seg == "**" {
			return true
		}
		if i >= len(ps) {
			return false
		}
		if seg != "*" && seg != ps[i] {
			return false
		}
	}
	return len(pp) == len(ps)
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
