package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/nefroclinica/clinic-system/internal/core/domain"
)

type stubCodec struct {
	subjects map[string]string
	valid    map[string]bool
}

func (s *stubCodec) Issue(user *domain.User) (string, error) {
	return "token-" + user.Email, nil
}

func (s *stubCodec) ExtractSubject(token string) (string, error) {
	if sub, ok := s.subjects[token]; ok {
		return sub, nil
	}
	return "", domain.ErrInvalidToken
}

func (s *stubCodec) IsValid(token string, user *domain.User) bool {
	return s.valid[token] && s.subjects[token] == user.Email
}

func (s *stubCodec) Roles(token string) ([]domain.Role, error) {
	if _, ok := s.subjects[token]; !ok {
		return nil, domain.ErrInvalidToken
	}
	return nil, nil
}

type stubUserLookup struct {
	users map[string]*domain.User
}

func (r *stubUserLookup) FindAll(context.Context) ([]domain.User, error) { return nil, nil }

func (r *stubUserLookup) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserLookup) FindByID(context.Context, int64) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubUserLookup) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}

func (r *stubUserLookup) Update(_ context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}

func (r *stubUserLookup) Delete(context.Context, int64) error { return nil }

func runIdentity(t *testing.T, codec *stubCodec, users *stubUserLookup, authHeader string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/pacientes", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Identity(codec, users)(func(c echo.Context) error {
		called = true
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("identity middleware must never block the chain")
	}
	return c
}

func TestIdentity_ValidToken(t *testing.T) {
	medico := &domain.User{Email: "medico@clinica.com", Rol: domain.RoleMedico}
	codec := &stubCodec{
		subjects: map[string]string{"good": "medico@clinica.com"},
		valid:    map[string]bool{"good": true},
	}
	users := &stubUserLookup{users: map[string]*domain.User{medico.Email: medico}}

	c := runIdentity(t, codec, users, "Bearer good")

	if c.Get(ContextKeyEmail) != "medico@clinica.com" {
		t.Fatalf("expected principal email, got %v", c.Get(ContextKeyEmail))
	}
	if c.Get(ContextKeyRole) != domain.RoleMedico {
		t.Fatalf("expected principal role, got %v", c.Get(ContextKeyRole))
	}
}

func TestIdentity_PassesThroughUnauthenticated(t *testing.T) {
	medico := &domain.User{Email: "medico@clinica.com", Rol: domain.RoleMedico}
	codec := &stubCodec{
		subjects: map[string]string{
			"good":    "medico@clinica.com",
			"expired": "medico@clinica.com",
			"ghostly": "nadie@clinica.com",
		},
		valid: map[string]bool{"good": true},
	}
	users := &stubUserLookup{users: map[string]*domain.User{medico.Email: medico}}

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer garbage"},
		{"expired token", "Bearer expired"},
		{"unknown subject", "Bearer ghostly"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := runIdentity(t, codec, users, tc.header)
			if c.Get(ContextKeyEmail) != nil || c.Get(ContextKeyRole) != nil {
				t.Fatalf("no principal expected for %s", tc.name)
			}
		})
	}
}
