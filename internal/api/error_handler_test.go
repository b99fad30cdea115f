package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/nefroclinica/clinic-system/internal/core/domain"
)

func handleError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/pacientes", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec.Code, body.Error
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrMissingFields, http.StatusBadRequest},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrPatientNotFound, http.StatusNotFound},
		{domain.ErrUserExists, http.StatusConflict},
	}
	for _, tc := range cases {
		if code, _ := handleError(t, tc.err); code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, code)
		}
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("update failed"), domain.ErrPatientNotFound)
	if code, _ := handleError(t, wrapped); code != http.StatusNotFound {
		t.Fatalf("wrapped domain error should map, got %d", code)
	}
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	code, msg := handleError(t, echo.NewHTTPError(http.StatusForbidden, "insufficient role"))
	if code != http.StatusForbidden || msg != "insufficient role" {
		t.Fatalf("expected 403/insufficient role, got %d/%q", code, msg)
	}
}

func TestHTTPErrorHandler_UnknownErrorIsOpaque(t *testing.T) {
	code, msg := handleError(t, errors.New("pgx: connection refused at 10.0.0.5"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal details must not leak, got %q", msg)
	}
}
