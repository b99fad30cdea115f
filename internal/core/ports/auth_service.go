package ports

import (
	"context"

	"github.com/nefroclinica/clinic-system/internal/core/domain"
)

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Nombre   string
	Apellido string
	Email    string
	Password string
	Rol      domain.Role
}

// AuthService turns submitted credentials into bearer tokens.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// TokenCodec produces and verifies signed bearer tokens.
type TokenCodec interface {
	// Issue builds a signed token for the user with the configured lifetime.
	Issue(user *domain.User) (string, error)
	// ExtractSubject verifies the token signature and returns its subject.
	// Fails with domain.ErrInvalidToken on malformed or tampered tokens;
	// expiry is deliberately not checked here.
	ExtractSubject(token string) (string, error)
	// IsValid reports whether the token belongs to the user and has not
	// expired. The signature is re-verified, so IsValid is safe to call on
	// its own.
	IsValid(token string, user *domain.User) bool
	// Roles returns the role claims of a verified token.
	Roles(token string) ([]domain.Role, error)
}
