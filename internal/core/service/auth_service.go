package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/nefroclinica/clinic-system/internal/core/domain"
	"github.com/nefroclinica/clinic-system/internal/core/ports"
)

// AuthService implements registration and login against the user store.
type AuthService struct {
	repo     ports.UserRepository
	codec    ports.TokenCodec
	notifier ports.Notifier
	logger   zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, codec ports.TokenCodec, notifier ports.Notifier, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, codec: codec, notifier: notifier, logger: logger}
}

// Register creates a staff account and returns a token usable immediately.
// Nothing is persisted when validation fails; email uniqueness is enforced
// by the store and surfaces as domain.ErrUserExists.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error) {
	if input.Email == "" || input.Password == "" || input.Rol == "" {
		return "", nil, domain.ErrMissingFields
	}
	if _, ok := domain.ParseRole(string(input.Rol)); !ok {
		return "", nil, domain.ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user := &domain.User{
		Nombre:       input.Nombre,
		Apellido:     input.Apellido,
		Email:        input.Email,
		PasswordHash: string(hash),
		Rol:          input.Rol,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	// Welcome mail is best-effort; a mail outage must not fail registration.
	if s.notifier != nil {
		if err := s.notifier.SendWelcome(ctx, created); err != nil {
			s.logger.Warn().Err(err).Str("email", created.Email).Msg("welcome email failed")
		}
	}

	token, err := s.codec.Issue(created)
	if err != nil {
		return "", nil, err
	}
	return token, created, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password both report domain.ErrInvalidCredentials so responses cannot be
// used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
