package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/nefroclinica/clinic-system/internal/core/domain"
	"github.com/nefroclinica/clinic-system/internal/core/ports"
)

// UserService implements the admin-only staff management operations.
// Passwords are always hashed before they reach the repository.
type UserService struct {
	repo     ports.UserRepository
	notifier ports.Notifier
	logger   zerolog.Logger
}

func NewUserService(repo ports.UserRepository, notifier ports.Notifier, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, notifier: notifier, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

// Create persists a new staff account and mails access instructions.
// The mail is best-effort and never blocks the create.
func (s *UserService) Create(ctx context.Context, user *domain.User, rawPassword string) (*domain.User, error) {
	if user.Email == "" || rawPassword == "" || user.Rol == "" {
		return nil, domain.ErrMissingFields
	}
	if _, ok := domain.ParseRole(string(user.Rol)); !ok {
		return nil, domain.ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hash)

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.SendWelcome(ctx, created); err != nil {
			s.logger.Warn().Err(err).Str("email", created.Email).Msg("welcome email failed")
		}
	}
	return created, nil
}

// Update overwrites an existing account. A password is required on every
// update to keep the stored hash consistent with what the caller believes
// was saved.
func (s *UserService) Update(ctx context.Context, user *domain.User, rawPassword string) (*domain.User, error) {
	if rawPassword == "" {
		return nil, domain.ErrMissingFields
	}
	if _, err := s.repo.FindByID(ctx, user.ID); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hash)

	return s.repo.Update(ctx, user)
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// ChangePassword hashes and stores a new password for the given account.
func (s *UserService) ChangePassword(ctx context.Context, id int64, rawPassword string) (*domain.User, error) {
	if rawPassword == "" {
		return nil, domain.ErrMissingFields
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hash)

	return s.repo.Update(ctx, user)
}
