package ports

import (
	"context"

	"github.com/nefroclinica/clinic-system/internal/core/domain"
)

// UserRepository defines the interface for staff-account persistence.
type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
