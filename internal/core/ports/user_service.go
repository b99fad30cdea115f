package ports

import (
	"context"

	"github.com/nefroclinica/clinic-system/internal/core/domain"
)

// UserService covers the admin-only staff management operations.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User, rawPassword string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User, rawPassword string) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	ChangePassword(ctx context.Context, id int64, rawPassword string) (*domain.User, error)
}
