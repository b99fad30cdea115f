package ports

import (
	"context"

	"github.com/nefroclinica/clinic-system/internal/core/domain"
)

// PatientService owns the patient lifecycle, including QR generation and
// delivery on create and on email changes.
type PatientService interface {
	Create(ctx context.Context, patient *domain.Patient) (*domain.Patient, error)
	List(ctx context.Context) ([]domain.Patient, error)
	Get(ctx context.Context, id string) (*domain.Patient, error)
	Update(ctx context.Context, id string, incoming *domain.Patient) (*domain.Patient, error)
	Delete(ctx context.Context, id string) error
}
