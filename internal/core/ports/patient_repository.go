package ports

import (
	"context"

	"github.com/nefroclinica/clinic-system/internal/core/domain"
)

// PatientRepository defines the interface for patient-record persistence.
type PatientRepository interface {
	FindAll(ctx context.Context) ([]domain.Patient, error)
	FindByID(ctx context.Context, id string) (*domain.Patient, error)
	Insert(ctx context.Context, patient *domain.Patient) (*domain.Patient, error)
	Update(ctx context.Context, patient *domain.Patient) error
	Delete(ctx context.Context, id string) error
}
