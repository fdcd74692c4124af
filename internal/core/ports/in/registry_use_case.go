package in

import (
	"context"

	"github.com/byturco/ambulatory/internal/core/domain"
	"github.com/google/uuid"
)

// RegistryUseCase covers the clinic directory: doctors and their weekly
// working hours, health facilities and specializations.
type RegistryUseCase interface {
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*domain.Doctor, error)
	ListDoctors(ctx context.Context) ([]domain.Doctor, error)
	ListWorkingHours(ctx context.Context, doctorID uuid.UUID) ([]domain.WorkingHours, error)
	ReplaceWorkingHours(ctx context.Context, doctorID uuid.UUID, hours []domain.WorkingHours) error

	GetHealthFacility(ctx context.Context, facilityID uuid.UUID) (*domain.HealthFacility, error)
	ListHealthFacilities(ctx context.Context) ([]domain.HealthFacility, error)
	CreateHealthFacility(ctx context.Context, facility *domain.HealthFacility) error
	UpdateHealthFacility(ctx context.Context, facility *domain.HealthFacility) error

	GetSpecialization(ctx context.Context, specializationID uuid.UUID) (*domain.Specialization, error)
	ListSpecializations(ctx context.Context) ([]domain.Specialization, error)
	CreateSpecialization(ctx context.Context, specialization *domain.Specialization) error
	UpdateSpecialization(ctx context.Context, specialization *domain.Specialization) error
	DeleteSpecialization(ctx context.Context, specializationID uuid.UUID) error
}
