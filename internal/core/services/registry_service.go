package services

import (
	"context"
	"fmt"

	"github.com/byturco/ambulatory/internal/core/domain"
	"github.com/byturco/ambulatory/internal/core/ports/out"
	"github.com/google/uuid"
)

// RegistryService manages the clinic directory. It is plain CRUD except
// for working hours, whose replacement invalidates every cached slot
// list: any schedule of the doctor may be affected.
type RegistryService struct {
	doctorStore         out.DoctorStorePort
	facilityStore       out.HealthFacilityStorePort
	specializationStore out.SpecializationStorePort
	cachePort           out.CachePort
	logger              out.LoggerPort
}

func NewRegistryService(
	doctorStore out.DoctorStorePort,
	facilityStore out.HealthFacilityStorePort,
	specializationStore out.SpecializationStorePort,
	cachePort out.CachePort,
	logger out.LoggerPort,
) *RegistryService {
	return &RegistryService{
		doctorStore:         doctorStore,
		facilityStore:       facilityStore,
		specializationStore: specializationStore,
		cachePort:           cachePort,
		logger:              logger.WithModule("RegistryService"),
	}
}

func (s *RegistryService) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*domain.Doctor, error) {
	return s.doctorStore.GetDoctor(ctx, doctorID)
}

func (s *RegistryService) ListDoctors(ctx context.Context) ([]domain.Doctor, error) {
	return s.doctorStore.ListDoctors(ctx)
}

func (s *RegistryService) ListWorkingHours(ctx context.Context, doctorID uuid.UUID) ([]domain.WorkingHours, error) {
	if _, err := s.doctorStore.GetDoctor(ctx, doctorID); err != nil {
		return nil, err
	}
	return s.doctorStore.ListWorkingHours(ctx, doctorID)
}

func (s *RegistryService) ReplaceWorkingHours(ctx context.Context, doctorID uuid.UUID, hours []domain.WorkingHours) error {
	if _, err := s.doctorStore.GetDoctor(ctx, doctorID); err != nil {
		return err
	}

	seen := make(map[int]bool)
	for _, wh := range hours {
		weekday := int(wh.Weekday)
		if weekday < 0 || weekday > 6 {
			return domain.NewConfigurationError("invalid weekday %d", weekday)
		}
		if seen[weekday] {
			return domain.NewConfigurationError("duplicate weekday %s", wh.Weekday)
		}
		seen[weekday] = true
	}

	if err := s.doctorStore.ReplaceWorkingHours(ctx, doctorID, hours); err != nil {
		s.logger.Error("registry.working_hours.replace_failed", out.LogFields{
			"doctorId": doctorID,
			"error":    err.Error(),
		})
		return fmt.Errorf("registry.working_hours.replace_failed: %w", err)
	}

	s.logger.Info("registry.working_hours.replaced", out.LogFields{
		"doctorId": doctorID,
		"count":    len(hours),
	})

	if s.cachePort != nil {
		s.cachePort.InvalidateAllSlots(ctx)
	}

	return nil
}

func (s *RegistryService) GetHealthFacility(ctx context.Context, facilityID uuid.UUID) (*domain.HealthFacility, error) {
	return s.facilityStore.GetHealthFacility(ctx, facilityID)
}

func (s *RegistryService) ListHealthFacilities(ctx context.Context) ([]domain.HealthFacility, error) {
	return s.facilityStore.ListHealthFacilities(ctx)
}

func (s *RegistryService) CreateHealthFacility(ctx context.Context, facility *domain.HealthFacility) error {
	facility.ID = uuid.New()
	if err := s.facilityStore.CreateHealthFacility(ctx, facility); err != nil {
		return fmt.Errorf("registry.health_facility.create_failed: %w", err)
	}
	s.logger.Info("registry.health_facility.created", out.LogFields{
		"facilityId": facility.ID,
		"name":       facility.Name,
	})
	return nil
}

func (s *RegistryService) UpdateHealthFacility(ctx context.Context, facility *domain.HealthFacility) error {
	if _, err := s.facilityStore.GetHealthFacility(ctx, facility.ID); err != nil {
		return err
	}
	return s.facilityStore.UpdateHealthFacility(ctx, facility)
}

func (s *RegistryService) GetSpecialization(ctx context.Context, specializationID uuid.UUID) (*domain.Specialization, error) {
	return s.specializationStore.GetSpecialization(ctx, specializationID)
}

func (s *RegistryService) ListSpecializations(ctx context.Context) ([]domain.Specialization, error) {
	return s.specializationStore.ListSpecializations(ctx)
}

func (s *RegistryService) CreateSpecialization(ctx context.Context, specialization *domain.Specialization) error {
	specialization.ID = uuid.New()
	if err := s.specializationStore.CreateSpecialization(ctx, specialization); err != nil {
		return fmt.Errorf("registry.specialization.create_failed: %w", err)
	}
	return nil
}

func (s *RegistryService) UpdateSpecialization(ctx context.Context, specialization *domain.Specialization) error {
	if _, err := s.specializationStore.GetSpecialization(ctx, specialization.ID); err != nil {
		return err
	}
	return s.specializationStore.UpdateSpecialization(ctx, specialization)
}

func (s *RegistryService) DeleteSpecialization(ctx context.Context, specializationID uuid.UUID) error {
	return s.specializationStore.DeleteSpecialization(ctx, specializationID)
}
