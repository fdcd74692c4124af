package out

import (
	"context"
	"time"

	"github.com/byturco/ambulatory/internal/core/domain"
	"github.com/google/uuid"
)

type ScheduleStorePort interface {
	GetSchedule(ctx context.Context, scheduleID uuid.UUID) (*domain.Schedule, error)
	ListSchedules(ctx context.Context) ([]domain.Schedule, error)
	CreateSchedule(ctx context.Context, schedule *domain.Schedule) error
	UpdateSchedule(ctx context.Context, schedule *domain.Schedule) error

	// GetAvailabilityOverride returns (nil, nil) when the schedule has no
	// override for the date; resolution then falls back to default hours.
	GetAvailabilityOverride(ctx context.Context, scheduleID uuid.UUID, date time.Time) (*domain.AvailabilityOverride, error)
	GetAvailabilityOverrideByID(ctx context.Context, overrideID uuid.UUID) (*domain.AvailabilityOverride, error)
	CreateAvailabilityOverride(ctx context.Context, override *domain.AvailabilityOverride) error
	UpdateAvailabilityOverride(ctx context.Context, override *domain.AvailabilityOverride) error
}

type DoctorStorePort interface {
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*domain.Doctor, error)
	ListDoctors(ctx context.Context) ([]domain.Doctor, error)

	// GetWorkingHours returns (nil, nil) when the doctor has no hours on
	// that weekday.
	GetWorkingHours(ctx context.Context, doctorID uuid.UUID, weekday time.Weekday) (*domain.WorkingHours, error)
	ListWorkingHours(ctx context.Context, doctorID uuid.UUID) ([]domain.WorkingHours, error)
	ReplaceWorkingHours(ctx context.Context, doctorID uuid.UUID, hours []domain.WorkingHours) error
}

type BookingStorePort interface {
	CreateBooking(ctx context.Context, booking *domain.Booking) error
	ListScheduleBookings(ctx context.Context, scheduleID uuid.UUID) ([]domain.Booking, error)
}

type HealthFacilityStorePort interface {
	GetHealthFacility(ctx context.Context, facilityID uuid.UUID) (*domain.HealthFacility, error)
	ListHealthFacilities(ctx context.Context) ([]domain.HealthFacility, error)
	CreateHealthFacility(ctx context.Context, facility *domain.HealthFacility) error
	UpdateHealthFacility(ctx context.Context, facility *domain.HealthFacility) error
}

type SpecializationStorePort interface {
	GetSpecialization(ctx context.Context, specializationID uuid.UUID) (*domain.Specialization, error)
	ListSpecializations(ctx context.Context) ([]domain.Specialization, error)
	CreateSpecialization(ctx context.Context, specialization *domain.Specialization) error
	UpdateSpecialization(ctx context.Context, specialization *domain.Specialization) error
	DeleteSpecialization(ctx context.Context, specializationID uuid.UUID) error
}

type InvitationStorePort interface {
	GetInvitation(ctx context.Context, invitationID uuid.UUID) (*domain.Invitation, error)
	GetInvitationByEmail(ctx context.Context, email string) (*domain.Invitation, error)
	ListInvitations(ctx context.Context) ([]domain.Invitation, error)
	CreateInvitation(ctx context.Context, invitation *domain.Invitation) error
	UpdateInvitation(ctx context.Context, invitation *domain.Invitation) error
	DeleteInvitation(ctx context.Context, invitationID uuid.UUID) error
}
