package in

import (
	"context"

	"github.com/byturco/ambulatory/internal/core/domain"
	"github.com/byturco/ambulatory/internal/core/json_types"
	"github.com/google/uuid"
)

type CreateScheduleInput struct {
	DoctorID                      uuid.UUID
	HealthFacilityID              uuid.UUID
	StartDate                     json_types.Date
	EndDate                       json_types.Date
	EstimatedServiceTimeInMinutes int
}

type UpdateScheduleInput struct {
	StartDate                     *json_types.Date
	EndDate                       *json_types.Date
	EstimatedServiceTimeInMinutes *int
}

type ScheduleUseCase interface {
	GetSchedule(ctx context.Context, scheduleID uuid.UUID) (*domain.Schedule, error)
	ListSchedules(ctx context.Context) ([]domain.Schedule, error)
	CreateSchedule(ctx context.Context, input CreateScheduleInput) (*domain.Schedule, error)
	UpdateSchedule(ctx context.Context, scheduleID uuid.UUID, input UpdateScheduleInput) (*domain.Schedule, error)

	AddAvailabilityOverride(ctx context.Context, scheduleID uuid.UUID, date json_types.Date, intervals []domain.Interval) (*domain.AvailabilityOverride, error)
	UpdateAvailabilityOverride(ctx context.Context, overrideID uuid.UUID, intervals []domain.Interval) (*domain.AvailabilityOverride, error)
}
