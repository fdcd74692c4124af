package services

import (
	"context"
	"fmt"

	"github.com/byturco/ambulatory/internal/core/domain"
	"github.com/byturco/ambulatory/internal/core/json_types"
	"github.com/byturco/ambulatory/internal/core/ports/in"
	"github.com/byturco/ambulatory/internal/core/ports/out"
	"github.com/google/uuid"
)

type ScheduleService struct {
	scheduleStore out.ScheduleStorePort
	doctorStore   out.DoctorStorePort
	cachePort     out.CachePort
	logger        out.LoggerPort
}

func NewScheduleService(
	scheduleStore out.ScheduleStorePort,
	doctorStore out.DoctorStorePort,
	cachePort out.CachePort,
	logger out.LoggerPort,
) *ScheduleService {
	return &ScheduleService{
		scheduleStore: scheduleStore,
		doctorStore:   doctorStore,
		cachePort:     cachePort,
		logger:        logger.WithModule("ScheduleService"),
	}
}

func (s *ScheduleService) GetSchedule(ctx context.Context, scheduleID uuid.UUID) (*domain.Schedule, error) {
	return s.scheduleStore.GetSchedule(ctx, scheduleID)
}

func (s *ScheduleService) ListSchedules(ctx context.Context) ([]domain.Schedule, error) {
	return s.scheduleStore.ListSchedules(ctx)
}

func (s *ScheduleService) CreateSchedule(ctx context.Context, input in.CreateScheduleInput) (*domain.Schedule, error) {
	schedule := &domain.Schedule{
		ID:                            uuid.New(),
		DoctorID:                      input.DoctorID,
		HealthFacilityID:              input.HealthFacilityID,
		StartDate:                     input.StartDate,
		EndDate:                       input.EndDate,
		EstimatedServiceTimeInMinutes: input.EstimatedServiceTimeInMinutes,
	}
	if schedule.EstimatedServiceTimeInMinutes == 0 {
		schedule.EstimatedServiceTimeInMinutes = domain.DefaultEstimatedServiceTime
	}

	if err := validateSchedule(schedule); err != nil {
		return nil, err
	}

	// The doctor reference must resolve, a dangling schedule is useless
	if _, err := s.doctorStore.GetDoctor(ctx, schedule.DoctorID); err != nil {
		return nil, fmt.Errorf("schedule.create.doctor_lookup_failed: %w", err)
	}

	if err := s.scheduleStore.CreateSchedule(ctx, schedule); err != nil {
		s.logger.Error("schedule.create.failed", out.LogFields{
			"doctorId": schedule.DoctorID,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("schedule.create.failed: %w", err)
	}

	s.logger.Info("schedule.created", out.LogFields{
		"scheduleId": schedule.ID,
		"doctorId":   schedule.DoctorID,
		"startDate":  schedule.StartDate.String(),
		"endDate":    schedule.EndDate.String(),
	})

	return schedule, nil
}

func (s *ScheduleService) UpdateSchedule(ctx context.Context, scheduleID uuid.UUID, input in.UpdateScheduleInput) (*domain.Schedule, error) {
	schedule, err := s.scheduleStore.GetSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	if input.StartDate != nil {
		schedule.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		schedule.EndDate = *input.EndDate
	}
	if input.EstimatedServiceTimeInMinutes != nil {
		schedule.EstimatedServiceTimeInMinutes = *input.EstimatedServiceTimeInMinutes
	}

	if err := validateSchedule(schedule); err != nil {
		return nil, err
	}

	if err := s.scheduleStore.UpdateSchedule(ctx, schedule); err != nil {
		s.logger.Error("schedule.update.failed", out.LogFields{
			"scheduleId": scheduleID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("schedule.update.failed: %w", err)
	}

	s.invalidate(ctx, scheduleID)

	return schedule, nil
}

func (s *ScheduleService) AddAvailabilityOverride(ctx context.Context, scheduleID uuid.UUID, date json_types.Date, intervals []domain.Interval) (*domain.AvailabilityOverride, error) {
	if len(intervals) == 0 {
		return nil, domain.NewConfigurationError("availability override requires at least one interval")
	}

	if _, err := s.scheduleStore.GetSchedule(ctx, scheduleID); err != nil {
		return nil, err
	}

	override := &domain.AvailabilityOverride{
		ID:         uuid.New(),
		ScheduleID: scheduleID,
		Date:       date,
		Intervals:  intervals,
	}

	if err := s.scheduleStore.CreateAvailabilityOverride(ctx, override); err != nil {
		s.logger.Error("schedule.override.create.failed", out.LogFields{
			"scheduleId": scheduleID,
			"date":       date.String(),
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("schedule.override.create.failed: %w", err)
	}

	s.logger.Info("schedule.override.created", out.LogFields{
		"scheduleId": scheduleID,
		"overrideId": override.ID,
		"date":       date.String(),
	})

	s.invalidate(ctx, scheduleID)

	return override, nil
}

func (s *ScheduleService) UpdateAvailabilityOverride(ctx context.Context, overrideID uuid.UUID, intervals []domain.Interval) (*domain.AvailabilityOverride, error) {
	if len(intervals) == 0 {
		return nil, domain.NewConfigurationError("availability override requires at least one interval")
	}

	override, err := s.scheduleStore.GetAvailabilityOverrideByID(ctx, overrideID)
	if err != nil {
		return nil, err
	}

	override.Intervals = intervals

	if err := s.scheduleStore.UpdateAvailabilityOverride(ctx, override); err != nil {
		s.logger.Error("schedule.override.update.failed", out.LogFields{
			"overrideId": overrideID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("schedule.override.update.failed: %w", err)
	}

	s.invalidate(ctx, override.ScheduleID)

	return override, nil
}

func (s *ScheduleService) invalidate(ctx context.Context, scheduleID uuid.UUID) {
	if s.cachePort == nil {
		return
	}
	s.cachePort.InvalidateScheduleSlots(ctx, scheduleID)
}

func validateSchedule(schedule *domain.Schedule) error {
	if schedule.EstimatedServiceTimeInMinutes <= 0 {
		return domain.NewConfigurationError(
			"estimated service time must be positive, got %d",
			schedule.EstimatedServiceTimeInMinutes,
		)
	}
	if schedule.StartDate.String() > schedule.EndDate.String() {
		return domain.NewConfigurationError(
			"schedule start date %s is after end date %s",
			schedule.StartDate, schedule.EndDate,
		)
	}
	return nil
}
