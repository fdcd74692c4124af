package services

import (
	"context"
	"fmt"
	"time"

	"github.com/byturco/ambulatory/internal/config"
	"github.com/byturco/ambulatory/internal/core/domain"
	"github.com/byturco/ambulatory/internal/core/ports/out"
	"github.com/google/uuid"
)

// CalculateTimeSlots expands the interval [startTime, endTime] into slot
// start times spaced duration apart, beginning at startTime. The end
// boundary is inclusive: a slot starting exactly at endTime is emitted
// even though that appointment would run past endTime. An inverted
// interval produces no slots. duration must be positive, callers
// validate it before looping.
func CalculateTimeSlots(startTime, endTime time.Time, duration time.Duration) []domain.Slot {
	slots := make([]domain.Slot, 0)

	for current := startTime; !current.After(endTime); current = current.Add(duration) {
		slots = append(slots, domain.NewSlot(current))
	}

	return slots
}

// AvailabilityService resolves the bookable slots of a schedule on a
// date: a date-specific override wins, otherwise the doctor's default
// weekly hours apply within the schedule's validity window. It holds no
// state of its own, every request re-derives slots from storage.
type AvailabilityService struct {
	scheduleStore out.ScheduleStorePort
	doctorStore   out.DoctorStorePort
	cachePort     out.CachePort
	cfg           *config.Config
	logger        out.LoggerPort
}

func NewAvailabilityService(
	scheduleStore out.ScheduleStorePort,
	doctorStore out.DoctorStorePort,
	cachePort out.CachePort,
	cfg *config.Config,
	logger out.LoggerPort,
) *AvailabilityService {
	return &AvailabilityService{
		scheduleStore: scheduleStore,
		doctorStore:   doctorStore,
		cachePort:     cachePort,
		cfg:           cfg,
		logger:        logger.WithModule("AvailabilityService"),
	}
}

func (s *AvailabilityService) AvailabilitySlots(ctx context.Context, scheduleID uuid.UUID, date time.Time) ([]domain.Slot, error) {
	schedule, err := s.scheduleStore.GetSchedule(ctx, scheduleID)
	if err != nil {
		s.logger.Error("slots.resolve.schedule.fetch_failed", out.LogFields{
			"scheduleId": scheduleID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("slots.resolve.schedule.fetch_failed: %w", err)
	}

	if s.cachePort != nil && s.cfg.Cache.Enabled {
		if slots, exists := s.cachePort.GetSlots(ctx, scheduleID, date); exists {
			s.logger.Debug("slots.resolve.cache.hit", out.LogFields{
				"scheduleId": scheduleID,
				"date":       date.Format("2006-01-02"),
				"slotsCount": len(slots),
			})
			return slots, nil
		}
	}

	slots, err := s.resolveSlots(ctx, schedule, date)
	if err != nil {
		return nil, err
	}

	if s.cachePort != nil && s.cfg.Cache.Enabled {
		s.cachePort.StoreSlots(ctx, scheduleID, date, slots)
	}

	s.logger.Debug("slots.resolve.completed", out.LogFields{
		"scheduleId": scheduleID,
		"date":       date.Format("2006-01-02"),
		"slotsCount": len(slots),
	})

	return slots, nil
}

func (s *AvailabilityService) CheckAvailabilitySlot(ctx context.Context, scheduleID uuid.UUID, dateTime time.Time) (bool, error) {
	slots, err := s.AvailabilitySlots(ctx, scheduleID, dateTime)
	if err != nil {
		return false, err
	}

	// Minute precision: the requested seconds are truncated by the HH:MM
	// formatting, not rounded.
	requested := domain.NewSlot(dateTime)
	for _, slot := range slots {
		if slot == requested {
			return true, nil
		}
	}

	return false, nil
}

func (s *AvailabilityService) InvalidateScheduleSlots(ctx context.Context, scheduleID uuid.UUID) {
	if s.cachePort == nil {
		return
	}
	s.cachePort.InvalidateScheduleSlots(ctx, scheduleID)
}

func (s *AvailabilityService) InvalidateAllSlots(ctx context.Context) {
	if s.cachePort == nil {
		return
	}
	s.cachePort.InvalidateAllSlots(ctx)
}

func (s *AvailabilityService) resolveSlots(ctx context.Context, schedule *domain.Schedule, date time.Time) ([]domain.Slot, error) {
	if schedule.EstimatedServiceTimeInMinutes <= 0 {
		return nil, domain.NewConfigurationError(
			"schedule %s has non-positive estimated service time %d",
			schedule.ID, schedule.EstimatedServiceTimeInMinutes,
		)
	}

	override, err := s.scheduleStore.GetAvailabilityOverride(ctx, schedule.ID, date)
	if err != nil {
		s.logger.Error("slots.resolve.override.fetch_failed", out.LogFields{
			"scheduleId": schedule.ID,
			"date":       date.Format("2006-01-02"),
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("slots.resolve.override.fetch_failed: %w", err)
	}

	if override != nil {
		return s.overrideSlots(schedule, override), nil
	}

	return s.defaultSlots(ctx, schedule, date)
}

// overrideSlots concatenates the slot lists of every override interval,
// interval order first, slot order within. Overlapping intervals may
// repeat a slot value, which is tolerated.
func (s *AvailabilityService) overrideSlots(schedule *domain.Schedule, override *domain.AvailabilityOverride) []domain.Slot {
	slots := make([]domain.Slot, 0)

	for _, interval := range override.Intervals {
		slots = append(slots, CalculateTimeSlots(interval.From.Time, interval.To.Time, schedule.ServiceDuration())...)
	}

	return slots
}

// defaultSlots applies the doctor's weekly hours for the date's weekday,
// gated by the schedule's validity window. A date outside the window or
// a workless weekday yields an empty list, not an error.
func (s *AvailabilityService) defaultSlots(ctx context.Context, schedule *domain.Schedule, date time.Time) ([]domain.Slot, error) {
	if !schedule.ContainsDate(date) {
		return []domain.Slot{}, nil
	}

	workingHours, err := s.doctorStore.GetWorkingHours(ctx, schedule.DoctorID, date.Weekday())
	if err != nil {
		s.logger.Error("slots.resolve.working_hours.fetch_failed", out.LogFields{
			"doctorId": schedule.DoctorID,
			"weekday":  date.Weekday().String(),
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("slots.resolve.working_hours.fetch_failed: %w", err)
	}

	if workingHours == nil {
		return []domain.Slot{}, nil
	}

	return CalculateTimeSlots(workingHours.Interval.From.Time, workingHours.Interval.To.Time, schedule.ServiceDuration()), nil
}
