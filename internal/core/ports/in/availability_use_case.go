package in

import (
	"context"
	"time"

	"github.com/byturco/ambulatory/internal/core/domain"
	"github.com/google/uuid"
)

type AvailabilityUseCase interface {
	// Ordered bookable slots of a schedule on a calendar date
	AvailabilitySlots(ctx context.Context, scheduleID uuid.UUID, date time.Time) ([]domain.Slot, error)

	// Whether dateTime matches one of the schedule's slots for that day
	CheckAvailabilitySlot(ctx context.Context, scheduleID uuid.UUID, dateTime time.Time) (bool, error)

	// Cache maintenance, driven by mutation events
	InvalidateScheduleSlots(ctx context.Context, scheduleID uuid.UUID)
	InvalidateAllSlots(ctx context.Context)
}
