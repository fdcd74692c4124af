package out

import (
	"context"
	"time"

	"github.com/byturco/ambulatory/internal/core/domain"
	"github.com/google/uuid"
)

type CachePort interface {
	// Resolved slot lists, keyed by schedule and calendar date
	GetSlots(ctx context.Context, scheduleID uuid.UUID, date time.Time) ([]domain.Slot, bool)
	StoreSlots(ctx context.Context, scheduleID uuid.UUID, date time.Time, slots []domain.Slot)
	InvalidateScheduleSlots(ctx context.Context, scheduleID uuid.UUID)
	InvalidateAllSlots(ctx context.Context)
}
