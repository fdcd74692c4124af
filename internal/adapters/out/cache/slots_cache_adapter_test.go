package cache

import (
	"context"
	"testing"
	"time"

	"github.com/byturco/ambulatory/internal/config"
	"github.com/byturco/ambulatory/internal/core/domain"
	"github.com/byturco/ambulatory/internal/core/ports/out"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (l nopLogger) Debug(string, out.LogFields)             {}
func (l nopLogger) Info(string, out.LogFields)              {}
func (l nopLogger) Warn(string, out.LogFields)              {}
func (l nopLogger) Error(string, out.LogFields)             {}
func (l nopLogger) WithFields(out.LogFields) out.LoggerPort { return l }
func (l nopLogger) WithModule(string) out.LoggerPort        { return l }

func newTestAdapter(t *testing.T) *SlotsCacheAdapter {
	t.Helper()

	cfg := &config.Config{}
	cfg.Cache.Enabled = true
	cfg.Cache.SchedulesSize = 10

	adapter, err := NewSlotsCacheAdapter(cfg, nopLogger{})
	require.NoError(t, err)
	require.NotNil(t, adapter)
	return adapter
}

func TestSlotsCacheAdapterDisabled(t *testing.T) {
	cfg := &config.Config{}

	adapter, err := NewSlotsCacheAdapter(cfg, nopLogger{})
	require.NoError(t, err)
	assert.Nil(t, adapter)
}

func TestSlotsCacheStoreAndGet(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	scheduleID := uuid.New()
	monday := time.Date(2020, 1, 6, 0, 0, 0, 0, time.UTC)
	tuesday := time.Date(2020, 1, 7, 0, 0, 0, 0, time.UTC)
	slots := []domain.Slot{"09:00", "09:15"}

	_, exists := adapter.GetSlots(ctx, scheduleID, monday)
	assert.False(t, exists)

	adapter.StoreSlots(ctx, scheduleID, monday, slots)

	got, exists := adapter.GetSlots(ctx, scheduleID, monday)
	require.True(t, exists)
	assert.Equal(t, slots, got)

	// A different date of the same schedule is a separate entry
	_, exists = adapter.GetSlots(ctx, scheduleID, tuesday)
	assert.False(t, exists)
}

func TestSlotsCacheInvalidateSchedule(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	scheduleID := uuid.New()
	monday := time.Date(2020, 1, 6, 0, 0, 0, 0, time.UTC)
	tuesday := time.Date(2020, 1, 7, 0, 0, 0, 0, time.UTC)

	adapter.StoreSlots(ctx, scheduleID, monday, []domain.Slot{"09:00"})
	adapter.StoreSlots(ctx, scheduleID, tuesday, []domain.Slot{"10:00"})

	adapter.InvalidateScheduleSlots(ctx, scheduleID)

	_, exists := adapter.GetSlots(ctx, scheduleID, monday)
	assert.False(t, exists)
	_, exists = adapter.GetSlots(ctx, scheduleID, tuesday)
	assert.False(t, exists)
}

func TestSlotsCacheInvalidateAll(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	first := uuid.New()
	second := uuid.New()
	monday := time.Date(2020, 1, 6, 0, 0, 0, 0, time.UTC)

	adapter.StoreSlots(ctx, first, monday, []domain.Slot{"09:00"})
	adapter.StoreSlots(ctx, second, monday, []domain.Slot{"10:00"})

	adapter.InvalidateAllSlots(ctx)

	_, exists := adapter.GetSlots(ctx, first, monday)
	assert.False(t, exists)
	_, exists = adapter.GetSlots(ctx, second, monday)
	assert.False(t, exists)
}

func TestSlotsCacheEmptySlotListIsCached(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	scheduleID := uuid.New()
	sunday := time.Date(2020, 1, 5, 0, 0, 0, 0, time.UTC)

	// A workless day resolves to an empty list, which is still worth caching
	adapter.StoreSlots(ctx, scheduleID, sunday, []domain.Slot{})

	got, exists := adapter.GetSlots(ctx, scheduleID, sunday)
	require.True(t, exists)
	assert.Empty(t, got)
}
