package cache

import (
	"context"
	"sync"
	"time"

	"github.com/byturco/ambulatory/internal/config"
	"github.com/byturco/ambulatory/internal/core/domain"
	"github.com/byturco/ambulatory/internal/core/ports/out"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// slotsCacheEntry holds the resolved slot lists of one schedule, keyed
// by calendar date.
type slotsCacheEntry struct {
	SlotsByDate map[string][]domain.Slot
}

// SlotsCacheAdapter is an in-process LRU over schedules. Eviction drops
// a whole schedule with all its cached dates.
type SlotsCacheAdapter struct {
	cache  *lru.Cache[uuid.UUID, *slotsCacheEntry]
	mu     sync.RWMutex
	logger out.LoggerPort
}

func NewSlotsCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*SlotsCacheAdapter, error) {
	if !cfg.Cache.Enabled {
		logger.Info("cache.disabled", out.LogFields{
			"message": "Cache is disabled",
		})
		return nil, nil
	}

	lruCache, err := lru.New[uuid.UUID, *slotsCacheEntry](cfg.Cache.SchedulesSize)
	if err != nil {
		logger.Error("cache.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.SchedulesSize,
		})
		return nil, err
	}

	return &SlotsCacheAdapter{
		cache:  lruCache,
		logger: logger.WithModule("SlotsCacheAdapter"),
	}, nil
}

func dateKey(date time.Time) string {
	return date.Format("2006-01-02")
}

func (c *SlotsCacheAdapter) GetSlots(ctx context.Context, scheduleID uuid.UUID, date time.Time) ([]domain.Slot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.cache.Get(scheduleID)
	if !exists {
		c.logger.Debug("cache.slots.get.miss", out.LogFields{
			"scheduleId": scheduleID,
		})
		return nil, false
	}

	slots, exists := entry.SlotsByDate[dateKey(date)]
	if !exists {
		c.logger.Debug("cache.slots.get.date_miss", out.LogFields{
			"scheduleId": scheduleID,
			"date":       dateKey(date),
		})
		return nil, false
	}

	c.logger.Debug("cache.slots.get.hit", out.LogFields{
		"scheduleId": scheduleID,
		"date":       dateKey(date),
		"slotsCount": len(slots),
	})
	return slots, true
}

func (c *SlotsCacheAdapter) StoreSlots(ctx context.Context, scheduleID uuid.UUID, date time.Time, slots []domain.Slot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.cache.Get(scheduleID)
	if !exists {
		entry = &slotsCacheEntry{SlotsByDate: make(map[string][]domain.Slot)}
	}
	entry.SlotsByDate[dateKey(date)] = slots

	c.cache.Add(scheduleID, entry)

	c.logger.Debug("cache.slots.store", out.LogFields{
		"scheduleId": scheduleID,
		"date":       dateKey(date),
		"slotsCount": len(slots),
	})
}

func (c *SlotsCacheAdapter) InvalidateScheduleSlots(ctx context.Context, scheduleID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Remove(scheduleID)

	c.logger.Debug("cache.slots.invalidate", out.LogFields{
		"scheduleId": scheduleID,
	})
}

func (c *SlotsCacheAdapter) InvalidateAllSlots(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Purge()

	c.logger.Debug("cache.slots.invalidate_all", out.LogFields{})
}
