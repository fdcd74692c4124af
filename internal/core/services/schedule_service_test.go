package services

import (
	"context"
	"testing"
	"time"

	"github.com/byturco/ambulatory/internal/core/domain"
	"github.com/byturco/ambulatory/internal/core/ports/in"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCache struct {
	invalidated    []uuid.UUID
	invalidatedAll int
}

func (m *mockCache) GetSlots(_ context.Context, _ uuid.UUID, _ time.Time) ([]domain.Slot, bool) {
	return nil, false
}

func (m *mockCache) StoreSlots(_ context.Context, _ uuid.UUID, _ time.Time, _ []domain.Slot) {}

func (m *mockCache) InvalidateScheduleSlots(_ context.Context, scheduleID uuid.UUID) {
	m.invalidated = append(m.invalidated, scheduleID)
}

func (m *mockCache) InvalidateAllSlots(_ context.Context) {
	m.invalidatedAll++
}

func newScheduleFixture(t *testing.T) (*ScheduleService, *mockScheduleStore, *mockCache, uuid.UUID) {
	t.Helper()

	scheduleStore := newMockScheduleStore()
	doctorStore := newMockDoctorStore()

	doctorID := uuid.New()
	doctorStore.doctors[doctorID] = &domain.Doctor{ID: doctorID, FullName: "Dr. Allison Cameron"}

	cache := &mockCache{}
	service := NewScheduleService(scheduleStore, doctorStore, cache, nopLogger{})
	return service, scheduleStore, cache, doctorID
}

func TestCreateScheduleDefaultsServiceTime(t *testing.T) {
	service, scheduleStore, _, doctorID := newScheduleFixture(t)

	schedule, err := service.CreateSchedule(context.Background(), in.CreateScheduleInput{
		DoctorID:         doctorID,
		HealthFacilityID: uuid.New(),
		StartDate:        mustDate(t, "2020-01-01"),
		EndDate:          mustDate(t, "2020-01-31"),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultEstimatedServiceTime, schedule.EstimatedServiceTimeInMinutes)
	assert.Contains(t, scheduleStore.schedules, schedule.ID)
}

func TestCreateScheduleInvertedWindow(t *testing.T) {
	service, _, _, doctorID := newScheduleFixture(t)

	_, err := service.CreateSchedule(context.Background(), in.CreateScheduleInput{
		DoctorID:         doctorID,
		HealthFacilityID: uuid.New(),
		StartDate:        mustDate(t, "2020-01-31"),
		EndDate:          mustDate(t, "2020-01-01"),
	})

	require.Error(t, err)
	assert.True(t, domain.IsConfigurationError(err))
}

func TestCreateScheduleUnknownDoctor(t *testing.T) {
	service, _, _, _ := newScheduleFixture(t)

	_, err := service.CreateSchedule(context.Background(), in.CreateScheduleInput{
		DoctorID:         uuid.New(),
		HealthFacilityID: uuid.New(),
		StartDate:        mustDate(t, "2020-01-01"),
		EndDate:          mustDate(t, "2020-01-31"),
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateScheduleInvalidatesCache(t *testing.T) {
	service, _, cache, doctorID := newScheduleFixture(t)

	schedule, err := service.CreateSchedule(context.Background(), in.CreateScheduleInput{
		DoctorID:         doctorID,
		HealthFacilityID: uuid.New(),
		StartDate:        mustDate(t, "2020-01-01"),
		EndDate:          mustDate(t, "2020-01-31"),
	})
	require.NoError(t, err)

	newEnd := mustDate(t, "2020-02-29")
	updated, err := service.UpdateSchedule(context.Background(), schedule.ID, in.UpdateScheduleInput{
		EndDate: &newEnd,
	})

	require.NoError(t, err)
	assert.Equal(t, "2020-02-29", updated.EndDate.String())
	assert.Equal(t, []uuid.UUID{schedule.ID}, cache.invalidated)
}

func TestAddAvailabilityOverride(t *testing.T) {
	service, scheduleStore, cache, doctorID := newScheduleFixture(t)

	schedule, err := service.CreateSchedule(context.Background(), in.CreateScheduleInput{
		DoctorID:         doctorID,
		HealthFacilityID: uuid.New(),
		StartDate:        mustDate(t, "2020-01-01"),
		EndDate:          mustDate(t, "2020-01-31"),
	})
	require.NoError(t, err)

	override, err := service.AddAvailabilityOverride(context.Background(), schedule.ID,
		mustDate(t, "2020-01-06"),
		[]domain.Interval{mustInterval(t, "13:00", "13:30")})

	require.NoError(t, err)
	assert.Equal(t, schedule.ID, override.ScheduleID)

	stored, err := scheduleStore.GetAvailabilityOverrideByID(context.Background(), override.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Intervals, 1)
	assert.Contains(t, cache.invalidated, schedule.ID)
}

func TestAddAvailabilityOverrideRequiresIntervals(t *testing.T) {
	service, _, _, doctorID := newScheduleFixture(t)

	schedule, err := service.CreateSchedule(context.Background(), in.CreateScheduleInput{
		DoctorID:         doctorID,
		HealthFacilityID: uuid.New(),
		StartDate:        mustDate(t, "2020-01-01"),
		EndDate:          mustDate(t, "2020-01-31"),
	})
	require.NoError(t, err)

	_, err = service.AddAvailabilityOverride(context.Background(), schedule.ID, mustDate(t, "2020-01-06"), nil)

	require.Error(t, err)
	assert.True(t, domain.IsConfigurationError(err))
}

func TestUpdateAvailabilityOverrideUnknown(t *testing.T) {
	service, _, _, _ := newScheduleFixture(t)

	_, err := service.UpdateAvailabilityOverride(context.Background(), uuid.New(),
		[]domain.Interval{mustInterval(t, "08:00", "09:00")})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
