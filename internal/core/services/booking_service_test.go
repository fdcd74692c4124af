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

type mockBookingStore struct {
	bookings []domain.Booking
}

func (m *mockBookingStore) CreateBooking(_ context.Context, b *domain.Booking) error {
	m.bookings = append(m.bookings, *b)
	return nil
}

func (m *mockBookingStore) ListScheduleBookings(_ context.Context, scheduleID uuid.UUID) ([]domain.Booking, error) {
	var result []domain.Booking
	for _, b := range m.bookings {
		if b.ScheduleID == scheduleID {
			result = append(result, b)
		}
	}
	return result, nil
}

func newBookingFixture(t *testing.T) (*BookingService, *mockBookingStore, uuid.UUID) {
	t.Helper()

	availability, scheduleStore, _, scheduleID := newAvailabilityFixture(t)

	bookingStore := &mockBookingStore{}
	service := NewBookingService(scheduleStore, bookingStore, availability, nopLogger{})
	return service, bookingStore, scheduleID
}

func TestBookAppointment(t *testing.T) {
	service, bookingStore, scheduleID := newBookingFixture(t)

	input := in.BookAppointmentInput{
		PatientName:       "Lisa Cuddy",
		PatientEmail:      "lisa@example.com",
		PreferredDateTime: time.Date(2020, 1, 6, 9, 15, 0, 0, time.UTC),
		Description:       "follow-up",
	}

	booking, err := service.BookAppointment(context.Background(), scheduleID, input)

	require.NoError(t, err)
	assert.Equal(t, scheduleID, booking.ScheduleID)
	assert.Equal(t, input.PreferredDateTime.Add(15*time.Minute), booking.ActualEndDateTime)
	assert.True(t, booking.IsActive)
	require.Len(t, bookingStore.bookings, 1)
}

func TestBookAppointmentUnavailableSlot(t *testing.T) {
	service, bookingStore, scheduleID := newBookingFixture(t)

	input := in.BookAppointmentInput{
		PatientName:       "Lisa Cuddy",
		PatientEmail:      "lisa@example.com",
		PreferredDateTime: time.Date(2020, 1, 6, 9, 20, 0, 0, time.UTC),
	}

	_, err := service.BookAppointment(context.Background(), scheduleID, input)

	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
	assert.Empty(t, bookingStore.bookings)
}

func TestBookAppointmentUnknownSchedule(t *testing.T) {
	service, _, _ := newBookingFixture(t)

	input := in.BookAppointmentInput{
		PreferredDateTime: time.Date(2020, 1, 6, 9, 15, 0, 0, time.UTC),
	}

	_, err := service.BookAppointment(context.Background(), uuid.New(), input)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListScheduleBookings(t *testing.T) {
	service, _, scheduleID := newBookingFixture(t)

	_, err := service.BookAppointment(context.Background(), scheduleID, in.BookAppointmentInput{
		PatientName:       "James Wilson",
		PreferredDateTime: time.Date(2020, 1, 6, 9, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	bookings, err := service.ListScheduleBookings(context.Background(), scheduleID)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)

	_, err = service.ListScheduleBookings(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
