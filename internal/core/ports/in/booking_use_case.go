package in

import (
	"context"
	"time"

	"github.com/byturco/ambulatory/internal/core/domain"
	"github.com/google/uuid"
)

type BookAppointmentInput struct {
	PatientName       string
	PatientEmail      string
	PreferredDateTime time.Time
	Description       string
}

type BookingUseCase interface {
	// BookAppointment validates the requested time against the schedule's
	// slots before persisting; an unavailable time fails with
	// domain.ErrSlotUnavailable.
	BookAppointment(ctx context.Context, scheduleID uuid.UUID, input BookAppointmentInput) (*domain.Booking, error)
	ListScheduleBookings(ctx context.Context, scheduleID uuid.UUID) ([]domain.Booking, error)
}
