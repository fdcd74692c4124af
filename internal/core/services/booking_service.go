package services

import (
	"context"
	"fmt"

	"github.com/byturco/ambulatory/internal/core/domain"
	"github.com/byturco/ambulatory/internal/core/ports/in"
	"github.com/byturco/ambulatory/internal/core/ports/out"
	"github.com/google/uuid"
)

type BookingService struct {
	scheduleStore out.ScheduleStorePort
	bookingStore  out.BookingStorePort
	availability  in.AvailabilityUseCase
	logger        out.LoggerPort
}

func NewBookingService(
	scheduleStore out.ScheduleStorePort,
	bookingStore out.BookingStorePort,
	availability in.AvailabilityUseCase,
	logger out.LoggerPort,
) *BookingService {
	return &BookingService{
		scheduleStore: scheduleStore,
		bookingStore:  bookingStore,
		availability:  availability,
		logger:        logger.WithModule("BookingService"),
	}
}

func (s *BookingService) BookAppointment(ctx context.Context, scheduleID uuid.UUID, input in.BookAppointmentInput) (*domain.Booking, error) {
	available, err := s.availability.CheckAvailabilitySlot(ctx, scheduleID, input.PreferredDateTime)
	if err != nil {
		return nil, err
	}
	if !available {
		s.logger.Info("booking.rejected.slot_unavailable", out.LogFields{
			"scheduleId":        scheduleID,
			"preferredDateTime": input.PreferredDateTime,
		})
		return nil, domain.ErrSlotUnavailable
	}

	schedule, err := s.scheduleStore.GetSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ID:                uuid.New(),
		ScheduleID:        scheduleID,
		PatientName:       input.PatientName,
		PatientEmail:      input.PatientEmail,
		PreferredDateTime: input.PreferredDateTime,
		ActualEndDateTime: input.PreferredDateTime.Add(schedule.ServiceDuration()),
		Description:       input.Description,
		IsActive:          true,
	}

	if err := s.bookingStore.CreateBooking(ctx, booking); err != nil {
		s.logger.Error("booking.create.failed", out.LogFields{
			"scheduleId": scheduleID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("booking.create.failed: %w", err)
	}

	s.logger.Info("booking.created", out.LogFields{
		"bookingId":         booking.ID,
		"scheduleId":        scheduleID,
		"preferredDateTime": booking.PreferredDateTime,
	})

	return booking, nil
}

func (s *BookingService) ListScheduleBookings(ctx context.Context, scheduleID uuid.UUID) ([]domain.Booking, error) {
	if _, err := s.scheduleStore.GetSchedule(ctx, scheduleID); err != nil {
		return nil, err
	}
	return s.bookingStore.ListScheduleBookings(ctx, scheduleID)
}
