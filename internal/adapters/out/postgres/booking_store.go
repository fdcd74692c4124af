package postgres

import (
	"context"

	"github.com/byturco/ambulatory/internal/core/domain"
	"github.com/byturco/ambulatory/internal/core/ports/out"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingStore struct {
	pool   *pgxpool.Pool
	logger out.LoggerPort
}

func NewBookingStore(pool *pgxpool.Pool, logger out.LoggerPort) *BookingStore {
	return &BookingStore{
		pool:   pool,
		logger: logger.WithModule("BookingStore"),
	}
}

const bookingColumns = `id, schedule_id, patient_name, patient_email,
	preferred_date_time, actual_end_date_time, description, is_active, created_at, updated_at`

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(&b.ID, &b.ScheduleID, &b.PatientName, &b.PatientEmail,
		&b.PreferredDateTime, &b.ActualEndDateTime, &b.Description, &b.IsActive,
		&b.CreatedAt, &b.UpdatedAt)
	return &b, err
}

func (s *BookingStore) CreateBooking(ctx context.Context, booking *domain.Booking) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO bookings (id, schedule_id, patient_name, patient_email,
			preferred_date_time, actual_end_date_time, description, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		booking.ID, booking.ScheduleID, booking.PatientName, booking.PatientEmail,
		booking.PreferredDateTime, booking.ActualEndDateTime, booking.Description, booking.IsActive)
	return err
}

func (s *BookingStore) ListScheduleBookings(ctx context.Context, scheduleID uuid.UUID) ([]domain.Booking, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings
		 WHERE schedule_id = $1
		 ORDER BY preferred_date_time`,
		scheduleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *booking)
	}
	return bookings, rows.Err()
}
