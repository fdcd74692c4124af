package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/byturco/ambulatory/internal/core/domain"
	"github.com/byturco/ambulatory/internal/core/json_types"
	"github.com/byturco/ambulatory/internal/core/ports/out"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DoctorStore struct {
	pool   *pgxpool.Pool
	logger out.LoggerPort
}

func NewDoctorStore(pool *pgxpool.Pool, logger out.LoggerPort) *DoctorStore {
	return &DoctorStore{
		pool:   pool,
		logger: logger.WithModule("DoctorStore"),
	}
}

const doctorColumns = `id, full_name, email, specialization_id, created_at, updated_at`

func scanDoctor(row pgx.Row) (*domain.Doctor, error) {
	var d domain.Doctor
	err := row.Scan(&d.ID, &d.FullName, &d.Email, &d.SpecializationID, &d.CreatedAt, &d.UpdatedAt)
	return &d, err
}

func (s *DoctorStore) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*domain.Doctor, error) {
	doctor, err := scanDoctor(s.pool.QueryRow(ctx,
		`SELECT `+doctorColumns+` FROM doctors WHERE id = $1`, doctorID))
	if err != nil {
		return nil, fmt.Errorf("doctor %s: %w", doctorID, notFound(err))
	}
	return doctor, nil
}

func (s *DoctorStore) ListDoctors(ctx context.Context) ([]domain.Doctor, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+doctorColumns+` FROM doctors ORDER BY full_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var doctors []domain.Doctor
	for rows.Next() {
		doctor, err := scanDoctor(rows)
		if err != nil {
			return nil, err
		}
		doctors = append(doctors, *doctor)
	}
	return doctors, rows.Err()
}

func scanWorkingHours(row pgx.Row) (*domain.WorkingHours, error) {
	var wh domain.WorkingHours
	var weekday int
	var fromStr, toStr string

	if err := row.Scan(&wh.DoctorID, &weekday, &fromStr, &toStr); err != nil {
		return nil, err
	}
	wh.Weekday = time.Weekday(weekday)

	from, err := json_types.ParseTimeOfDay(fromStr)
	if err != nil {
		return nil, domain.NewConfigurationError("working hours of doctor %s: %v", wh.DoctorID, err)
	}
	to, err := json_types.ParseTimeOfDay(toStr)
	if err != nil {
		return nil, domain.NewConfigurationError("working hours of doctor %s: %v", wh.DoctorID, err)
	}

	wh.Interval = domain.Interval{From: from, To: to}
	return &wh, nil
}

func (s *DoctorStore) GetWorkingHours(ctx context.Context, doctorID uuid.UUID, weekday time.Weekday) (*domain.WorkingHours, error) {
	wh, err := scanWorkingHours(s.pool.QueryRow(ctx, `
		SELECT doctor_id, weekday, start_time, end_time
		FROM doctor_working_hours
		WHERE doctor_id = $1 AND weekday = $2`,
		doctorID, int(weekday)))
	if err != nil {
		// A workless weekday is expressed as absence, not an error
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return wh, nil
}

func (s *DoctorStore) ListWorkingHours(ctx context.Context, doctorID uuid.UUID) ([]domain.WorkingHours, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT doctor_id, weekday, start_time, end_time
		FROM doctor_working_hours
		WHERE doctor_id = $1
		ORDER BY weekday`,
		doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hours []domain.WorkingHours
	for rows.Next() {
		wh, err := scanWorkingHours(rows)
		if err != nil {
			return nil, err
		}
		hours = append(hours, *wh)
	}
	return hours, rows.Err()
}

func (s *DoctorStore) ReplaceWorkingHours(ctx context.Context, doctorID uuid.UUID, hours []domain.WorkingHours) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`DELETE FROM doctor_working_hours WHERE doctor_id = $1`, doctorID); err != nil {
		return err
	}

	for _, wh := range hours {
		if _, err := tx.Exec(ctx, `
			INSERT INTO doctor_working_hours (doctor_id, weekday, start_time, end_time)
			VALUES ($1, $2, $3, $4)`,
			doctorID, int(wh.Weekday), wh.Interval.From.String(), wh.Interval.To.String()); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
