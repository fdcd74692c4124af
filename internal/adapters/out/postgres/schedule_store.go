package postgres

import (
	"context"
	"encoding/json"
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

type ScheduleStore struct {
	pool   *pgxpool.Pool
	logger out.LoggerPort
}

func NewScheduleStore(pool *pgxpool.Pool, logger out.LoggerPort) *ScheduleStore {
	return &ScheduleStore{
		pool:   pool,
		logger: logger.WithModule("ScheduleStore"),
	}
}

const scheduleColumns = `id, doctor_id, health_facility_id, start_date, end_date,
	estimated_service_time_in_minutes, created_at, updated_at`

func scanSchedule(row pgx.Row) (*domain.Schedule, error) {
	var s domain.Schedule
	var startDate, endDate time.Time

	err := row.Scan(&s.ID, &s.DoctorID, &s.HealthFacilityID, &startDate, &endDate,
		&s.EstimatedServiceTimeInMinutes, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}

	s.StartDate = json_types.Date{Date: startDate}
	s.EndDate = json_types.Date{Date: endDate}
	return &s, nil
}

func (s *ScheduleStore) GetSchedule(ctx context.Context, scheduleID uuid.UUID) (*domain.Schedule, error) {
	schedule, err := scanSchedule(s.pool.QueryRow(ctx,
		`SELECT `+scheduleColumns+` FROM schedules WHERE id = $1`, scheduleID))
	if err != nil {
		return nil, fmt.Errorf("schedule %s: %w", scheduleID, notFound(err))
	}
	return schedule, nil
}

func (s *ScheduleStore) ListSchedules(ctx context.Context) ([]domain.Schedule, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+scheduleColumns+` FROM schedules ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []domain.Schedule
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, *schedule)
	}
	return schedules, rows.Err()
}

func (s *ScheduleStore) CreateSchedule(ctx context.Context, schedule *domain.Schedule) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO schedules (id, doctor_id, health_facility_id, start_date, end_date,
			estimated_service_time_in_minutes)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		schedule.ID, schedule.DoctorID, schedule.HealthFacilityID,
		schedule.StartDate.String(), schedule.EndDate.String(),
		schedule.EstimatedServiceTimeInMinutes)
	return err
}

func (s *ScheduleStore) UpdateSchedule(ctx context.Context, schedule *domain.Schedule) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE schedules
		SET start_date = $2, end_date = $3, estimated_service_time_in_minutes = $4,
			updated_at = NOW()
		WHERE id = $1`,
		schedule.ID, schedule.StartDate.String(), schedule.EndDate.String(),
		schedule.EstimatedServiceTimeInMinutes)
	return err
}

const overrideColumns = `id, schedule_id, date, intervals, created_at, updated_at`

func scanOverride(row pgx.Row) (*domain.AvailabilityOverride, error) {
	var o domain.AvailabilityOverride
	var date time.Time
	var intervalsRaw []byte

	err := row.Scan(&o.ID, &o.ScheduleID, &date, &intervalsRaw, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}

	o.Date = json_types.Date{Date: date}
	if err := json.Unmarshal(intervalsRaw, &o.Intervals); err != nil {
		// Interval times are validated on the way in, a parse failure here
		// means the stored data itself is bad.
		return nil, domain.NewConfigurationError("override %s has malformed intervals: %v", o.ID, err)
	}
	return &o, nil
}

func (s *ScheduleStore) GetAvailabilityOverride(ctx context.Context, scheduleID uuid.UUID, date time.Time) (*domain.AvailabilityOverride, error) {
	override, err := scanOverride(s.pool.QueryRow(ctx,
		`SELECT `+overrideColumns+` FROM availability_overrides
		 WHERE schedule_id = $1 AND date = $2`,
		scheduleID, date.Format("2006-01-02")))
	if err != nil {
		// No override means fall back to default hours, not an error
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return override, nil
}

func (s *ScheduleStore) GetAvailabilityOverrideByID(ctx context.Context, overrideID uuid.UUID) (*domain.AvailabilityOverride, error) {
	override, err := scanOverride(s.pool.QueryRow(ctx,
		`SELECT `+overrideColumns+` FROM availability_overrides WHERE id = $1`, overrideID))
	if err != nil {
		return nil, fmt.Errorf("availability override %s: %w", overrideID, notFound(err))
	}
	return override, nil
}

func (s *ScheduleStore) CreateAvailabilityOverride(ctx context.Context, override *domain.AvailabilityOverride) error {
	intervalsRaw, err := json.Marshal(override.Intervals)
	if err != nil {
		return err
	}

	// availability_overrides carries a unique (schedule_id, date) index,
	// the database rejects a second override for the same day
	_, err = s.pool.Exec(ctx, `
		INSERT INTO availability_overrides (id, schedule_id, date, intervals)
		VALUES ($1, $2, $3, $4)`,
		override.ID, override.ScheduleID, override.Date.String(), intervalsRaw)
	return err
}

func (s *ScheduleStore) UpdateAvailabilityOverride(ctx context.Context, override *domain.AvailabilityOverride) error {
	intervalsRaw, err := json.Marshal(override.Intervals)
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx, `
		UPDATE availability_overrides
		SET intervals = $2, updated_at = NOW()
		WHERE id = $1`,
		override.ID, intervalsRaw)
	return err
}
