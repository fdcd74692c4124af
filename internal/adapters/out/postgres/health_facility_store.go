package postgres

import (
	"context"
	"fmt"

	"github.com/byturco/ambulatory/internal/core/domain"
	"github.com/byturco/ambulatory/internal/core/ports/out"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HealthFacilityStore struct {
	pool   *pgxpool.Pool
	logger out.LoggerPort
}

func NewHealthFacilityStore(pool *pgxpool.Pool, logger out.LoggerPort) *HealthFacilityStore {
	return &HealthFacilityStore{
		pool:   pool,
		logger: logger.WithModule("HealthFacilityStore"),
	}
}

const facilityColumns = `id, name, address, city, phone, created_at, updated_at`

func scanFacility(row pgx.Row) (*domain.HealthFacility, error) {
	var f domain.HealthFacility
	err := row.Scan(&f.ID, &f.Name, &f.Address, &f.City, &f.Phone, &f.CreatedAt, &f.UpdatedAt)
	return &f, err
}

func (s *HealthFacilityStore) GetHealthFacility(ctx context.Context, facilityID uuid.UUID) (*domain.HealthFacility, error) {
	facility, err := scanFacility(s.pool.QueryRow(ctx,
		`SELECT `+facilityColumns+` FROM health_facilities WHERE id = $1`, facilityID))
	if err != nil {
		return nil, fmt.Errorf("health facility %s: %w", facilityID, notFound(err))
	}
	return facility, nil
}

func (s *HealthFacilityStore) ListHealthFacilities(ctx context.Context) ([]domain.HealthFacility, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+facilityColumns+` FROM health_facilities ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var facilities []domain.HealthFacility
	for rows.Next() {
		facility, err := scanFacility(rows)
		if err != nil {
			return nil, err
		}
		facilities = append(facilities, *facility)
	}
	return facilities, rows.Err()
}

func (s *HealthFacilityStore) CreateHealthFacility(ctx context.Context, facility *domain.HealthFacility) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO health_facilities (id, name, address, city, phone)
		VALUES ($1, $2, $3, $4, $5)`,
		facility.ID, facility.Name, facility.Address, facility.City, facility.Phone)
	return err
}

func (s *HealthFacilityStore) UpdateHealthFacility(ctx context.Context, facility *domain.HealthFacility) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE health_facilities
		SET name = $2, address = $3, city = $4, phone = $5, updated_at = NOW()
		WHERE id = $1`,
		facility.ID, facility.Name, facility.Address, facility.City, facility.Phone)
	return err
}
