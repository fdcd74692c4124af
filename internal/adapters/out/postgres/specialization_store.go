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

type SpecializationStore struct {
	pool   *pgxpool.Pool
	logger out.LoggerPort
}

func NewSpecializationStore(pool *pgxpool.Pool, logger out.LoggerPort) *SpecializationStore {
	return &SpecializationStore{
		pool:   pool,
		logger: logger.WithModule("SpecializationStore"),
	}
}

const specializationColumns = `id, name, description, created_at, updated_at`

func scanSpecialization(row pgx.Row) (*domain.Specialization, error) {
	var sp domain.Specialization
	err := row.Scan(&sp.ID, &sp.Name, &sp.Description, &sp.CreatedAt, &sp.UpdatedAt)
	return &sp, err
}

func (s *SpecializationStore) GetSpecialization(ctx context.Context, specializationID uuid.UUID) (*domain.Specialization, error) {
	specialization, err := scanSpecialization(s.pool.QueryRow(ctx,
		`SELECT `+specializationColumns+` FROM specializations WHERE id = $1`, specializationID))
	if err != nil {
		return nil, fmt.Errorf("specialization %s: %w", specializationID, notFound(err))
	}
	return specialization, nil
}

func (s *SpecializationStore) ListSpecializations(ctx context.Context) ([]domain.Specialization, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+specializationColumns+` FROM specializations ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var specializations []domain.Specialization
	for rows.Next() {
		specialization, err := scanSpecialization(rows)
		if err != nil {
			return nil, err
		}
		specializations = append(specializations, *specialization)
	}
	return specializations, rows.Err()
}

func (s *SpecializationStore) CreateSpecialization(ctx context.Context, specialization *domain.Specialization) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO specializations (id, name, description)
		VALUES ($1, $2, $3)`,
		specialization.ID, specialization.Name, specialization.Description)
	return err
}

func (s *SpecializationStore) UpdateSpecialization(ctx context.Context, specialization *domain.Specialization) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE specializations
		SET name = $2, description = $3, updated_at = NOW()
		WHERE id = $1`,
		specialization.ID, specialization.Name, specialization.Description)
	return err
}

func (s *SpecializationStore) DeleteSpecialization(ctx context.Context, specializationID uuid.UUID) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM specializations WHERE id = $1`, specializationID)
	return err
}
