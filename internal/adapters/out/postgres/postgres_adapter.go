package postgres

import (
	"context"
	"errors"

	"github.com/byturco/ambulatory/internal/config"
	"github.com/byturco/ambulatory/internal/core/domain"
	"github.com/byturco/ambulatory/internal/core/ports/out"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewPool(ctx context.Context, cfg *config.Config, logger out.LoggerPort) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.Postgres.URI)
	if err != nil {
		logger.Error("postgres.pool.init_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		logger.Error("postgres.pool.ping_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	logger.Info("postgres.pool.connected", out.LogFields{})
	return pool, nil
}

// notFound maps the driver's empty-result sentinel to the domain one, so
// callers never depend on pgx.
func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}
