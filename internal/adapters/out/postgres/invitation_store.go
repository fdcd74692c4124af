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

type InvitationStore struct {
	pool   *pgxpool.Pool
	logger out.LoggerPort
}

func NewInvitationStore(pool *pgxpool.Pool, logger out.LoggerPort) *InvitationStore {
	return &InvitationStore{
		pool:   pool,
		logger: logger.WithModule("InvitationStore"),
	}
}

const invitationColumns = `id, email, role, token, created_at, updated_at`

func scanInvitation(row pgx.Row) (*domain.Invitation, error) {
	var inv domain.Invitation
	err := row.Scan(&inv.ID, &inv.Email, &inv.Role, &inv.Token, &inv.CreatedAt, &inv.UpdatedAt)
	return &inv, err
}

func (s *InvitationStore) GetInvitation(ctx context.Context, invitationID uuid.UUID) (*domain.Invitation, error) {
	invitation, err := scanInvitation(s.pool.QueryRow(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE id = $1`, invitationID))
	if err != nil {
		return nil, fmt.Errorf("invitation %s: %w", invitationID, notFound(err))
	}
	return invitation, nil
}

func (s *InvitationStore) GetInvitationByEmail(ctx context.Context, email string) (*domain.Invitation, error) {
	invitation, err := scanInvitation(s.pool.QueryRow(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE email = $1`, email))
	if err != nil {
		return nil, fmt.Errorf("invitation for %s: %w", email, notFound(err))
	}
	return invitation, nil
}

func (s *InvitationStore) ListInvitations(ctx context.Context) ([]domain.Invitation, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+invitationColumns+` FROM invitations ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invitations []domain.Invitation
	for rows.Next() {
		invitation, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		invitations = append(invitations, *invitation)
	}
	return invitations, rows.Err()
}

func (s *InvitationStore) CreateInvitation(ctx context.Context, invitation *domain.Invitation) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO invitations (id, email, role, token)
		VALUES ($1, $2, $3, $4)`,
		invitation.ID, invitation.Email, invitation.Role, invitation.Token)
	return err
}

func (s *InvitationStore) UpdateInvitation(ctx context.Context, invitation *domain.Invitation) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE invitations
		SET email = $2, role = $3, token = $4, updated_at = NOW()
		WHERE id = $1`,
		invitation.ID, invitation.Email, invitation.Role, invitation.Token)
	return err
}

func (s *InvitationStore) DeleteInvitation(ctx context.Context, invitationID uuid.UUID) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM invitations WHERE id = $1`, invitationID)
	return err
}
