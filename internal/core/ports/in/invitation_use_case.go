package in

import (
	"context"

	"github.com/byturco/ambulatory/internal/core/domain"
	"github.com/google/uuid"
)

type InvitationUseCase interface {
	GetInvitation(ctx context.Context, invitationID uuid.UUID) (*domain.Invitation, error)
	ListInvitations(ctx context.Context) ([]domain.Invitation, error)
	InviteUser(ctx context.Context, email string, role domain.Role) (*domain.Invitation, error)
	UpdateInvitation(ctx context.Context, invitationID uuid.UUID, role domain.Role) (*domain.Invitation, error)
	RevokeInvitation(ctx context.Context, invitationID uuid.UUID) error
}
