package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/byturco/ambulatory/internal/core/domain"
	"github.com/byturco/ambulatory/internal/core/ports/out"
	"github.com/google/uuid"
)

const invitationTokenLength = 25

type InvitationService struct {
	invitationStore out.InvitationStorePort
	logger          out.LoggerPort
}

func NewInvitationService(invitationStore out.InvitationStorePort, logger out.LoggerPort) *InvitationService {
	return &InvitationService{
		invitationStore: invitationStore,
		logger:          logger.WithModule("InvitationService"),
	}
}

func (s *InvitationService) GetInvitation(ctx context.Context, invitationID uuid.UUID) (*domain.Invitation, error) {
	return s.invitationStore.GetInvitation(ctx, invitationID)
}

func (s *InvitationService) ListInvitations(ctx context.Context) ([]domain.Invitation, error) {
	return s.invitationStore.ListInvitations(ctx)
}

func (s *InvitationService) InviteUser(ctx context.Context, email string, role domain.Role) (*domain.Invitation, error) {
	if !role.Valid() {
		return nil, domain.NewConfigurationError("unknown role %q", role)
	}

	existing, err := s.invitationStore.GetInvitationByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("invitation.lookup_failed: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicateEmail
	}

	token, err := generateInvitationToken()
	if err != nil {
		return nil, fmt.Errorf("invitation.token_failed: %w", err)
	}

	invitation := &domain.Invitation{
		ID:    uuid.New(),
		Email: email,
		Role:  role,
		Token: token,
	}

	if err := s.invitationStore.CreateInvitation(ctx, invitation); err != nil {
		s.logger.Error("invitation.create.failed", out.LogFields{
			"email": email,
			"error": err.Error(),
		})
		return nil, fmt.Errorf("invitation.create.failed: %w", err)
	}

	s.logger.Info("invitation.created", out.LogFields{
		"invitationId": invitation.ID,
		"email":        email,
		"role":         role,
	})

	return invitation, nil
}

func (s *InvitationService) UpdateInvitation(ctx context.Context, invitationID uuid.UUID, role domain.Role) (*domain.Invitation, error) {
	if !role.Valid() {
		return nil, domain.NewConfigurationError("unknown role %q", role)
	}

	invitation, err := s.invitationStore.GetInvitation(ctx, invitationID)
	if err != nil {
		return nil, err
	}

	invitation.Role = role
	if err := s.invitationStore.UpdateInvitation(ctx, invitation); err != nil {
		return nil, fmt.Errorf("invitation.update.failed: %w", err)
	}

	return invitation, nil
}

func (s *InvitationService) RevokeInvitation(ctx context.Context, invitationID uuid.UUID) error {
	if err := s.invitationStore.DeleteInvitation(ctx, invitationID); err != nil {
		return err
	}
	s.logger.Info("invitation.revoked", out.LogFields{
		"invitationId": invitationID,
	})
	return nil
}

func generateInvitationToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf)[:invitationTokenLength], nil
}
