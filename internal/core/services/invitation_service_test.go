package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/byturco/ambulatory/internal/core/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockInvitationStore struct {
	invitations map[uuid.UUID]*domain.Invitation
}

func newMockInvitationStore() *mockInvitationStore {
	return &mockInvitationStore{invitations: make(map[uuid.UUID]*domain.Invitation)}
}

func (m *mockInvitationStore) GetInvitation(_ context.Context, id uuid.UUID) (*domain.Invitation, error) {
	inv, ok := m.invitations[id]
	if !ok {
		return nil, fmt.Errorf("invitation %s: %w", id, domain.ErrNotFound)
	}
	return inv, nil
}

func (m *mockInvitationStore) GetInvitationByEmail(_ context.Context, email string) (*domain.Invitation, error) {
	for _, inv := range m.invitations {
		if inv.Email == email {
			return inv, nil
		}
	}
	return nil, fmt.Errorf("invitation for %s: %w", email, domain.ErrNotFound)
}

func (m *mockInvitationStore) ListInvitations(_ context.Context) ([]domain.Invitation, error) {
	var result []domain.Invitation
	for _, inv := range m.invitations {
		result = append(result, *inv)
	}
	return result, nil
}

func (m *mockInvitationStore) CreateInvitation(_ context.Context, inv *domain.Invitation) error {
	m.invitations[inv.ID] = inv
	return nil
}

func (m *mockInvitationStore) UpdateInvitation(_ context.Context, inv *domain.Invitation) error {
	m.invitations[inv.ID] = inv
	return nil
}

func (m *mockInvitationStore) DeleteInvitation(_ context.Context, id uuid.UUID) error {
	if _, ok := m.invitations[id]; !ok {
		return fmt.Errorf("invitation %s: %w", id, domain.ErrNotFound)
	}
	delete(m.invitations, id)
	return nil
}

func TestInviteUser(t *testing.T) {
	store := newMockInvitationStore()
	service := NewInvitationService(store, nopLogger{})

	invitation, err := service.InviteUser(context.Background(), "doctor@example.com", domain.RoleDoctor)

	require.NoError(t, err)
	assert.Equal(t, "doctor@example.com", invitation.Email)
	assert.Equal(t, domain.RoleDoctor, invitation.Role)
	assert.Len(t, invitation.Token, invitationTokenLength)
}

func TestInviteUserTokensAreUnique(t *testing.T) {
	store := newMockInvitationStore()
	service := NewInvitationService(store, nopLogger{})

	first, err := service.InviteUser(context.Background(), "a@example.com", domain.RoleStaff)
	require.NoError(t, err)
	second, err := service.InviteUser(context.Background(), "b@example.com", domain.RoleStaff)
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
}

func TestInviteUserDuplicateEmail(t *testing.T) {
	store := newMockInvitationStore()
	service := NewInvitationService(store, nopLogger{})

	_, err := service.InviteUser(context.Background(), "doctor@example.com", domain.RoleDoctor)
	require.NoError(t, err)

	_, err = service.InviteUser(context.Background(), "doctor@example.com", domain.RoleStaff)
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestInviteUserUnknownRole(t *testing.T) {
	store := newMockInvitationStore()
	service := NewInvitationService(store, nopLogger{})

	_, err := service.InviteUser(context.Background(), "doctor@example.com", domain.Role("janitor"))

	require.Error(t, err)
	assert.True(t, domain.IsConfigurationError(err))
}

func TestRevokeInvitation(t *testing.T) {
	store := newMockInvitationStore()
	service := NewInvitationService(store, nopLogger{})

	invitation, err := service.InviteUser(context.Background(), "doctor@example.com", domain.RoleDoctor)
	require.NoError(t, err)

	require.NoError(t, service.RevokeInvitation(context.Background(), invitation.ID))
	assert.ErrorIs(t, service.RevokeInvitation(context.Background(), invitation.ID), domain.ErrNotFound)
}
