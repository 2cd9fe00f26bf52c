package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"promptcraft/backend/internal/service"
)

func TestOwnerContext(t *testing.T) {
	_, err := service.OwnerFrom(context.Background())
	require.ErrorIs(t, err, service.ErrUnauthorized)

	_, err = service.OwnerFrom(service.WithOwner(context.Background(), 0))
	require.ErrorIs(t, err, service.ErrUnauthorized)

	id, err := service.OwnerFrom(service.WithOwner(context.Background(), 42))
	require.NoError(t, err)
	require.Equal(t, int64(42), id)
}

func TestScoper_RejectsZeroOwner(t *testing.T) {
	h := newHarness(t)

	_, err := h.scoper.For(0)
	require.ErrorIs(t, err, service.ErrUnauthorized)

	_, err = h.scoper.FromContext(context.Background())
	require.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestScoper_FromContext(t *testing.T) {
	h := newHarness(t)
	alice, _ := h.owner(t, "alice")

	ws, err := h.scoper.FromContext(service.WithOwner(context.Background(), alice.OwnerID()))
	require.NoError(t, err)
	require.Equal(t, alice.OwnerID(), ws.OwnerID())

	created, err := ws.CreateFolder(context.Background(), "Mine", nil)
	require.NoError(t, err)
	require.Equal(t, alice.OwnerID(), created.OwnerID)
}
