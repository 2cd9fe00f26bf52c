package service_test

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"promptcraft/backend/internal/model"
	"promptcraft/backend/internal/repository"
	"promptcraft/backend/internal/repository/mock"
	"promptcraft/backend/internal/service"
)

const testSecret = "test-secret"

func newAuth(h *harness) service.AuthService {
	return service.NewAuthService(h.tx, repository.NewUserRepository(h.db), h.trash, testSecret, time.Hour)
}

func TestAuthService_RegisterProvisionsTrash(t *testing.T) {
	h := newHarness(t)
	auth := newAuth(h)
	ctx := context.Background()

	resp, err := auth.Register(ctx, "  alice ", "secret1")
	require.NoError(t, err)
	require.Equal(t, "alice", resp.Username)
	require.NotEmpty(t, resp.Token)

	folders, err := h.folders.ListByOwner(ctx, resp.UserID)
	require.NoError(t, err)
	require.Len(t, folders, 1)
	require.True(t, folders[0].IsSystem)

	ownerID, err := auth.ValidateToken(resp.Token)
	require.NoError(t, err)
	require.Equal(t, resp.UserID, ownerID)
}

func TestAuthService_Register_Validation(t *testing.T) {
	h := newHarness(t)
	auth := newAuth(h)
	ctx := context.Background()

	cases := []struct{ username, password string }{
		{"", "secret1"},
		{"ab", "secret1"},
		{strings.Repeat("a", 65), "secret1"},
		{"alice", ""},
		{"alice", "12345"},
	}
	for _, tc := range cases {
		_, err := auth.Register(ctx, tc.username, tc.password)
		require.ErrorIs(t, err, service.ErrInvalid, "username %q password %q", tc.username, tc.password)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	h := newHarness(t)
	auth := newAuth(h)
	ctx := context.Background()

	first, err := auth.Register(ctx, "alice", "secret1")
	require.NoError(t, err)
	_, err = auth.Register(ctx, "alice", "another")
	require.ErrorIs(t, err, service.ErrConflict)

	folders, err := h.folders.ListByOwner(ctx, first.UserID)
	require.NoError(t, err)
	require.Len(t, folders, 1)
}

func TestAuthService_Login(t *testing.T) {
	h := newHarness(t)
	auth := newAuth(h)
	ctx := context.Background()
	registered, err := auth.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	resp, err := auth.Login(ctx, "alice", "secret1")
	require.NoError(t, err)
	require.Equal(t, registered.UserID, resp.UserID)

	_, err = auth.Login(ctx, "alice", "wrong-password")
	require.ErrorIs(t, err, service.ErrUnauthorized)

	_, err = auth.Login(ctx, "nobody", "secret1")
	require.ErrorIs(t, err, service.ErrUnauthorized)

	_, err = auth.Login(ctx, "", "")
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestAuthService_Register_RollsBackOnProvisionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	tx := mock.NewMockTxManager(ctrl)
	folders := mock.NewMockFolderRepository(ctrl)
	trash := service.NewTrashService(folders, mock.NewMockPromptRepository(ctrl))
	auth := service.NewAuthService(tx, users, trash, testSecret, time.Hour)

	tx.EXPECT().ExecTx(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn repository.TxFn) error {
		return fn(ctx)
	})
	users.EXPECT().FindByUsername(gomock.Any(), "alice").Return(nil, nil)
	users.EXPECT().Create(gomock.Any(), "alice", gomock.Any()).Return(model.User{ID: 3, Username: "alice"}, nil)
	folders.EXPECT().GetSystem(gomock.Any(), int64(3)).Return(model.Folder{}, sql.ErrNoRows)
	folders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(model.Folder{}, errors.New("disk full"))

	_, err := auth.Register(context.Background(), "alice", "secret1")
	require.Error(t, err)
}

func TestAuthService_ValidateToken_Rejects(t *testing.T) {
	h := newHarness(t)
	auth := newAuth(h)

	_, err := auth.ValidateToken("not-a-token")
	require.ErrorIs(t, err, service.ErrUnauthorized)

	expired := signToken(t, testSecret, jwt.MapClaims{"sub": "7", "exp": time.Now().Add(-time.Minute).Unix()})
	_, err = auth.ValidateToken(expired)
	require.ErrorIs(t, err, service.ErrUnauthorized)

	wrongKey := signToken(t, "other-secret", jwt.MapClaims{"sub": "7", "exp": time.Now().Add(time.Hour).Unix()})
	_, err = auth.ValidateToken(wrongKey)
	require.ErrorIs(t, err, service.ErrUnauthorized)

	noExp := signToken(t, testSecret, jwt.MapClaims{"sub": "7"})
	_, err = auth.ValidateToken(noExp)
	require.ErrorIs(t, err, service.ErrUnauthorized)

	badSub := signToken(t, testSecret, jwt.MapClaims{"sub": "alice", "exp": time.Now().Add(time.Hour).Unix()})
	_, err = auth.ValidateToken(badSub)
	require.ErrorIs(t, err, service.ErrUnauthorized)

	good := signToken(t, testSecret, jwt.MapClaims{"sub": strconv.Itoa(7), "exp": time.Now().Add(time.Hour).Unix()})
	ownerID, err := auth.ValidateToken(good)
	require.NoError(t, err)
	require.Equal(t, int64(7), ownerID)
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}
