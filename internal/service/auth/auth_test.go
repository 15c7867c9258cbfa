package auth_test

import (
	"BookShelf/internal/app_errors"
	"BookShelf/internal/models"
	"BookShelf/internal/service/auth"
	"BookShelf/internal/storage/memory"
	"BookShelf/pkg/logger"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*auth.AuthService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	manager := auth.NewJWTManager("test-secret", "BookShelf", "BookShelfClients", 30*time.Minute)
	return auth.NewAuthService(logger.New("local"), manager, store), store
}

func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newAuthService(t)

	id, err := svc.Register(ctx, "alice", "alice@example.com", "pw123456", time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	token, err := svc.Login(ctx, "alice", "pw123456")
	require.NoError(t, err)

	claims, err := svc.ParseToken(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "alice", claims.Username())
	require.Equal(t, id, claims.UserID)
	require.Equal(t, models.DefaultRole, claims.Role)
}

func TestRegister_UsernameTaken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newAuthService(t)

	_, err := svc.Register(ctx, "admin", "a@x.com", "pw123456", time.Time{})
	require.NoError(t, err)

	// Same username, different email.
	_, err = svc.Register(ctx, "admin", "b@x.com", "pw123456", time.Time{})
	require.ErrorIs(t, err, app_errors.ErrUsernameTaken)
}

func TestRegister_EmailTaken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newAuthService(t)

	_, err := svc.Register(ctx, "first", "shared@x.com", "pw123456", time.Time{})
	require.NoError(t, err)

	_, err = svc.Register(ctx, "second", "shared@x.com", "pw123456", time.Time{})
	require.ErrorIs(t, err, app_errors.ErrEmailTaken)
}

func TestLogin_UnknownUser(t *testing.T) {
	t.Parallel()
	svc, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), "ghost", "pw")
	require.ErrorIs(t, err, app_errors.ErrUserNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newAuthService(t)

	_, err := svc.Register(ctx, "alice", "alice@example.com", "pw123456", time.Time{})
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice", "wrongpass")
	require.ErrorIs(t, err, app_errors.ErrIncorrectPassword)
}

func TestDeleteByUsername(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newAuthService(t)

	_, err := svc.Register(ctx, "alice", "alice@example.com", "pw123456", time.Time{})
	require.NoError(t, err)

	require.ErrorIs(t, svc.DeleteByUsername(ctx, "alice", "wrongpass"), app_errors.ErrIncorrectPassword)
	require.ErrorIs(t, svc.DeleteByUsername(ctx, "nobody", "pw123456"), app_errors.ErrUserNotFound)

	require.NoError(t, svc.DeleteByUsername(ctx, "alice", "pw123456"))
	_, err = svc.Login(ctx, "alice", "pw123456")
	require.ErrorIs(t, err, app_errors.ErrUserNotFound)
}

func TestDeleteByEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newAuthService(t)

	require.ErrorIs(t, svc.DeleteByEmail(ctx, "nobody@x.com"), app_errors.ErrUserNotFound)

	_, err := svc.Register(ctx, "alice", "alice@example.com", "pw123456", time.Time{})
	require.NoError(t, err)

	// No password needed on the email path.
	require.NoError(t, svc.DeleteByEmail(ctx, "alice@example.com"))
	_, err = svc.Login(ctx, "alice", "pw123456")
	require.ErrorIs(t, err, app_errors.ErrUserNotFound)
}
