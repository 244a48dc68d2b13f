package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "admin", "s3cret-pass"))

	u, err := svc.Authenticate(ctx, "admin", "s3cret-pass")
	require.NoError(t, err)
	require.Equal(t, "admin", u.Username)
	require.Equal(t, "admin", u.Role)
	require.NotEqual(t, "s3cret-pass", u.PasswordHash, "password must be stored hashed")

	// unknown user and wrong password fail with the same generic error
	_, err = svc.Authenticate(ctx, "nobody", "s3cret-pass")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Authenticate(ctx, "admin", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Authenticate(ctx, "", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestEnsureAdminIdempotent(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "admin", "first-pass"))
	require.NoError(t, svc.EnsureAdmin(ctx, "admin", "second-pass"))

	// first password still wins: the second call was a no-op
	_, err := svc.Authenticate(ctx, "admin", "first-pass")
	require.NoError(t, err)

	require.Error(t, svc.EnsureAdmin(ctx, "other", ""), "empty password must be rejected")
}
