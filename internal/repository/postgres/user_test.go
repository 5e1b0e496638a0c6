package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subs_dashboard/internal/entity"
	"subs_dashboard/internal/usecase"
)

func TestUserRepository_Users(t *testing.T) {
	ctx := context.Background()
	pool := newPool(t)
	ur := NewUserRepository(pool)

	u := &entity.User{ID: strfmt.UUID(uuid.New().String()), Email: "jane@example.com", PasswordHash: []byte("hash")}
	created, err := ur.SaveUser(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, u.ID, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	t.Run("duplicate email", func(t *testing.T) {
		_, err := ur.SaveUser(ctx, &entity.User{ID: strfmt.UUID(uuid.New().String()), Email: "jane@example.com", PasswordHash: []byte("x")})
		assert.ErrorIs(t, err, usecase.ErrEmailTaken)
	})

	t.Run("by email", func(t *testing.T) {
		got, err := ur.GetUserByEmail(ctx, "jane@example.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)
		assert.Equal(t, []byte("hash"), got.PasswordHash)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := ur.GetUserByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserRepository_Sessions(t *testing.T) {
	ctx := context.Background()
	pool := newPool(t)
	ur := NewUserRepository(pool)
	uid := seedUser(t, pool)

	now := time.Now().UTC().Truncate(time.Second)
	live := &entity.Session{Token: "live", UserID: uid, ExpiresAt: now.Add(time.Hour)}
	stale := &entity.Session{Token: "stale", UserID: uid, ExpiresAt: now.Add(-time.Hour)}
	require.NoError(t, ur.SaveSession(ctx, live))
	require.NoError(t, ur.SaveSession(ctx, stale))

	got, err := ur.GetSession(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, uid, got.UserID)
	assert.True(t, live.ExpiresAt.Equal(got.ExpiresAt))

	_, err = ur.GetSession(ctx, "missing")
	assert.ErrorIs(t, err, usecase.ErrSessionNotFound)

	n, err := ur.DeleteExpiredSessions(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	_, err = ur.GetSession(ctx, "stale")
	assert.ErrorIs(t, err, usecase.ErrSessionNotFound)

	require.NoError(t, ur.DeleteSession(ctx, "live"))
	assert.ErrorIs(t, ur.DeleteSession(ctx, "live"), usecase.ErrSessionNotFound)
}
