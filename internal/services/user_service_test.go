package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdeck/internal/password"
)

func TestCreateUserHashesPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, "a@example.com", "s3cret")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "a@example.com", user.Email)
	assert.NotEqual(t, "s3cret", user.PasswordHash)
	assert.True(t, password.Verify("s3cret", user.PasswordHash))
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "a@example.com", "first")
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, "a@example.com", "second")
	assert.ErrorIs(t, err, ErrEmailTaken)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM users WHERE email = ?", "a@example.com").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestAuthenticateUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, "a@example.com", "s3cret")
	require.NoError(t, err)

	user, err := svc.AuthenticateUser(ctx, "a@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = svc.AuthenticateUser(ctx, "a@example.com", "wrong")
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, err = svc.AuthenticateUser(ctx, "missing@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetUserByID(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, "a@example.com", "s3cret")
	require.NoError(t, err)

	got, err := svc.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, got.Email)

	_, err = svc.GetUserByID(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}
