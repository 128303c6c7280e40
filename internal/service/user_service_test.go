package service

import (
	"HomeCrew/internal/repo"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserService_RegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repo.NewUserRepository(db))
	ctx := context.Background()

	u, err := svc.Register(ctx, "alice", "secret", "Alice Smith", "alice@example.com")
	assert.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.NotEqual(t, "secret", u.Password, "the password must be stored hashed")

	_, err = svc.Register(ctx, "alice", "other", "", "")
	assert.ErrorIs(t, err, ErrLoginTaken)

	got, err := svc.Login(ctx, "alice", "secret")
	assert.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = svc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_RegisterRequiresCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repo.NewUserRepository(db))

	_, err := svc.Register(context.Background(), "", "p", "", "")
	assert.Error(t, err)
	_, err = svc.Register(context.Background(), "bob", "", "", "")
	assert.Error(t, err)
}
