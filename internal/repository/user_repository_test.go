package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepositoryCreateAndLookup(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	u := testUser("u1", "Ivan")
	require.NoError(t, repo.Create(ctx, u))

	byID, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ivan", byID.Name)

	byEmail, err := repo.GetByEmail(ctx, "u1@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", byEmail.ID)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepositoryUniqueEmail(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	require.NoError(t, repo.Create(ctx, testUser("u1", "Ivan")))
	dup := testUser("u2", "Clone")
	dup.Email = "u1@example.com"
	assert.Error(t, repo.Create(ctx, dup))
}

func TestUserRepositoryUpdateRating(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	require.NoError(t, repo.Create(ctx, testUser("u1", "Ivan")))
	require.NoError(t, repo.UpdateRating(ctx, "u1", 4.25, 4))

	u, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 4.25, u.Rating)
	assert.Equal(t, 4, u.Reviews)

	assert.ErrorIs(t, repo.UpdateRating(ctx, "missing", 1, 1), ErrNotFound)
}

func TestUserRepositoryUpdateAvatar(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	require.NoError(t, repo.Create(ctx, testUser("u1", "Ivan")))
	require.NoError(t, repo.UpdateAvatar(ctx, "u1", "data:image/png;base64,abc"))

	u, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,abc", u.Avatar)
}
