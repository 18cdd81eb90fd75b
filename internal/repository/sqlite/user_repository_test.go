package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exercise-tracker/internal/repository"
)

func TestUserRepositoryCreate(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user, err := repo.Create(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)
	assert.Positive(t, user.ID)

	second, err := repo.Create(ctx, "bob")
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Greater(t, second.ID, user.ID)
}

func TestUserRepositoryCreateDuplicate(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, "Bob")
	require.NoError(t, err)

	_, err = repo.Create(ctx, "bob")
	assert.ErrorIs(t, err, repository.ErrUsernameTaken)
}

func TestUserRepositoryGetByID(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, "alice")
	require.NoError(t, err)

	found, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, *created, *found)

	missing, err := repo.GetByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepositoryGetByUsernameCaseInsensitive(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, "Alice")
	require.NoError(t, err)

	for _, name := range []string{"Alice", "alice", "ALICE"} {
		found, err := repo.GetByUsername(ctx, name)
		require.NoError(t, err)
		require.NotNil(t, found, "lookup %q", name)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "Alice", found.Username)
	}

	missing, err := repo.GetByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepositoryList(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	_, err = repo.Create(ctx, "alice")
	require.NoError(t, err)
	_, err = repo.Create(ctx, "bob")
	require.NoError(t, err)

	users, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
}
