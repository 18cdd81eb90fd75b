package sqlite

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/repository"
)

func seedUser(t *testing.T, users repository.UserRepository) *domain.User {
	t.Helper()
	user, err := users.Create(context.Background(), "alice")
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}

func TestExerciseRepositoryCreate(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, NewUserRepository(db))
	repo := NewExerciseRepository(db)
	ctx := context.Background()

	exercise, err := repo.Create(ctx, user.ID, "Run", 30, "2022-01-15")
	require.NoError(t, err)
	require.NotNil(t, exercise)
	assert.Positive(t, exercise.ExerciseID)
	assert.Equal(t, user.ID, exercise.UserID)
	assert.Equal(t, "Run", exercise.Description)
	assert.Equal(t, int64(30), exercise.Duration)
	assert.Equal(t, "2022-01-15", exercise.Date)
}

func TestExerciseRepositoryList(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, NewUserRepository(db))
	repo := NewExerciseRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, user.ID, "Run", 30, "2022-01-15")
	require.NoError(t, err)
	_, err = repo.Create(ctx, user.ID, "Swim", 45, "2022-01-16")
	require.NoError(t, err)

	exercises, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, exercises, 2)
	assert.Equal(t, "Run", exercises[0].Description)
	assert.Equal(t, "Swim", exercises[1].Description)
}

func TestExerciseRepositoryListForUserCount(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, NewUserRepository(db))
	repo := NewExerciseRepository(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := repo.Create(ctx, user.ID, "Run", 30, fmt.Sprintf("2022-01-%02d", i+1))
		require.NoError(t, err)
	}

	// count reflects all matching rows, not the page size
	rows, err := repo.ListForUser(ctx, user.ID, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, int64(5), row.Count)
	}

	rows, err = repo.ListForUser(ctx, user.ID, 0)
	require.NoError(t, err)
	assert.Len(t, rows, 5)
}

func TestExerciseRepositoryListForUserEmpty(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, NewUserRepository(db))
	repo := NewExerciseRepository(db)

	rows, err := repo.ListForUser(context.Background(), user.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestExerciseRepositoryLimitClamp(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, NewUserRepository(db))
	repo := NewExerciseRepository(db)
	ctx := context.Background()

	for i := 0; i < repository.MaxPageSize+5; i++ {
		_, err := repo.Create(ctx, user.ID, "Run", 30, fmt.Sprintf("2022-%02d-%02d", i/28+1, i%28+1))
		require.NoError(t, err)
	}

	for _, limit := range []int64{0, -1, 1000} {
		rows, err := repo.ListForUser(ctx, user.ID, limit)
		require.NoError(t, err)
		assert.Len(t, rows, repository.MaxPageSize, "limit %d", limit)
		assert.Equal(t, int64(repository.MaxPageSize+5), rows[0].Count)
	}
}

func TestExerciseRepositoryListForUserBetween(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, NewUserRepository(db))
	repo := NewExerciseRepository(db)
	ctx := context.Background()

	// inserted out of order on purpose
	dates := []string{"2022-01-20", "2022-01-05", "2022-01-10", "2022-02-01"}
	for _, d := range dates {
		_, err := repo.Create(ctx, user.ID, "Run", 30, d)
		require.NoError(t, err)
	}

	rows, err := repo.ListForUserBetween(ctx, user.ID, "2022-01-05", "2022-01-20", 100)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "2022-01-05", rows[0].Date)
	assert.Equal(t, "2022-01-10", rows[1].Date)
	assert.Equal(t, "2022-01-20", rows[2].Date)
	for _, row := range rows {
		assert.Equal(t, int64(3), row.Count)
	}

	// count covers the full range even when the page is smaller
	rows, err = repo.ListForUserBetween(ctx, user.ID, "2022-01-05", "2022-01-20", 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(3), rows[0].Count)
}

func TestExerciseRepositoryListForUserBetweenScopedToUser(t *testing.T) {
	db := openTestDB(t)
	users := NewUserRepository(db)
	repo := NewExerciseRepository(db)
	ctx := context.Background()

	alice := seedUser(t, users)
	bob, err := users.Create(ctx, "bob")
	require.NoError(t, err)

	_, err = repo.Create(ctx, alice.ID, "Run", 30, "2022-01-10")
	require.NoError(t, err)
	_, err = repo.Create(ctx, bob.ID, "Swim", 45, "2022-01-10")
	require.NoError(t, err)

	rows, err := repo.ListForUserBetween(ctx, alice.ID, "2022-01-01", "2022-01-31", 100)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Run", rows[0].Description)
	assert.Equal(t, int64(1), rows[0].Count)
}
