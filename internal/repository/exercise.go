package repository

import (
	"context"

	"exercise-tracker/internal/domain"
)

// MaxPageSize caps the number of rows any single log query may return.
// Callers asking for more (or passing a non-positive limit) get this value.
const MaxPageSize = 100

// ExerciseRepository defines persistence operations for Exercise entities.
type ExerciseRepository interface {
	Create(ctx context.Context, userID int64, description string, duration int64, date string) (*domain.Exercise, error)
	List(ctx context.Context) ([]domain.Exercise, error)
	// ListForUser returns up to min(limit, MaxPageSize) exercises for the
	// user; each row carries the total matching-row count.
	ListForUser(ctx context.Context, userID int64, limit int64) ([]domain.CountedExercise, error)
	// ListForUserBetween is ListForUser restricted to dates inclusively
	// between from and to, ordered ascending by date.
	ListForUserBetween(ctx context.Context, userID int64, from, to string, limit int64) ([]domain.CountedExercise, error)
}
