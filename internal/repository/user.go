package repository

import (
	"context"
	"errors"

	"exercise-tracker/internal/domain"
)

// ErrUsernameTaken is returned by Create when the username collides with an
// existing row under case-insensitive comparison.
var ErrUsernameTaken = errors.New("username already taken")

// UserRepository defines persistence operations for User entities.
// Lookup methods return (nil, nil) when no row matches; an absent user is a
// valid outcome, not a storage failure.
type UserRepository interface {
	Create(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}
