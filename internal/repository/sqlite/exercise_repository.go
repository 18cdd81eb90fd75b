package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/repository"
)

type ExerciseRepository struct {
	db *sql.DB
}

func NewExerciseRepository(db *sql.DB) repository.ExerciseRepository {
	return &ExerciseRepository{db: db}
}

func (r *ExerciseRepository) Create(ctx context.Context, userID int64, description string, duration int64, date string) (*domain.Exercise, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO Exercise (userId, description, duration, date)
VALUES (?, ?, ?, ?)`,
		userID,
		description,
		duration,
		date,
	)
	if err != nil {
		return nil, fmt.Errorf("insert exercise: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("exercise rows affected: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("exercise last insert id: %w", err)
	}

	return &domain.Exercise{
		ExerciseID:  id,
		UserID:      userID,
		Description: description,
		Duration:    duration,
		Date:        date,
	}, nil
}

func (r *ExerciseRepository) List(ctx context.Context) ([]domain.Exercise, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT exerciseId, userId, description, duration, date
FROM Exercise
ORDER BY exerciseId`,
	)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	exercises := []domain.Exercise{}
	for rows.Next() {
		var e domain.Exercise
		if err := rows.Scan(&e.ExerciseID, &e.UserID, &e.Description, &e.Duration, &e.Date); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exercises: %w", err)
	}
	return exercises, nil
}

// ListForUser returns a page of the user's exercises. The window aggregate
// counts every matching row, not just the page, so Count is the same on each
// returned row.
func (r *ExerciseRepository) ListForUser(ctx context.Context, userID int64, limit int64) ([]domain.CountedExercise, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT exerciseId, userId, description, duration, date, COUNT(*) OVER () AS count
FROM Exercise
WHERE userId = ?
LIMIT ?`,
		userID,
		clampLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("list exercises for user: %w", err)
	}
	return scanCountedExercises(rows)
}

// ListForUserBetween filters inclusively on the stored date text, which sorts
// chronologically because dates are normalized before insert. The count
// subquery covers the full range independent of LIMIT.
func (r *ExerciseRepository) ListForUserBetween(ctx context.Context, userID int64, from, to string, limit int64) ([]domain.CountedExercise, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT exerciseId, userId, description, duration, date,
	(SELECT COUNT(*) FROM Exercise WHERE userId = ? AND date BETWEEN ? AND ?) AS count
FROM Exercise
WHERE userId = ? AND date BETWEEN ? AND ?
ORDER BY date ASC
LIMIT ?`,
		userID, from, to,
		userID, from, to,
		clampLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("list exercises for user between: %w", err)
	}
	return scanCountedExercises(rows)
}

func clampLimit(limit int64) int64 {
	if limit <= 0 || limit > repository.MaxPageSize {
		return repository.MaxPageSize
	}
	return limit
}

func scanCountedExercises(rows *sql.Rows) ([]domain.CountedExercise, error) {
	defer rows.Close()

	exercises := []domain.CountedExercise{}
	for rows.Next() {
		var e domain.CountedExercise
		if err := rows.Scan(&e.ExerciseID, &e.UserID, &e.Description, &e.Duration, &e.Date, &e.Count); err != nil {
			return nil, fmt.Errorf("scan counted exercise: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate counted exercises: %w", err)
	}
	return exercises, nil
}
