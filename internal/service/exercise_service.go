package service

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/repository"
)

// CreateExerciseInput carries the raw body fields of an exercise-creation
// request. Duration is untyped because the distinction between an absent
// value, the literal number 0, and a non-numeric value each produce a
// different validation error.
type CreateExerciseInput struct {
	Description string
	Duration    any
	Date        string
}

// LogsResult is a user's log page together with the total matching-row count,
// which is independent of the page size.
type LogsResult struct {
	User  domain.User
	Logs  []domain.Log
	Count int64
}

// ExerciseService describes exercise logging and retrieval operations.
type ExerciseService interface {
	Create(ctx context.Context, userID int64, input CreateExerciseInput) (*domain.Exercise, error)
	Logs(ctx context.Context, userID int64, from, to string, limit int64) (*LogsResult, error)
}

type exerciseService struct {
	exercises repository.ExerciseRepository
	users     repository.UserRepository
	now       func() time.Time
}

func NewExerciseService(exercises repository.ExerciseRepository, users repository.UserRepository) ExerciseService {
	return &exerciseService{
		exercises: exercises,
		users:     users,
		now:       time.Now,
	}
}

// Create validates and persists a new exercise for the user. The user lookup
// runs before any field validation, so an unknown user always reports
// not-found regardless of how broken the body is.
func (s *exerciseService) Create(ctx context.Context, userID int64, input CreateExerciseInput) (*domain.Exercise, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserDoesNotExist
	}

	if input.Description == "" {
		return nil, ErrDescriptionMissing
	}

	duration, err := validateDuration(input.Duration)
	if err != nil {
		return nil, err
	}

	date, err := normalizeDate(input.Date, s.now)
	if err != nil {
		return nil, err
	}

	exercise, err := s.exercises.Create(ctx, user.ID, input.Description, duration, date)
	if err != nil {
		return nil, err
	}
	if exercise == nil {
		return nil, ErrSomethingWentWrong
	}
	return exercise, nil
}

// Logs fetches a page of the user's exercises, optionally restricted to an
// inclusive date range. from and to must be supplied together; an empty
// string means the parameter is absent.
func (s *exerciseService) Logs(ctx context.Context, userID int64, from, to string, limit int64) (*LogsResult, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserDoesNotExist
	}

	var rows []domain.CountedExercise
	switch {
	case from == "" && to == "":
		rows, err = s.exercises.ListForUser(ctx, user.ID, limit)
	case from == "":
		return nil, ErrMissingQueryFrom
	case to == "":
		return nil, ErrMissingQueryTo
	default:
		rows, err = s.exercises.ListForUserBetween(ctx, user.ID, from, to, limit)
	}
	if err != nil {
		return nil, err
	}

	var count int64
	if len(rows) > 0 {
		count = rows[0].Count
	}

	logs := make([]domain.Log, 0, len(rows))
	for _, row := range rows {
		logs = append(logs, domain.Log{
			ID:          row.ExerciseID,
			Description: row.Description,
			Duration:    row.Duration,
			Date:        row.Date,
		})
	}

	return &LogsResult{User: *user, Logs: logs, Count: count}, nil
}

// validateDuration accepts whole numbers >= 1, supplied either as a JSON
// number or a numeric string. The literal number 0 gets its own error; any
// other non-positive, fractional, or non-numeric value is rejected as
// invalid.
func validateDuration(v any) (int64, error) {
	switch d := v.(type) {
	case nil:
		return 0, ErrDurationMissing
	case float64:
		if d == 0 {
			return 0, ErrDurationZero
		}
		return checkPositiveWhole(d)
	case int:
		if d == 0 {
			return 0, ErrDurationZero
		}
		return checkPositiveWhole(float64(d))
	case int64:
		if d == 0 {
			return 0, ErrDurationZero
		}
		return checkPositiveWhole(float64(d))
	case string:
		if d == "" {
			return 0, ErrDurationMissing
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(d), 64)
		if err != nil {
			return 0, ErrDurationInvalid
		}
		return checkPositiveWhole(f)
	case bool:
		if !d {
			return 0, ErrDurationMissing
		}
		return 0, ErrDurationInvalid
	default:
		return 0, ErrDurationInvalid
	}
}

func checkPositiveWhole(f float64) (int64, error) {
	if math.IsNaN(f) || f < 1 || f != math.Trunc(f) {
		return 0, ErrDurationInvalid
	}
	return int64(f), nil
}

// normalizeDate canonicalizes a supplied date or defaults to today. A
// supplied date that does not parse stops the request with Invalid Date.
func normalizeDate(date string, now func() time.Time) (string, error) {
	if date == "" {
		return now().Format(domain.DateFormat), nil
	}
	parsed, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return "", ErrInvalidDate
	}
	return parsed.Format(domain.DateFormat), nil
}
