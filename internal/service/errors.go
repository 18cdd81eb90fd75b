package service

import "net/http"

// Error is an expected request-level failure carrying the HTTP status it maps
// to. Handlers return these instead of panicking or writing transport
// responses themselves; anything that is not an *Error is treated as an
// internal failure by the transport layer.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string { return e.Message }

var (
	// ErrUserDoesNotExist is returned whenever a targeted user lookup misses.
	ErrUserDoesNotExist = &Error{StatusCode: http.StatusNotFound, Message: "User does not Exist"}
	// ErrSomethingWentWrong covers an insert that reported zero affected rows
	// despite passing validation.
	ErrSomethingWentWrong = &Error{StatusCode: http.StatusBadRequest, Message: "Something went wrong"}

	ErrUsernameMissing   = &Error{StatusCode: http.StatusBadRequest, Message: "Username missing"}
	ErrUserAlreadyExists = &Error{StatusCode: http.StatusBadRequest, Message: "User Already Exists"}

	ErrDescriptionMissing = &Error{StatusCode: http.StatusBadRequest, Message: "Missing required data(description)"}
	ErrDurationMissing    = &Error{StatusCode: http.StatusBadRequest, Message: "Missing required data(duration)"}
	ErrDurationZero       = &Error{StatusCode: http.StatusBadRequest, Message: "Exercise duration cannot be 0"}
	ErrDurationInvalid    = &Error{StatusCode: http.StatusBadRequest, Message: "Exercise duration must be a positive number(mins)"}
	ErrInvalidDate        = &Error{StatusCode: http.StatusBadRequest, Message: "Invalid Date"}

	ErrMissingQueryFrom = &Error{StatusCode: http.StatusBadRequest, Message: "Missing query(from)"}
	ErrMissingQueryTo   = &Error{StatusCode: http.StatusBadRequest, Message: "Missing query(to)"}
)
