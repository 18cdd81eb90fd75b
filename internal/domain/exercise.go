package domain

// DateFormat is the canonical layout for exercise dates. Dates are stored as
// text in this form so lexicographic comparison matches chronological order.
const DateFormat = "2006-01-02"

// Exercise represents a single logged exercise owned by exactly one user.
// Records are immutable once created.
type Exercise struct {
	ExerciseID  int64
	UserID      int64
	Description string
	Duration    int64
	Date        string
}

// CountedExercise is an exercise row annotated with the total number of rows
// matching the originating query, independent of any page limit.
type CountedExercise struct {
	Exercise
	Count int64
}

// Log is the projected view of an Exercise exposed in a user's log listing,
// with the primary key renamed to a plain id.
type Log struct {
	ID          int64
	Description string
	Duration    int64
	Date        string
}
