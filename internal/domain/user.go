package domain

// User represents a tracked user of the system.
type User struct {
	ID       int64
	Username string
}
