package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("user not found")
	ErrEmailAlreadyUsed = errors.New("email already used")
	ErrNameRequired     = errors.New("name is required")
	ErrEmailRequired    = errors.New("email is required")
)

// User represents a person sharing or borrowing items.
type User struct {
	ID        string // UUID
	Name      string
	Email     string
	CreatedAt time.Time
}
