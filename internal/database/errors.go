package database

import "errors"

// Sentinel errors returned by the store so callers can map each failure class
// deliberately instead of matching message text.
var (
	// ErrNotFound indicates the requested row does not exist or is not
	// owned by the requesting user.
	ErrNotFound = errors.New("not found")

	// ErrEmptyName rejects blank or whitespace-only dimension value names.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrDuplicateEmail indicates the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials indicates a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrLocked indicates another process holds the store lock.
	ErrLocked = errors.New("wardrobe database is in use by another session")
)
