package service

import "errors"

var (
	// ErrNotFound covers both missing records and records outside the
	// requesting coach's scope, so out-of-scope ids are
	// indistinguishable from nonexistent ones.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrConflict is returned when a concurrent write to the same
	// (player, session) pair persists after a retry.
	ErrConflict = errors.New("conflicting concurrent write")
)
