package repository

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist
	// or is not owned by the requesting user.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when an update carries a stale revision.
	// The caller must re-read and retry; no write happened.
	ErrConflict = errors.New("revision conflict")
)
