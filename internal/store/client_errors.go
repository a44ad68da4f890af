package store

import "errors"

// Client-side storage sentinel errors.
var (
	// ErrLocalQuotaExceeded is returned when a write would push the local
	// storage file past its byte budget even after non-essential entries
	// have been dropped. Callers run their degradation ladder on it.
	ErrLocalQuotaExceeded = errors.New("local storage quota exceeded")

	// ErrLocalKeyNotFound is returned when a requested local storage key
	// has no value.
	ErrLocalKeyNotFound = errors.New("local storage key not found")
)
