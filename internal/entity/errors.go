package entity

import "errors"

var (
	// ErrStorageUnavailable wraps every driver-level failure. Callers must
	// surface it to the user; the store never retries and keeps no
	// in-memory fallback.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrMalformedRecord marks a record rejected before any write attempt
	// because its key field is missing.
	ErrMalformedRecord = errors.New("record is missing its key field")

	ErrNotFound = errors.New("record not found")
)
