package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	// ErrInvalidRange rejects a reservation whose end date precedes its
	// start date.
	ErrInvalidRange = errors.New("end date must not be before start date")

	// ErrConflict rejects a reservation whose interval overlaps a committed
	// booking on the same room.
	ErrConflict = errors.New("booking dates overlap an existing booking")
)
