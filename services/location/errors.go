package location

import "errors"

var (
	// ErrInvalidPosition is returned for samples that fail validation
	ErrInvalidPosition = errors.New("invalid position")
	// ErrDriverNotFound is returned when a driver has never reported
	ErrDriverNotFound = errors.New("driver not found")
)
