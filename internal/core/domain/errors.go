package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by storage ports when a referenced record does not exist.
var ErrNotFound = errors.New("resource not found")

// ErrSlotUnavailable is returned when a booking targets a time that is not a bookable slot.
var ErrSlotUnavailable = errors.New("requested time slot is not available")

// ErrDuplicateEmail is returned when an invitation email is already taken.
var ErrDuplicateEmail = errors.New("email already invited")

// ConfigurationError marks data that is malformed rather than merely absent:
// unparseable interval times, non-positive service durations.
type ConfigurationError struct {
	Reason string
}

func NewConfigurationError(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

func IsConfigurationError(err error) bool {
	var confErr *ConfigurationError
	return errors.As(err, &confErr)
}
