package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by service functions when the requested
// registration does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails a business rule
// (slot outside operating hours, non-numeric donation amount, empty item).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrSlotRejected is returned when the requested date/time is malformed or
// falls outside the operating-hours table. It wraps ErrValidation, so
// errors.Is(err, ErrValidation) also holds.
var ErrSlotRejected = fmt.Errorf("%w: slot rejected", ErrValidation)

// ErrInvalidAmount is returned when a monetary donation amount cannot be
// parsed or is not a positive finite number. It wraps ErrValidation.
var ErrInvalidAmount = fmt.Errorf("%w: invalid donation amount", ErrValidation)

// ErrLogWrite is returned when the appointment log file could not be written.
// Only surfaced to callers when the strict commit policy is enabled;
// otherwise the failure is logged and the registration still succeeds.
var ErrLogWrite = errors.New("appointment log write failed")
