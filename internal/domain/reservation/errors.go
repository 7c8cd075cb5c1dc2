package reservation

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrConflictingBooking = errors.New("space already booked for an overlapping interval")
	ErrInvalidTransition  = errors.New("invalid reservation status transition")
	ErrInvalidStatus      = errors.New("invalid reservation status")
	ErrInvalidInterval    = errors.New("invalid reservation interval")
	ErrInvalidTimeOfDay   = errors.New("time of day must be HH:MM")
	ErrEmptySpaceID       = errors.New("space id is required")
)

// ConflictError names the reservation that blocks a new booking.
type ConflictError struct {
	SpaceID       string
	ConflictingID uuid.UUID
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: space %s, reservation %s", ErrConflictingBooking, e.SpaceID, e.ConflictingID)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflictingBooking
}

// TransitionError records the rejected status change.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
