package errs

import "errors"

// Cross-layer sentinel errors shared by usecases, infra and handlers
var (
	// Ledger errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrLockUnavailable     = errors.New("space lock unavailable")

	// Input errors raised before the domain is reached
	ErrInvalidSpaceID  = errors.New("invalid space id")
	ErrInvalidCategory = errors.New("invalid space category")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrEventPublishFailed      = errors.New("event publish failed")
)
