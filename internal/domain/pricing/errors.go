package pricing

import "errors"

var (
	ErrUnpricedCombination = errors.New("no rate for space category and day classification")
	ErrInvalidQuantity     = errors.New("invalid quantity")
	ErrInvalidDiscount     = errors.New("discount percent must be between 0 and 100")
	ErrInvalidDateRange    = errors.New("start date must not be after end date")
	ErrInvalidDate         = errors.New("invalid calendar date")
	ErrInvalidRateTable    = errors.New("invalid rate table")
)
