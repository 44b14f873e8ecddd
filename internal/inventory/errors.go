package inventory

import "errors"

// Domain-specific errors for the inventory package.
var (
	ErrOperationPending  = errors.New("another operation for this medicine is still in flight")
	ErrInvalidPage       = errors.New("page must be at least 1")
	ErrInvalidSortKey    = errors.New("sort key must be one of name, price, stock, expiry")
	ErrMissingReason     = errors.New("adjustment reason is required")
	ErrInsufficientStock = errors.New("adjustment would make stock negative")
	ErrNotInSnapshot     = errors.New("medicine not present in the current snapshot")
)
