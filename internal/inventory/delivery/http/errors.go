package http

import (
	"errors"

	"pharmacy-inventory-console/internal/inventory"
	pkgErrors "pharmacy-inventory-console/pkg/errors"
	"pharmacy-inventory-console/pkg/pharmd"
)

// mapError translates domain and backend errors into HTTP errors from
// pkg/errors. Unknown errors become a generic 500 so backend internals
// never leak to the browser.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, inventory.ErrInvalidPage),
		errors.Is(err, inventory.ErrInvalidSortKey),
		errors.Is(err, inventory.ErrMissingReason),
		errors.Is(err, inventory.ErrInsufficientStock):
		return pkgErrors.NewHTTPError(400, err.Error())
	case errors.Is(err, inventory.ErrNotInSnapshot):
		return pkgErrors.NewHTTPError(404, err.Error())
	case errors.Is(err, inventory.ErrOperationPending):
		return pkgErrors.NewHTTPError(409, err.Error())
	case pharmd.IsNotFound(err):
		return pkgErrors.NewHTTPError(404, err.Error())
	case pharmd.IsValidation(err):
		return pkgErrors.NewHTTPError(400, err.Error())
	}

	var transportErr *pharmd.TransportError
	if errors.As(err, &transportErr) {
		return pkgErrors.NewHTTPError(502, "pharmacy backend unreachable")
	}
	var serverErr *pharmd.ServerError
	if errors.As(err, &serverErr) {
		return pkgErrors.NewHTTPError(502, serverErr.Message)
	}

	return pkgErrors.NewHTTPError(500, "internal error")
}
