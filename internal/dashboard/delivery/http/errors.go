package http

import (
	"errors"

	pkgErrors "pharmacy-inventory-console/pkg/errors"
	"pharmacy-inventory-console/pkg/pharmd"
)

// mapError translates backend errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
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
