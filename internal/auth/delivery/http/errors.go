package http

import (
	"errors"
	"net/http"

	pkgErrors "pharmacy-inventory-console/pkg/errors"
	"pharmacy-inventory-console/pkg/pharmd"
)

// mapError translates backend errors into HTTP errors from pkg/errors.
// 401 from the backend stays a 401 so the UI can show the login form.
func (h *handler) mapError(err error) error {
	if pharmd.IsValidation(err) {
		return pkgErrors.NewHTTPError(400, err.Error())
	}

	var serverErr *pharmd.ServerError
	if errors.As(err, &serverErr) {
		if serverErr.Status == http.StatusUnauthorized {
			return pkgErrors.NewHTTPError(401, serverErr.Message)
		}
		return pkgErrors.NewHTTPError(502, serverErr.Message)
	}
	var transportErr *pharmd.TransportError
	if errors.As(err, &transportErr) {
		return pkgErrors.NewHTTPError(502, "pharmacy backend unreachable")
	}

	return pkgErrors.NewHTTPError(500, "internal error")
}
