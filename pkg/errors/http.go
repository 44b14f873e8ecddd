package errors

// HTTPError is a domain error already mapped to an HTTP status code.
// Delivery layers produce these from mapError; pkg/response consumes them.
type HTTPError struct {
	Status  int
	Message string
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}
