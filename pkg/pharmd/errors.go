package pharmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ValidationError is a local, pre-request rejection: the input could never
// be accepted, so no request (or no mutating request) was sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// TransportError wraps a network-level failure (DNS, refused connection,
// timeout). The request may or may not have reached the backend.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServerError is a non-2xx backend response, or a 2xx whose body deviates
// from the documented shape. Message is already human-readable.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string { return e.Message }

// NotFoundError means the backend no longer has the entity.
type NotFoundError struct {
	Resource string
	ID       int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// errorBody is the backend's error envelope. detail is either a plain
// string or a list of field-level validation objects.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

type fieldError struct {
	Loc []json.RawMessage `json:"loc"`
	Msg string            `json:"msg"`
}

// flattenDetail turns the backend's detail payload into one readable
// message: a string is used verbatim, field errors become
// "field.path: message" joined by commas.
func flattenDetail(body []byte, fallback string) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || len(eb.Detail) == 0 {
		return fallback
	}

	var s string
	if err := json.Unmarshal(eb.Detail, &s); err == nil && s != "" {
		return s
	}

	var fields []fieldError
	if err := json.Unmarshal(eb.Detail, &fields); err == nil && len(fields) > 0 {
		parts := make([]string, 0, len(fields))
		for _, fe := range fields {
			locParts := make([]string, 0, len(fe.Loc))
			for _, raw := range fe.Loc {
				locParts = append(locParts, strings.Trim(string(raw), `"`))
			}
			if len(locParts) > 0 {
				parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(locParts, "."), fe.Msg))
			} else {
				parts = append(parts, fe.Msg)
			}
		}
		return strings.Join(parts, ", ")
	}

	return fallback
}
