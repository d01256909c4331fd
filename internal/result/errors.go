package result

import "fmt"

const defaultMessage = "unexpected error"

// Kind classifies a failure for display and transport mapping.
type Kind string

const (
	KindUnauthorized   Kind = "unauthorized"
	KindNotFound       Kind = "not_found"
	KindServerError    Kind = "server_error"
	KindHTTPError      Kind = "http_error"
	KindNoConnectivity Kind = "no_connectivity"
	KindTimeout        Kind = "timeout"
	KindNetwork        Kind = "network"
	KindValidation     Kind = "validation"
	KindUnclassified   Kind = "unclassified"
)

// Error is a classified failure with a message suitable for direct display.
// Code carries the upstream HTTP status when one exists and is 0 otherwise.
type Error struct {
	Kind    Kind
	Message string
	Code    int
	Cause   error
}

// NewError builds an Error, falling back to a generic message when msg is empty.
func NewError(kind Kind, msg string, code int, cause error) *Error {
	if msg == "" {
		msg = defaultMessage
	}
	return &Error{Kind: kind, Message: msg, Code: code, Cause: cause}
}

// Validation builds an input validation error. No cause, no code.
func Validation(format string, args ...any) *Error {
	return NewError(KindValidation, fmt.Sprintf(format, args...), 0, nil)
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// HasCode reports whether an upstream status code was captured.
func (e *Error) HasCode() bool {
	return e != nil && e.Code != 0
}
