// Package apperror defines the typed errors returned by the service layer.
// The HTTP error middleware turns them into the response envelope.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindBusiness
	KindInvalidCredentials
	KindUnauthorized
	KindConversion
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindBusiness:
		return "business"
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindUnauthorized:
		return "unauthorized"
	case KindConversion:
		return "conversion"
	default:
		return "internal"
	}
}

type Error struct {
	Kind       Kind
	Status     int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound is a missing resource (404).
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Status: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

// Business is a rule violation carrying the status to answer with.
func Business(status int, format string, args ...any) *Error {
	return &Error{Kind: KindBusiness, Status: status, Message: fmt.Sprintf(format, args...)}
}

func InvalidCredentials(message string) *Error {
	return &Error{Kind: KindInvalidCredentials, Status: http.StatusUnauthorized, Message: message}
}

func Unauthorized(message string, err error) *Error {
	return &Error{Kind: KindUnauthorized, Status: http.StatusUnauthorized, Message: message, Err: err}
}

func Conversion(message string, err error) *Error {
	return &Error{Kind: KindConversion, Status: http.StatusInternalServerError, Message: message, Err: err}
}

// As unwraps err into an *Error if it is one.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
