// Package apperr defines the error taxonomy shared by stores and handlers.
//
// Stores and feature handlers return these typed errors; the respond package
// maps them to HTTP status codes and a uniform JSON envelope. Messages are
// shown to end users directly, so they must never carry raw storage errors
// or internals.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for HTTP mapping.
type Kind int

const (
	KindValidation   Kind = iota // 400: missing or malformed required fields
	KindUnauthorized             // 401: missing or invalid credential
	KindNotFound                 // 404: unresolvable code or id
	KindConflict                 // 409: duplicate unique field
	KindInternal                 // 500: storage or other internal failure
)

// Error is a typed application error with a user-facing message.
type Error struct {
	Kind    Kind
	Message string
	// Err is the underlying cause, for logs only. Never rendered to clients.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Validation returns a 400-class error.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// Unauthorized returns a 401-class error.
func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

// NotFound returns a 404-class error.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Conflict returns a 409-class error.
func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// Internal wraps an unexpected failure with a generic user-facing message.
// The cause is kept for logging but never shown to the client.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "something went wrong", Err: err}
}

// Status returns the HTTP status code for err. Unrecognized errors map
// to 500, same as KindInternal.
func Status(err error) int {
	var ae *Error
	if !errors.As(err, &ae) {
		return http.StatusInternalServerError
	}
	switch ae.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// UserMessage returns the message safe to show a client. Unrecognized
// errors get a generic message so internals never leak.
func UserMessage(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return "something went wrong"
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, k Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == k
}
