// Package apperr defines the typed application errors shared by the service
// and HTTP layers. Every failure the API reports deliberately is an *Error
// carrying a kind discriminator, a stable machine-readable code, a message
// safe to show to clients, and optional structured details.
//
// The kind is an explicit tag rather than a type hierarchy so the HTTP
// boundary can match it exhaustively (see Error.Status). Anything that is
// not an *Error is treated as an opaque internal failure by the handlers.
package apperr

import (
	"errors"
	"net/http"
)

// Kind discriminates the error categories the API can report.
type Kind string

const (
	KindBadRequest    Kind = "BAD_REQUEST"
	KindUnauthorized  Kind = "UNAUTHORIZED"
	KindForbidden     Kind = "FORBIDDEN"
	KindNotFound      Kind = "NOT_FOUND"
	KindConflict      Kind = "CONFLICT"
	KindUnprocessable Kind = "UNPROCESSABLE_ENTITY"
	KindInternal      Kind = "INTERNAL"
)

// Error is a typed application error.
//
// Fields:
//   - Kind: category tag, mapped to an HTTP status by Status().
//   - Code: specific machine-readable code (e.g. CUISINE_NOT_FOUND,
//     NAME_FIELD_VALUE_CONFLICT).
//   - Message: human-readable description, safe for clients.
//   - Details: optional structured payload (e.g. validation violations).
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Details any
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

// Status maps the error kind to its HTTP status code. The switch is
// exhaustive over the declared kinds; unknown kinds fall back to 500.
func (e *Error) Status() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnprocessable:
		return http.StatusUnprocessableEntity
	case KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// From extracts an *Error from err (or anything wrapping one).
// The second return reports whether err carried a typed error.
func From(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// BadRequest builds a 400-class error, typically from request validation.
func BadRequest(code, message string, details any) *Error {
	return &Error{Kind: KindBadRequest, Code: code, Message: message, Details: details}
}

// Unauthorized builds a 401-class error. Declared for completeness of the
// taxonomy; no route produces it until real authentication lands.
func Unauthorized(code, message string) *Error {
	return &Error{Kind: KindUnauthorized, Code: code, Message: message}
}

// Forbidden builds a 403-class error. Declared for completeness of the
// taxonomy; no route produces it until real authorization lands.
func Forbidden(code, message string) *Error {
	return &Error{Kind: KindForbidden, Code: code, Message: message}
}

// NotFound builds a 404-class error (missing or soft-deleted record,
// or a foreign-key target that does not exist).
func NotFound(code, message string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

// NotFoundDetails is NotFound with a structured details payload, used by the
// persistence error translator to name the offending foreign-key field.
func NotFoundDetails(code, message string, details any) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message, Details: details}
}

// Conflict builds a 409-class error (unique-constraint violation).
func Conflict(code, message string) *Error {
	return &Error{Kind: KindConflict, Code: code, Message: message}
}

// Unprocessable builds a 422-class error for business-rule violations.
// Declared in the taxonomy; no rule populates it yet.
func Unprocessable(code, message string, details any) *Error {
	return &Error{Kind: KindUnprocessable, Code: code, Message: message, Details: details}
}

// Internal builds an opaque 500-class error.
func Internal(message string) *Error {
	return &Error{Kind: KindInternal, Code: "INTERNAL_ERROR", Message: message}
}
