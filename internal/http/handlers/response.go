// Package handlers provides the HTTP controllers for the public API.
//
// This file defines the uniform response envelope shared by every endpoint.
// Success and untyped-failure responses carry a statusCode discriminator
// (1 truthy result, 0 otherwise); typed application errors serialize their
// own shape at their own HTTP status.
//
// Example success response:
//
//	HTTP/1.1 201 Created
//	{ "statusCode": 1, "message": "cuisine created successfully",
//	  "data": { "id": 1, "name": "Italian", "description": null } }
//
// Example typed error response:
//
//	HTTP/1.1 409 Conflict
//	{ "message": "cuisine with this name already exists",
//	  "errorType": "CONFLICT", "errorCode": "NAME_FIELD_VALUE_CONFLICT" }
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-recipe-backend/internal/apperr"
	"github.com/tbourn/go-recipe-backend/internal/http/middleware"
)

// Envelope is the uniform success wrapper returned by every endpoint.
type Envelope struct {
	// StatusCode is 1 when the operation produced a truthy result, 0 otherwise.
	StatusCode int `json:"statusCode"`
	// Message is a human-readable outcome description.
	Message string `json:"message"`
	// Data carries the projected record or records, when any.
	Data any `json:"data,omitempty"`
	// Pagination is a reserved extension point; no endpoint populates it yet.
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination is declared for the envelope's future list metadata.
// No list operation pages yet, so it is never populated.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// TypedError is the serialized form of an apperr.Error.
type TypedError struct {
	Message   string `json:"message"`
	ErrorType string `json:"errorType"`
	ErrorCode string `json:"errorCode"`
	Details   any    `json:"details,omitempty"`
}

// GenericError is the envelope for failures that carry no typed error.
// The raw error string is attached only when debug mode is enabled, so
// internals never leak in production while local debugging stays easy.
type GenericError struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error,omitempty"`
}

// respond writes a success envelope. statusCode follows the truthiness
// convention: callers pass 1 for a produced result and 0 for an empty one.
func respond(c *gin.Context, status, statusCode int, message string, data any) {
	c.JSON(status, Envelope{StatusCode: statusCode, Message: message, Data: data})
}

// noContent writes an HTTP 204 No Content response. Used by the soft-delete
// endpoints, which succeed with an empty body.
func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// fail terminates the request with an error response.
//
// Typed application errors respond at their own status with the typed JSON
// shape; the controller layer is the sole boundary translating them, so a
// typed error never falls through to the generic branch. Anything else is
// logged and surfaced as an opaque 500 with fallbackMsg.
func (h *Handlers) fail(c *gin.Context, err error, fallbackMsg string) {
	if ae, ok := apperr.From(err); ok {
		c.AbortWithStatusJSON(ae.Status(), TypedError{
			Message:   ae.Message,
			ErrorType: string(ae.Kind),
			ErrorCode: ae.Code,
			Details:   ae.Details,
		})
		return
	}

	middleware.LoggerFrom(c).Error().
		Err(err).
		Str("message", fallbackMsg).
		Msg("unhandled error")

	body := GenericError{StatusCode: 0, Message: fallbackMsg}
	if h.debug {
		body.Error = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, body)
}
