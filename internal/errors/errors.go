// Package errors provides shared error types for Wikimedia API clients.
package errors

import (
	"fmt"
)

// ValidationError indicates invalid tool parameters. It is always produced
// before any network call is made.
type ValidationError struct {
	Param   string // parameter name that failed validation
	Value   string // the invalid value
	Message string // human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Param != "" && e.Value != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Param, e.Value, e.Message)
	}
	if e.Param != "" {
		return fmt.Sprintf("invalid %s: %s", e.Param, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(param, value, message string) *ValidationError {
	return &ValidationError{
		Param:   param,
		Value:   value,
		Message: message,
	}
}

// NotFoundError indicates the requested content does not exist upstream.
type NotFoundError struct {
	Resource   string // "page", "featured content", "events"
	Identifier string // title, query, or date
}

func (e *NotFoundError) Error() string {
	if e.Resource != "" {
		return fmt.Sprintf("%s %q not found", e.Resource, e.Identifier)
	}
	return fmt.Sprintf("not found: %s", e.Identifier)
}

// NewNotFoundError creates a NotFoundError for a page lookup.
func NewNotFoundError(title string) *NotFoundError {
	return &NotFoundError{
		Resource:   "page",
		Identifier: title,
	}
}

// UpstreamError indicates a transport failure or an unexpected status code
// from the Wikimedia API. StatusCode is zero when no response was received.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("wikimedia API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("wikimedia API unreachable: %s", e.Message)
}

// NewUpstreamError creates an UpstreamError.
func NewUpstreamError(statusCode int, message string) *UpstreamError {
	return &UpstreamError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// MalformedResponseError indicates an upstream body that could not be decoded
// as the expected JSON shape.
type MalformedResponseError struct {
	Message string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed wikimedia response: %s", e.Message)
}

// NewMalformedResponseError creates a MalformedResponseError.
func NewMalformedResponseError(message string) *MalformedResponseError {
	return &MalformedResponseError{Message: message}
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// IsValidation returns true if the error is a ValidationError.
func IsValidation(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// IsUpstream returns true if the error is an UpstreamError.
func IsUpstream(err error) bool {
	_, ok := err.(*UpstreamError)
	return ok
}

// IsMalformedResponse returns true if the error is a MalformedResponseError.
func IsMalformedResponse(err error) bool {
	_, ok := err.(*MalformedResponseError)
	return ok
}
