// Package apierrors provides shared error types for the PokeAPI client.
package apierrors

import (
	"fmt"
)

// NotFoundError indicates a Pokemon was not found upstream.
type NotFoundError struct {
	Identifier string // Pokemon name or stringified ID
	ByID       bool   // whether the lookup was by numeric ID
}

func (e *NotFoundError) Error() string {
	if e.ByID {
		return fmt.Sprintf("Pokemon with ID %s not found", e.Identifier)
	}
	return fmt.Sprintf("Pokemon '%s' not found", e.Identifier)
}

// NewNotFoundError creates a NotFoundError for a name lookup.
func NewNotFoundError(name string) *NotFoundError {
	return &NotFoundError{Identifier: name}
}

// NewNotFoundByIDError creates a NotFoundError for an ID lookup.
func NewNotFoundByIDError(id int) *NotFoundError {
	return &NotFoundError{Identifier: fmt.Sprintf("%d", id), ByID: true}
}

// ValidationError indicates invalid caller-supplied parameters,
// detected before any network call.
type ValidationError struct {
	Field   string // field name that failed validation
	Message string // human-readable error message
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// UpstreamError indicates a non-success HTTP status from the API
// other than the 404 lookup cases.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("API error: %d", e.StatusCode)
}

// TransportError indicates a network-level failure: timeout, connection
// refused, DNS resolution, or a canceled context.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("Network error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError indicates the response body was not valid JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "Invalid response from API"
}

func (e *DecodeError) Unwrap() error {
	return e.Err
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
