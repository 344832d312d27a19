package fouryousee

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrMissingToken indicates the client was built without a secret token
	ErrMissingToken = errors.New("4yousee secret token is required")
	// ErrMissingID indicates an operation that needs a record id got none
	ErrMissingID = errors.New("missing id")
	// ErrEmptyUpdate indicates an edit call without any field to change
	ErrEmptyUpdate = errors.New("missing fields")
	// ErrUnexpectedResponse indicates a body that is neither an object nor a list
	ErrUnexpectedResponse = errors.New("unexpected response shape from 4yousee")
)

// APIError represents a non-success answer from the 4YouSee API
type APIError struct {
	StatusCode int
	Method     string
	Endpoint   string
	// Body is the raw response text, usually {"message": "..."}
	Body string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("4yousee API error: status %d: %s", e.StatusCode, e.Body)
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// ValidationError is returned before any request is made when a payload
// fails a local check
type ValidationError struct {
	Field   string
	Tag     string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NotFoundError reports a record that an existence probe could not find.
// The probe failure, if any, is kept in Err.
type NotFoundError struct {
	Resource string
	ID       string
	Err      error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s was not found", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// UsageError reports a query the resource does not support
type UsageError struct {
	Resource Resource
	Message  string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s: %s", e.Resource, e.Message)
}
