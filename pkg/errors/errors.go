// Package errors holds the request-level error taxonomy shared by services and
// handlers. None of these are fatal; each maps to one HTTP status.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels for errors.Is matching.
var (
	ErrValidation = errors.New("validation failed")
	ErrForbidden  = errors.New("not authorized for this resource")
	ErrNotFound   = errors.New("resource not found")
)

// FieldError is a single field-level validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every field that failed validation.
type ValidationError struct {
	Fields []FieldError
}

// NewValidation builds a ValidationError for one field.
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrValidation) true for any *ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Details renders the field messages for the response envelope.
func (e *ValidationError) Details() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return strings.Join(parts, "; ")
}

// AuthorizationError is returned when the caller does not own the target.
type AuthorizationError struct {
	Resource string
	ID       string
}

// Forbidden builds an AuthorizationError.
func Forbidden(resource, id string) *AuthorizationError {
	return &AuthorizationError{Resource: resource, ID: id}
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Resource, e.ID, ErrForbidden)
}

func (e *AuthorizationError) Is(target error) bool {
	return target == ErrForbidden
}

// NotFoundError is returned when a referenced record does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

// NotFound builds a NotFoundError.
func NotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Resource, e.ID, ErrNotFound)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
