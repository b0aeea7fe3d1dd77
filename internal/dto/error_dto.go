// FILE: internal/dto/error_dto.go
// Typed errors surfaced by services and mapped to HTTP codes by the error middleware
package dto

import "fmt"

// ValidationError is returned for missing or malformed input.
type ValidationError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError covers absent resources and resources the caller does not own.
type NotFoundError struct {
	Resource string
	Id       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func NewNotFoundError(resource string, id fmt.Stringer) *NotFoundError {
	e := &NotFoundError{Resource: resource}
	if id != nil {
		e.Id = id.String()
	}
	return e
}

// UnsupportedTypeError means the classifier produced a type without a template.
type UnsupportedTypeError struct {
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("feature type %q is not supported", e.Type)
}

// ForbiddenError is an authorization rejection, e.g. an agent that does not
// belong to the page it is invoked on.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}
