package apperr

import (
	"fmt"
)

// NotFoundError is returned when an entity cannot be resolved by its
// identifier. Its message is part of the API contract.
type NotFoundError struct {
	Resource string
	ID       string
}

func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s \"%s\" was not found.", e.Resource, e.ID)
}

// ForbiddenError is returned when the acting user is not the creator of the
// entity being mutated.
type ForbiddenError struct {
	Message string
}

func NewForbidden(message string) *ForbiddenError {
	return &ForbiddenError{Message: message}
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

// UnauthorizedError is returned when the actor cannot be authenticated.
type UnauthorizedError struct {
	Message string
}

func NewUnauthorized(message string) *UnauthorizedError {
	return &UnauthorizedError{Message: message}
}

func (e *UnauthorizedError) Error() string {
	return e.Message
}

// ValidationError carries the ordered list of field messages for a rejected
// payload. Uniqueness conflicts are reported through it as well.
type ValidationError struct {
	Messages []string
}

func NewValidation(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return "validation failed"
	}
	return e.Messages[0]
}
