package shared

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicate        = errors.New("duplicate entity")
	ErrNotFound         = errors.New("entity not found")
	ErrInvalidUUID      = errors.New("id must be a valid uuid")
	ErrEntityValidation = errors.New("entity validation error")
)

// NotFoundError names the entity and id a lookup failed for.
type NotFoundError struct {
	Entity string
	ID     any
}

func NewNotFoundError(entity string, id any) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found using id %v", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
