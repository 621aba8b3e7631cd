package domain

import "errors"

var (
	// ErrConfiguration indicates capacity is missing or invalid for an
	// operation that schedules orders.
	ErrConfiguration = errors.New("configuration error")

	// ErrValidation indicates a required field is empty or out of range.
	// No mutation is performed when it is returned.
	ErrValidation = errors.New("validation error")

	// ErrPersistence indicates a store could not be read or written.
	ErrPersistence = errors.New("persistence error")

	// ErrDuplicate indicates the value is already present (e.g. a date that
	// is already blocked). Callers treat it as a warning.
	ErrDuplicate = errors.New("already exists")

	// ErrNotFound indicates the referenced value does not exist.
	ErrNotFound = errors.New("not found")
)
