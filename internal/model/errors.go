package model

import "errors"

var (
	// ErrNotFound is returned when no live user matches the requested id or email.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when a create or update would give two live users the same email.
	ErrDuplicateEmail = errors.New("email already in use")
	// ErrInvalidInput is returned when a required field is empty or malformed.
	ErrInvalidInput = errors.New("invalid input")
)
