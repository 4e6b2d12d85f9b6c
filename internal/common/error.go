// Package common defines sentinel errors shared by the stockkeeper
// repositories, services and CLI. Callers should use errors.Is to match
// these values; lower layers wrap them with detail via fmt.Errorf("%w: ...").
package common

import "errors"

var (
	// Input errors.
	ErrValidation = errors.New("validation error")
	ErrCanceled   = errors.New("operation canceled")

	// Uniqueness violations.
	ErrDuplicateName     = errors.New("duplicate product name")
	ErrDuplicateUsername = errors.New("username already exists")

	// Bounds.
	ErrCapacity          = errors.New("capacity exceeded")
	ErrInsufficientStock = errors.New("insufficient stock")

	// Lookup errors.
	ErrNotFound = errors.New("not found")
	ErrIndex    = errors.New("index out of range")

	// Login errors.
	ErrAuthentication = errors.New("invalid username or password")
	ErrEmptyDirectory = errors.New("no users registered")

	// Persisted file could not be parsed or holds invalid records.
	ErrStorageCorruption = errors.New("storage corrupted")
)
