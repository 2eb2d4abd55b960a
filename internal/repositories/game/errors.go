package game

import (
	"errors"
	"fmt"
)

var (
	// ErrGameNotFound is returned when a write targets a game that does not exist
	ErrGameNotFound = errors.New("game not found")

	// ErrGameExists is returned when a generated ID collides with a stored game
	ErrGameExists = errors.New("game already exists")

	// ErrDisposed is returned by StreamTeacherGames after Dispose
	ErrDisposed = errors.New("repository has been disposed")
)

// StoreError wraps a failure that originated in the underlying store
type StoreError struct {
	// Op names the repository operation that failed
	Op string

	// Err is the store's error
	Err error
}

// Error implements the error interface
func (e *StoreError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

// Unwrap exposes the store's error to errors.Is and errors.As
func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
