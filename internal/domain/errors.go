package domain

import (
	"errors"
	"fmt"
)

// Account and credential errors
var (
	ErrAccountExists      = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid account name or password")
	ErrUnauthenticated    = errors.New("request carries no authenticated account")
)

// Lookup errors
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrAvatarNotFound  = errors.New("avatar not found")
	ErrNoDefaultAvatar = errors.New("no default avatar available")
)

// ErrConsistency marks a post-write re-fetch that returned nothing. It
// indicates a bug, not a user error, and is never retried.
var ErrConsistency = errors.New("persisted record not found after write")

// StorageError wraps any underlying storage-driver failure. Callers never
// inspect the wrapped error for sub-types; it propagates to the request
// boundary as a 500-class response.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// WrapStorage tags a driver error with the failing operation. Returns nil
// for a nil error so repository code can wrap unconditionally.
func WrapStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
