package db

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// Postgres error code for a unique constraint violation.
const pgUniqueViolation = "23505"

// StorageError wraps any substrate failure a repository cannot classify
// further. The underlying driver error stays reachable through Unwrap.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Wrap classifies err as a StorageError for the given operation. A nil err
// passes through untouched.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// IsUniqueViolation reports whether err is the driver's unique constraint
// violation, optionally scoped to a named constraint.
func IsUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	if string(pqErr.Code) != pgUniqueViolation {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}
