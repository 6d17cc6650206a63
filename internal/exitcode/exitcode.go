// Package exitcode defines exit codes for the CLI.
package exitcode

import (
	"errors"

	"tasklist/internal/store"
)

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, out of range, bad state).
	UserError = 1

	// DataError indicates the saved task list is corrupt.
	DataError = 2

	// StorageError indicates the storage backend could not be read or written.
	StorageError = 3
)

// FromError maps a store error to an exit code.
func FromError(err error) int {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, store.ErrMalformedData):
		return DataError
	case errors.Is(err, store.ErrStorageUnavailable):
		return StorageError
	default:
		return UserError
	}
}
