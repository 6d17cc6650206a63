package store

import "errors"

var (
	// ErrStorageUnavailable means the persistent store could not be read or written.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrMalformedData means the saved value is not a serialized task list.
	ErrMalformedData = errors.New("malformed saved tasks")

	// ErrIndexOutOfRange is returned by Delete for a position outside the sequence.
	ErrIndexOutOfRange = errors.New("task index out of range")

	// ErrNotFound is returned by DeleteByID for an unknown id.
	ErrNotFound = errors.New("task not found")

	// ErrUnknownCriterion is returned by SortBy for an unsupported criterion.
	ErrUnknownCriterion = errors.New("unknown sort criterion")
)
