package commands

import (
	"errors"
	"fmt"
	"io"

	"tasklist/internal/exitcode"
	"tasklist/internal/store"
)

// reportError prints err in the CLI error format and returns its exit code.
func reportError(errOut io.Writer, err error) int {
	switch {
	case errors.Is(err, store.ErrMalformedData):
		fmt.Fprintf(errOut, "error: saved tasks are corrupt (run: tasklist reset): %v\n", err)
	case errors.Is(err, store.ErrStorageUnavailable):
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
	default:
		fmt.Fprintf(errOut, "error: %v\n", err)
	}
	return exitcode.FromError(err)
}
