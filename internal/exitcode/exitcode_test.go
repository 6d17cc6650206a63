package exitcode

import (
	"errors"
	"fmt"
	"testing"

	"tasklist/internal/store"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, Success},
		{"malformed", fmt.Errorf("load tasks: %w", store.ErrMalformedData), DataError},
		{"storage", fmt.Errorf("save tasks: %w", store.ErrStorageUnavailable), StorageError},
		{"out of range", store.ErrIndexOutOfRange, UserError},
		{"other", errors.New("boom"), UserError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromError(tt.err); got != tt.want {
				t.Errorf("FromError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
