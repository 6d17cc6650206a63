// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"slices"
	"sync"

	"tasklist/internal/task"
)

// FakeRepository is an in-memory implementation of store.Repository for testing.
type FakeRepository struct {
	mu    sync.Mutex
	saved []task.Task
	found bool

	// Error injection for testing
	LoadErr error
	SaveErr error

	// SaveCalls counts Save invocations, including failed ones.
	SaveCalls int
}

// NewFakeRepository creates a FakeRepository with nothing saved.
func NewFakeRepository() *FakeRepository {
	return &FakeRepository{}
}

// Seed sets the saved sequence as if it had been persisted earlier.
func (f *FakeRepository) Seed(tasks ...task.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = stripIDs(tasks)
	f.found = true
}

// Saved returns the last persisted sequence, without session ids.
func (f *FakeRepository) Saved() []task.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.saved)
}

// Load implements store.Repository.
func (f *FakeRepository) Load(ctx context.Context) ([]task.Task, bool, error) {
	if f.LoadErr != nil {
		return nil, false, f.LoadErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.found {
		return nil, false, nil
	}
	return slices.Clone(f.saved), true, nil
}

// Save implements store.Repository.
func (f *FakeRepository) Save(ctx context.Context, tasks []task.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SaveCalls++
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.saved = stripIDs(tasks)
	f.found = true
	return nil
}

// StripIDs returns a copy of tasks with session ids cleared, for comparing
// store contents against persisted contents.
func StripIDs(tasks []task.Task) []task.Task {
	return stripIDs(tasks)
}

func stripIDs(tasks []task.Task) []task.Task {
	out := make([]task.Task, len(tasks))
	for i, t := range tasks {
		t.ID = ""
		out[i] = t
	}
	return out
}
