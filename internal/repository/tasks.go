// Package repository maps tasks and preferences onto kv.Storage keys.
package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"tasklist/internal/backend/kv"
	"tasklist/internal/store"
	"tasklist/internal/task"
)

// DefaultTasksKey is the storage key holding the serialized task list.
const DefaultTasksKey = "tasks"

// record is the persisted shape of a task. Field order is part of the format.
type record struct {
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	State    string `json:"state"`
	Deadline string `json:"deadline"`
}

// Tasks implements store.Repository over a single storage key.
type Tasks struct {
	storage kv.Storage
	key     string
}

// NewTasks creates a task repository. An empty key uses DefaultTasksKey.
func NewTasks(storage kv.Storage, key string) *Tasks {
	if key == "" {
		key = DefaultTasksKey
	}
	return &Tasks{storage: storage, key: key}
}

// Key returns the storage key in use.
func (r *Tasks) Key() string { return r.key }

// Load implements store.Repository.
// A missing key or a JSON null reads as nothing saved.
func (r *Tasks) Load(ctx context.Context) ([]task.Task, bool, error) {
	raw, ok, err := r.storage.GetItem(ctx, r.key)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", store.ErrStorageUnavailable, err)
	}
	if !ok {
		return nil, false, nil
	}

	tasks, err := Decode([]byte(raw))
	if err != nil {
		return nil, false, err
	}
	if tasks == nil {
		return nil, false, nil
	}
	return tasks, true, nil
}

// Save implements store.Repository.
func (r *Tasks) Save(ctx context.Context, tasks []task.Task) error {
	data, err := Encode(tasks)
	if err != nil {
		return err
	}
	if err := r.storage.SetItem(ctx, r.key, string(data)); err != nil {
		return fmt.Errorf("%w: %v", store.ErrStorageUnavailable, err)
	}
	return nil
}

// Encode serializes tasks in the persisted format: a JSON array of
// {title, summary, state, deadline} objects, HTML characters unescaped,
// no trailing newline, and [] for an empty list.
func Encode(tasks []task.Task) ([]byte, error) {
	records := make([]record, len(tasks))
	for i, t := range tasks {
		records[i] = record{
			Title:    t.Title,
			Summary:  t.Summary,
			State:    string(t.State),
			Deadline: t.Deadline,
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("encode tasks: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Decode parses the persisted format. It returns nil, nil for JSON null.
// Anything that is not an array of task objects wraps store.ErrMalformedData:
// null elements and states other than the three labels are rejected. A
// missing state is kept empty.
func Decode(data []byte) ([]task.Task, error) {
	var records []*record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrMalformedData, err)
	}
	if records == nil {
		return nil, nil
	}

	tasks := make([]task.Task, len(records))
	for i, rec := range records {
		if rec == nil {
			return nil, fmt.Errorf("%w: task %d is null", store.ErrMalformedData, i+1)
		}
		st := task.State(rec.State)
		if st != "" && !slices.Contains(task.States, st) {
			return nil, fmt.Errorf("%w: task %d has unknown state %q", store.ErrMalformedData, i+1, rec.State)
		}
		tasks[i] = task.Task{
			Title:    rec.Title,
			Summary:  rec.Summary,
			State:    st,
			Deadline: rec.Deadline,
		}
	}
	return tasks, nil
}
