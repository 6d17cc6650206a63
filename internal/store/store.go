// Package store holds the authoritative task sequence for a session and
// mirrors every durable mutation to a Repository.
package store

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"tasklist/internal/task"
)

// Repository loads and saves the full task sequence.
// The store never touches the storage API directly.
type Repository interface {
	// Load returns the saved sequence. found is false when nothing was saved.
	// Errors wrap ErrStorageUnavailable or ErrMalformedData.
	Load(ctx context.Context) (tasks []task.Task, found bool, err error)

	// Save overwrites the saved sequence. Errors wrap ErrStorageUnavailable.
	Save(ctx context.Context, tasks []task.Task) error
}

// LoadStatus reports what Load found.
type LoadStatus int

const (
	// LoadEmpty means nothing was saved; the sequence was left unchanged.
	LoadEmpty LoadStatus = iota

	// LoadOK means the sequence was replaced with the saved one.
	LoadOK
)

func (s LoadStatus) String() string {
	if s == LoadOK {
		return "loaded"
	}
	return "empty"
}

// Store owns the in-memory task sequence.
//
// Create, Delete, DeleteByID and Clear persist the resulting sequence.
// SortBy and FilterBy only change the in-memory view. Load never writes.
// A Store is not safe for concurrent use.
type Store struct {
	repo  Repository
	log   logrus.FieldLogger
	newID func() string
	tasks []task.Task
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load and persist events.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Store) { s.log = log }
}

// WithIDGenerator replaces the UUID generator used for session ids.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// New creates an empty Store backed by repo.
func New(repo Repository, opts ...Option) *Store {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	s := &Store{
		repo:  repo,
		log:   discard,
		newID: uuid.NewString,
		tasks: []task.Task{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory sequence with the saved one.
// On absent data it returns LoadEmpty; on any error the sequence is unchanged.
func (s *Store) Load(ctx context.Context) (LoadStatus, error) {
	loaded, found, err := s.repo.Load(ctx)
	if err != nil {
		s.log.WithError(err).Warn("failed to load saved tasks")
		return LoadEmpty, fmt.Errorf("load tasks: %w", err)
	}
	if !found {
		s.log.Debug("no saved tasks")
		return LoadEmpty, nil
	}

	seq := make([]task.Task, len(loaded))
	for i, t := range loaded {
		t.ID = s.newID()
		seq[i] = t
	}
	s.tasks = seq
	s.log.WithField("count", len(seq)).Debug("loaded tasks")
	return LoadOK, nil
}

// Create appends t to the sequence and persists it.
// An empty state defaults to NotDone. The returned task carries its session id.
// If persisting fails the append stands and the error is returned.
func (s *Store) Create(ctx context.Context, t task.Task) (task.Task, error) {
	if t.State == "" {
		t.State = task.NotDone
	}
	t.ID = s.newID()
	s.tasks = append(s.tasks, t)
	return t, s.persist(ctx)
}

// Delete removes the task at index and persists the result.
func (s *Store) Delete(ctx context.Context, index int) error {
	if index < 0 || index >= len(s.tasks) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	s.tasks = slices.Delete(s.tasks, index, index+1)
	return s.persist(ctx)
}

// DeleteByID removes the task with the given session id and persists the result.
func (s *Store) DeleteByID(ctx context.Context, id string) error {
	i := s.Index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.Delete(ctx, i)
}

// Clear empties the sequence and persists it.
func (s *Store) Clear(ctx context.Context) error {
	s.tasks = []task.Task{}
	return s.persist(ctx)
}

// SortBy stably reorders the in-memory sequence. It does not persist.
//
// ByState compares state labels byte-wise. ByDeadline compares parsed dates;
// tasks with an empty or unparsable deadline go after all dated tasks.
func (s *Store) SortBy(c task.Criterion) error {
	switch c {
	case task.ByState:
		slices.SortStableFunc(s.tasks, func(a, b task.Task) int {
			return cmp.Compare(a.State, b.State)
		})
	case task.ByDeadline:
		slices.SortStableFunc(s.tasks, compareDeadlines)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCriterion, c)
	}
	return nil
}

func compareDeadlines(a, b task.Task) int {
	ta, okA := task.ParseDeadline(a.Deadline)
	tb, okB := task.ParseDeadline(b.Deadline)
	switch {
	case okA && okB:
		return ta.Compare(tb)
	case okA:
		return -1
	case okB:
		return 1
	default:
		return 0
	}
}

// FilterBy narrows the in-memory sequence to tasks in state st, keeping
// their relative order. It does not persist. An empty st reloads the full
// saved sequence instead, discarding any sort or filter view.
func (s *Store) FilterBy(ctx context.Context, st task.State) error {
	if st == "" {
		_, err := s.Load(ctx)
		return err
	}
	s.tasks = slices.DeleteFunc(s.tasks, func(t task.Task) bool {
		return t.State != st
	})
	return nil
}

// Tasks returns a copy of the current sequence.
func (s *Store) Tasks() []task.Task {
	return slices.Clone(s.tasks)
}

// Len returns the number of tasks in the current sequence.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Index returns the position of the task with the given id, or -1.
func (s *Store) Index(id string) int {
	return slices.IndexFunc(s.tasks, func(t task.Task) bool {
		return t.ID == id
	})
}

func (s *Store) persist(ctx context.Context) error {
	if err := s.repo.Save(ctx, slices.Clone(s.tasks)); err != nil {
		s.log.WithError(err).Error("failed to persist tasks")
		return fmt.Errorf("save tasks: %w", err)
	}
	s.log.WithField("count", len(s.tasks)).Debug("persisted tasks")
	return nil
}
