// Package task defines the task record and its state and deadline helpers.
package task

import (
	"fmt"
	"strings"
	"time"
)

// State is a task's progress, stored as its display label.
type State string

const (
	// Done marks a finished task.
	Done State = "Done"

	// NotDone is the default state for new tasks.
	NotDone State = "Not done"

	// DoingRightNow marks the task currently in progress.
	DoingRightNow State = "Doing right now"
)

// States lists the known states in the order the UI offers them.
var States = []State{Done, NotDone, DoingRightNow}

// DeadlineLayout is the ISO calendar date format used for deadlines.
const DeadlineLayout = "2006-01-02"

// Task represents a single task item.
type Task struct {
	// ID is assigned when the task enters a store session. It is never persisted.
	ID       string
	Title    string
	Summary  string
	State    State
	Deadline string // "" means no deadline
}

// Criterion selects the key used by a sort.
type Criterion string

const (
	// ByState orders by state label.
	ByState Criterion = "state"

	// ByDeadline orders by parsed deadline.
	ByDeadline Criterion = "deadline"
)

// ParseState resolves user input to a State.
// Accepts the labels case-insensitively plus the short forms
// "done", "notdone", "not-done", "todo", "doing".
func ParseState(s string) (State, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	switch norm {
	case "done":
		return Done, nil
	case "not done", "notdone", "not-done", "todo":
		return NotDone, nil
	case "doing right now", "doing", "doing-right-now", "in-progress":
		return DoingRightNow, nil
	}
	return "", fmt.Errorf("invalid state: %s", s)
}

// ParseCriterion resolves user input to a sort Criterion.
func ParseCriterion(s string) (Criterion, error) {
	switch Criterion(strings.ToLower(strings.TrimSpace(s))) {
	case ByState:
		return ByState, nil
	case ByDeadline:
		return ByDeadline, nil
	}
	return "", fmt.Errorf("invalid sort criterion: %s", s)
}

// ParseDeadline parses a deadline string.
// ok is false for empty or unparsable values.
func ParseDeadline(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(DeadlineLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// Next returns the state after s in States, wrapping around.
func (s State) Next() State {
	for i, st := range States {
		if st == s {
			return States[(i+1)%len(States)]
		}
	}
	return NotDone
}

// Prev returns the state before s in States, wrapping around.
func (s State) Prev() State {
	for i, st := range States {
		if st == s {
			return States[(i+len(States)-1)%len(States)]
		}
	}
	return NotDone
}
