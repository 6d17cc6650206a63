package commands

import (
	"context"
	"flag"
	"fmt"

	"tasklist/internal/service"
	"tasklist/internal/task"
)

// viewFlags holds the transient sort/filter options shared by list and export.
type viewFlags struct {
	sortBy string
	filter string
}

func (v *viewFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&v.sortBy, "sort", "", "")
	fs.StringVar(&v.filter, "filter", "", "")
}

// parse validates the flag values.
func (v *viewFlags) parse() (task.State, task.Criterion, error) {
	var (
		st  task.State
		c   task.Criterion
		err error
	)
	if v.filter != "" {
		if st, err = task.ParseState(v.filter); err != nil {
			return "", "", err
		}
	}
	if v.sortBy != "" {
		if c, err = task.ParseCriterion(v.sortBy); err != nil {
			return "", "", err
		}
	}
	return st, c, nil
}

// view is a loaded, filtered and sorted task sequence.
// Positions maps session id to the 1-based saved position, so numbers stay
// valid for rm regardless of the view.
type view struct {
	Tasks     []task.Task
	Positions map[string]int
}

// loadView loads the saved tasks, then applies the filter and the sort.
// Neither is persisted.
func loadView(ctx context.Context, svc *service.Service, filter task.State, sortBy task.Criterion) (view, error) {
	if _, err := svc.Tasks.Load(ctx); err != nil {
		return view{}, err
	}

	positions := make(map[string]int, svc.Tasks.Len())
	for i, t := range svc.Tasks.Tasks() {
		positions[t.ID] = i + 1
	}

	if filter != "" {
		if err := svc.Tasks.FilterBy(ctx, filter); err != nil {
			return view{}, err
		}
	}
	if sortBy != "" {
		if err := svc.Tasks.SortBy(sortBy); err != nil {
			return view{}, fmt.Errorf("sort: %w", err)
		}
	}

	return view{Tasks: svc.Tasks.Tasks(), Positions: positions}, nil
}

// Numbers returns the saved position of each task in Tasks.
func (v view) Numbers() []int {
	numbers := make([]int, len(v.Tasks))
	for i, t := range v.Tasks {
		numbers[i] = v.Positions[t.ID]
	}
	return numbers
}
