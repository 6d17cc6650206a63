package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/output"
	"tasklist/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `tasklist` (no args) and `tasklist list [--sort] [--filter]`.
type ListCmd struct {
	view viewFlags
}

// SetSort sets the sort criterion (for testing).
func (c *ListCmd) SetSort(criterion string) {
	c.view.sortBy = criterion
}

// SetFilter sets the state filter (for testing).
func (c *ListCmd) SetFilter(state string) {
	c.view.filter = state
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string {
	return "tasklist list [--sort state|deadline] [--filter <state>]"
}
func (c *ListCmd) NeedsStorage() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	c.view.register(fs)
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc *service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	filter, sortBy, err := c.view.parse()
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	v, err := loadView(ctx, svc, filter, sortBy)
	if err != nil {
		return reportError(errOut, err)
	}

	if len(v.Tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, output.EmptyMessage)
		}
		return exitcode.Success
	}

	output.FormatViewHeader(out, filter, sortBy)
	for _, t := range v.Tasks {
		output.FormatTask(out, v.Positions[t.ID], t)
	}
	return exitcode.Success
}
