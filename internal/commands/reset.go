package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/service"
)

func init() {
	Register(&ResetCmd{})
}

// ResetCmd implements the reset command.
// It overwrites the saved task list with an empty one, which is also the way
// out of corrupt saved data.
type ResetCmd struct{}

func (c *ResetCmd) Name() string       { return "reset" }
func (c *ResetCmd) Aliases() []string  { return nil }
func (c *ResetCmd) Synopsis() string   { return "Delete all tasks" }
func (c *ResetCmd) Usage() string      { return "tasklist reset" }
func (c *ResetCmd) NeedsStorage() bool { return true }

func (c *ResetCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ResetCmd) Run(ctx context.Context, cfg *config.Config, svc *service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	if err := svc.Tasks.Clear(ctx); err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
