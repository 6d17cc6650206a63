package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/service"
	"tasklist/internal/task"
)

func init() {
	Register(&AddCmd{})
	Register(&CreateCmd{})
}

// addFlags holds the optional task fields shared by add and create.
type addFlags struct {
	summary  string
	state    string
	deadline string
}

func (f *addFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.summary, "summary", "", "")
	fs.StringVar(&f.summary, "s", "", "")
	fs.StringVar(&f.state, "state", "", "")
	fs.StringVar(&f.deadline, "deadline", "", "")
	fs.StringVar(&f.deadline, "d", "", "")
}

// AddCmd implements the add command.
type AddCmd struct {
	fields addFlags
}

// SetFields sets the optional task fields (for testing).
func (c *AddCmd) SetFields(summary, state, deadline string) {
	c.fields = addFlags{summary: summary, state: state, deadline: deadline}
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string {
	return "tasklist add [--summary <text>] [--state <state>] [--deadline <YYYY-MM-DD>] <title...>"
}
func (c *AddCmd) NeedsStorage() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	c.fields.register(fs)
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc *service.Service, args []string, out, errOut io.Writer) int {
	return runAdd(ctx, cfg, svc, c.fields, args, out, errOut)
}

// CreateCmd is an alias for AddCmd.
type CreateCmd struct {
	fields addFlags
}

func (c *CreateCmd) Name() string      { return "create" }
func (c *CreateCmd) Aliases() []string { return nil }
func (c *CreateCmd) Synopsis() string  { return "Create a task (alias for add)" }
func (c *CreateCmd) Usage() string {
	return "tasklist create [--summary <text>] [--state <state>] [--deadline <YYYY-MM-DD>] <title...>"
}
func (c *CreateCmd) NeedsStorage() bool { return true }

func (c *CreateCmd) RegisterFlags(fs *flag.FlagSet) {
	c.fields.register(fs)
}

func (c *CreateCmd) Run(ctx context.Context, cfg *config.Config, svc *service.Service, args []string, out, errOut io.Writer) int {
	return runAdd(ctx, cfg, svc, c.fields, args, out, errOut)
}

// runAdd is the shared implementation for add and create commands.
func runAdd(ctx context.Context, cfg *config.Config, svc *service.Service, fields addFlags, args []string, out, errOut io.Writer) int {
	// Join args to form title
	title := strings.Join(args, " ")
	if strings.TrimSpace(title) == "" {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	t := task.Task{
		Title:    title,
		Summary:  fields.summary,
		State:    task.NotDone,
		Deadline: strings.TrimSpace(fields.deadline),
	}
	if fields.state != "" {
		st, err := task.ParseState(fields.state)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		t.State = st
	}

	// Load first so the new task is appended to what was saved.
	// Corrupt data is reported rather than overwritten.
	if _, err := svc.Tasks.Load(ctx); err != nil {
		return reportError(errOut, err)
	}

	if _, err := svc.Tasks.Create(ctx, t); err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
