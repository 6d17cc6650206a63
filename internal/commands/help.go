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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "tasklist help" }
func (c *HelpCmd) NeedsStorage() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc *service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  tasklist                                           List all tasks
  tasklist list [common flags] [--sort state|deadline] [--filter <state>]
  tasklist add [common flags] [--summary <text>] [--state <state>] [--deadline <date>] <title...>
  tasklist create [common flags] [--summary <text>] [--state <state>] [--deadline <date>] <title...>
  tasklist rm [common flags] <n>
  tasklist delete [common flags] <n>
  tasklist export [common flags] [--format json|csv|pdf] [--output <file>] [--sort ...] [--filter ...]
  tasklist theme [common flags] [light|dark|toggle|reset]
  tasklist reset [common flags]
  tasklist ui [common flags]
  tasklist help
  tasklist version

States:
  "Not done" (todo), "Doing right now" (doing), "Done" (done)

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
