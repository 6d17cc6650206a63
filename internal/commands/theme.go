package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/repository"
	"tasklist/internal/service"
)

func init() {
	Register(&ThemeCmd{})
}

// ThemeCmd implements the theme command.
type ThemeCmd struct{}

func (c *ThemeCmd) Name() string       { return "theme" }
func (c *ThemeCmd) Aliases() []string  { return nil }
func (c *ThemeCmd) Synopsis() string   { return "Show or set the light/dark color scheme" }
func (c *ThemeCmd) Usage() string      { return "tasklist theme [light|dark|toggle|reset]" }
func (c *ThemeCmd) NeedsStorage() bool { return true }

func (c *ThemeCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ThemeCmd) Run(ctx context.Context, cfg *config.Config, svc *service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 1 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[1])
		return exitcode.UserError
	}

	// No argument: print the current scheme
	if len(args) == 0 {
		scheme, err := svc.Prefs.ColorScheme(ctx)
		if err != nil {
			return reportError(errOut, err)
		}
		fmt.Fprintln(out, scheme)
		return exitcode.Success
	}

	switch arg := strings.ToLower(strings.TrimSpace(args[0])); arg {
	case "toggle":
		scheme, err := svc.Prefs.ToggleColorScheme(ctx)
		if err != nil {
			return reportError(errOut, err)
		}
		if !cfg.Quiet {
			fmt.Fprintln(out, scheme)
		}
		return exitcode.Success
	case "reset":
		if err := svc.Prefs.ResetColorScheme(ctx); err != nil {
			return reportError(errOut, err)
		}
	default:
		scheme, err := repository.ParseColorScheme(arg)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		if err := svc.Prefs.SetColorScheme(ctx, scheme); err != nil {
			return reportError(errOut, err)
		}
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
