package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/export"
	"tasklist/internal/service"
)

func init() {
	Register(&ExportCmd{})
}

// ExportCmd implements the export command.
type ExportCmd struct {
	view   viewFlags
	format string
	output string
}

// SetOptions sets the format and output path (for testing).
func (c *ExportCmd) SetOptions(format, output string) {
	c.format = format
	c.output = output
}

func (c *ExportCmd) Name() string      { return "export" }
func (c *ExportCmd) Aliases() []string { return nil }
func (c *ExportCmd) Synopsis() string  { return "Export tasks as JSON, CSV or PDF" }
func (c *ExportCmd) Usage() string {
	return "tasklist export [--format json|csv|pdf] [--output <file>] [--sort <criterion>] [--filter <state>]"
}
func (c *ExportCmd) NeedsStorage() bool { return true }

func (c *ExportCmd) RegisterFlags(fs *flag.FlagSet) {
	c.view.register(fs)
	fs.StringVar(&c.format, "format", "json", "")
	fs.StringVar(&c.output, "output", "", "")
	fs.StringVar(&c.output, "o", "", "")
}

func (c *ExportCmd) Run(ctx context.Context, cfg *config.Config, svc *service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	format := strings.ToLower(c.format)
	if format == "" {
		format = "json"
	}
	if !slices.Contains(export.Formats, format) {
		fmt.Fprintf(errOut, "error: unknown export format: %s (use %s)\n", c.format, strings.Join(export.Formats, ", "))
		return exitcode.UserError
	}
	if format == "pdf" && c.output == "" {
		fmt.Fprintln(errOut, "error: --output is required for pdf")
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

	write := func(w io.Writer) error {
		return export.Write(w, format, "My Tasks", v.Tasks, v.Numbers())
	}

	if c.output == "" {
		err = write(out)
	} else {
		err = writeFile(c.output, write)
	}
	if err != nil {
		fmt.Fprintf(errOut, "error: export failed: %v\n", err)
		return exitcode.UserError
	}

	if c.output != "" && !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// writeFile creates path and fills it with write. A failed export leaves no
// file behind.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}
