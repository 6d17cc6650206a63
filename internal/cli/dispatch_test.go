package cli_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"tasklist/internal/backend/kv"
	"tasklist/internal/cli"
	"tasklist/internal/commands"
	"tasklist/internal/config"
	"tasklist/internal/exitcode"
)

// testFactory creates a storage factory that always returns storage.
func testFactory(storage kv.Storage) cli.StorageFactory {
	return func(ctx context.Context, cfg *config.Config) (kv.Storage, error) {
		return storage, nil
	}
}

func run(t *testing.T, d *cli.Dispatcher, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var outBuf, errBuf bytes.Buffer
	code = d.Run(context.Background(), args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(kv.NewMemory()))

	_, stderr, code := run(t, dispatcher, "unknowncmd")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(kv.NewMemory()))

	_, stderr, code := run(t, dispatcher, "--quiet")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_HelpCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	stdout, stderr, code := run(t, dispatcher, "help")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Error("expected help output to contain 'Usage:'")
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	stdout, stderr, code := run(t, dispatcher, "version")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "tasklist 0.1.0\n" {
		t.Errorf("expected 'tasklist 0.1.0\\n', got %q", stdout)
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	_, stderr, code := run(t, dispatcher, "help", "--unknown")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -unknown\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_MissingFlagValue(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(kv.NewMemory()))

	_, stderr, code := run(t, dispatcher, "list", "--sort")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: flag needs an argument: -sort\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_StorageFactoryError(t *testing.T) {
	factory := func(ctx context.Context, cfg *config.Config) (kv.Storage, error) {
		return nil, errors.New("connection refused")
	}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	_, stderr, code := run(t, dispatcher, "list")

	if code != exitcode.StorageError {
		t.Errorf("expected exit code %d, got %d", exitcode.StorageError, code)
	}
	expected := "error: storage error: connection refused\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_AddListRemove(t *testing.T) {
	storage := kv.NewMemory()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(storage))

	stdout, _, code := run(t, dispatcher)
	if code != exitcode.Success || stdout != "You have no tasks\n" {
		t.Fatalf("expected empty list, got %d %q", code, stdout)
	}

	if _, stderr, code := run(t, dispatcher, "add", "--summary", "Q3", "Write", "report"); code != exitcode.Success {
		t.Fatalf("add failed: %d %q", code, stderr)
	}
	if _, stderr, code := run(t, dispatcher, "create", "--state", "done", "Review PR"); code != exitcode.Success {
		t.Fatalf("create failed: %d %q", code, stderr)
	}

	stdout, _, _ = run(t, dispatcher, "list", "--filter", "done")
	if !strings.Contains(stdout, "   2  Review PR\n") || strings.Contains(stdout, "Write report") {
		t.Errorf("unexpected filtered list %q", stdout)
	}

	if _, stderr, code := run(t, dispatcher, "rm", "1"); code != exitcode.Success {
		t.Fatalf("rm failed: %d %q", code, stderr)
	}

	raw, _, _ := storage.GetItem(context.Background(), "tasks")
	expected := `[{"title":"Review PR","summary":"","state":"Done","deadline":""}]`
	if raw != expected {
		t.Errorf("expected %s, got %s", expected, raw)
	}
}

func TestDispatcher_ConfigKey(t *testing.T) {
	storage := kv.NewMemory()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(storage))
	t.Setenv("TASKLIST_STORAGE_KEY", "work")

	if _, stderr, code := run(t, dispatcher, "add", "--quiet", "Ship it"); code != exitcode.Success {
		t.Fatalf("add failed: %d %q", code, stderr)
	}

	if _, ok, _ := storage.GetItem(context.Background(), "work"); !ok {
		t.Error("expected tasks under configured key")
	}
	if _, ok, _ := storage.GetItem(context.Background(), "tasks"); ok {
		t.Error("expected default key unused")
	}
}
