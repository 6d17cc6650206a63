// Package main is the entry point for the tasklist CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tasklist/internal/backend/kv"
	"tasklist/internal/backend/sqlkv"
	"tasklist/internal/cli"
	"tasklist/internal/commands"
	"tasklist/internal/config"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create dispatcher
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, openStorage)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}

// openStorage opens the backend named by storage.driver.
func openStorage(ctx context.Context, cfg *config.Config) (kv.Storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return kv.NewMemory(), nil
	case config.DriverSQLite:
		if cfg.Storage.DSN == "" {
			if err := cfg.EnsureDir(); err != nil {
				return nil, fmt.Errorf("create config dir: %w", err)
			}
		}
		return sqlkv.Open(ctx, sqlkv.DriverSQLite, cfg.DSN())
	case config.DriverMySQL:
		return sqlkv.Open(ctx, sqlkv.DriverMySQL, cfg.DSN())
	}
	return nil, fmt.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
}
