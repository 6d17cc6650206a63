// Package sqlkv implements kv.Storage on a SQL table using SQLite or MySQL.
package sqlkv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const (
	// DriverSQLite selects the embedded SQLite database.
	DriverSQLite = "sqlite"

	// DriverMySQL selects a MySQL server.
	DriverMySQL = "mysql"

	// QueryTimeout bounds every storage call.
	QueryTimeout = 5 * time.Second

	tableName = "local_storage"
)

var schemas = map[string]string{
	DriverSQLite: `CREATE TABLE IF NOT EXISTS local_storage (
		item_key TEXT PRIMARY KEY,
		item_value TEXT NOT NULL
	)`,
	DriverMySQL: `CREATE TABLE IF NOT EXISTS local_storage (
		item_key VARCHAR(191) NOT NULL PRIMARY KEY,
		item_value LONGTEXT NOT NULL
	)`,
}

var upserts = map[string]string{
	DriverSQLite: `INSERT INTO local_storage (item_key, item_value) VALUES (?, ?)
		ON CONFLICT(item_key) DO UPDATE SET item_value = excluded.item_value`,
	DriverMySQL: `INSERT INTO local_storage (item_key, item_value) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE item_value = VALUES(item_value)`,
}

// Client implements kv.Storage over a SQL database.
type Client struct {
	db     *sqlx.DB
	driver string
}

// Open connects to the database and creates the storage table if needed.
// For SQLite, dsn is a file path; its directory is created.
func Open(ctx context.Context, driver, dsn string) (*Client, error) {
	var sqlDriver string
	switch driver {
	case DriverSQLite:
		sqlDriver = "sqlite3"
		if err := os.MkdirAll(filepath.Dir(dsn), 0o700); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
		if !strings.Contains(dsn, "?") {
			dsn += "?_busy_timeout=5000"
		}
	case DriverMySQL:
		sqlDriver = "mysql"
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", driver)
	}

	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.ExecContext(ctx, schemas[driver]); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Client{db: db, driver: driver}, nil
}

// GetItem implements kv.Storage.
func (c *Client) GetItem(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	var value string
	err := c.db.GetContext(ctx, &value, "SELECT item_value FROM "+tableName+" WHERE item_key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, wrapError(err)
	}
	return value, true, nil
}

// SetItem implements kv.Storage.
func (c *Client) SetItem(ctx context.Context, key, value string) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	if _, err := c.db.ExecContext(ctx, upserts[c.driver], key, value); err != nil {
		return wrapError(err)
	}
	return nil
}

// RemoveItem implements kv.Storage.
func (c *Client) RemoveItem(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	if _, err := c.db.ExecContext(ctx, "DELETE FROM "+tableName+" WHERE item_key = ?", key); err != nil {
		return wrapError(err)
	}
	return nil
}

// Close implements kv.Storage.
func (c *Client) Close() error {
	return c.db.Close()
}

// wrapError wraps database errors with user-friendly messages.
func wrapError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("storage request timed out: %w", err)
	}
	if strings.Contains(err.Error(), "database is locked") {
		return fmt.Errorf("storage is locked by another process: %w", err)
	}
	return err
}
