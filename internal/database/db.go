// Package database provides database connection and initialization functionality.
package database

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3" // cgo SQLite driver, registered as "sqlite3"
	_ "modernc.org/sqlite"          // Pure Go SQLite driver, registered as "sqlite"
)

//go:embed schemas/moneymapper_schema.sql
var moneymapperSchema string

// Driver names a registered database/sql SQLite driver
type Driver string

const (
	// DriverModernc is the pure Go driver (default)
	DriverModernc Driver = "sqlite"
	// DriverMattn is the cgo driver
	DriverMattn Driver = "sqlite3"
)

// DatabaseProfile defines different configuration profiles for databases
type DatabaseProfile string

const (
	// ProfileLedger - fsync after every commit
	ProfileLedger DatabaseProfile = "ledger"
	// ProfileStandard - fsync at checkpoints
	ProfileStandard DatabaseProfile = "standard"
)

// DB wraps the database connection
type DB struct {
	conn    *sql.DB
	path    string
	driver  Driver
	profile DatabaseProfile
	name    string // Database name for logging
}

// Config holds database configuration
type Config struct {
	Path    string
	Driver  Driver
	Profile DatabaseProfile
	Name    string // Friendly name for logging
}

// New opens the database described by cfg
func New(cfg Config) (*DB, error) {
	// file: URIs (in-memory databases in tests) are used as-is
	if !strings.HasPrefix(cfg.Path, "file:") {
		absPath, err := filepath.Abs(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve database path to absolute: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		cfg.Path = absPath
	}

	if cfg.Driver == "" {
		cfg.Driver = DriverModernc
	}
	if cfg.Profile == "" {
		cfg.Profile = ProfileStandard
	}

	connStr, err := buildConnectionString(cfg.Path, cfg.Driver, cfg.Profile)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(string(cfg.Driver), connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", cfg.Name, err)
	}

	configureConnectionPool(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping database %s: %w", cfg.Name, err)
	}

	return &DB{
		conn:    conn,
		path:    cfg.Path,
		driver:  cfg.Driver,
		profile: cfg.Profile,
		name:    cfg.Name,
	}, nil
}

// buildConnectionString creates the driver-specific DSN carrying the profile PRAGMAs
func buildConnectionString(path string, driver Driver, profile DatabaseProfile) (string, error) {
	synchronous := "NORMAL"
	if profile == ProfileLedger {
		synchronous = "FULL"
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}

	switch driver {
	case DriverModernc:
		connStr := path + sep + "_pragma=journal_mode(WAL)"
		connStr += "&_pragma=synchronous(" + synchronous + ")"
		connStr += "&_pragma=foreign_keys(1)"
		connStr += "&_pragma=busy_timeout(5000)"
		return connStr, nil
	case DriverMattn:
		connStr := path + sep + "_journal_mode=WAL"
		connStr += "&_synchronous=" + synchronous
		connStr += "&_foreign_keys=1"
		connStr += "&_busy_timeout=5000"
		return connStr, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// configureConnectionPool pins the pool to one connection. Seeding is a single
// writer and PRAGMAs apply per connection.
func configureConnectionPool(conn *sql.DB) {
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// Name returns the database name for logging
func (db *DB) Name() string {
	return db.name
}

// Driver returns the database/sql driver in use
func (db *DB) Driver() Driver {
	return db.driver
}

// Profile returns the database profile
func (db *DB) Profile() DatabaseProfile {
	return db.profile
}

// Path returns the database file path
func (db *DB) Path() string {
	return db.path
}

// Migrate applies the bundled MoneyMapper schema. Every statement is
// idempotent, so running it against an initialized store changes nothing.
func (db *DB) Migrate(ctx context.Context) error {
	return db.WithTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, moneymapperSchema); err != nil {
			return fmt.Errorf("failed to execute schema for %s: %w", db.name, err)
		}
		return nil
	})
}

// WithTransaction runs fn inside a transaction. The transaction commits when
// fn returns nil and rolls back on error or panic.
func (db *DB) WithTransaction(ctx context.Context, fn func(*sql.Tx) error) (err error) {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			err = fmt.Errorf("panic in transaction: %v", p)
		} else if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				err = fmt.Errorf("transaction failed: %w (rollback also failed: %v)", err, rollbackErr)
			} else {
				err = fmt.Errorf("transaction failed: %w", err)
			}
		} else if commitErr := tx.Commit(); commitErr != nil {
			err = fmt.Errorf("failed to commit transaction: %w", commitErr)
		}
	}()

	err = fn(tx)
	return err
}

// ExecContext executes a query with context
func (db *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return db.conn.ExecContext(ctx, query, args...)
}

// QueryContext executes a query with context
func (db *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return db.conn.QueryContext(ctx, query, args...)
}

// QueryRowContext executes a query with context
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return db.conn.QueryRowContext(ctx, query, args...)
}

// QuickCheck pings the database
func (db *DB) QuickCheck(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}
