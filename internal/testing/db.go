// Package testing provides testing utilities and helpers for the seeder.
package testing

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/aristath/ledger-seeder/internal/database"
)

// NewTestDB creates a temporary SQLite database with the MoneyMapper schema
// applied (categories included). The database is closed when the test ends.
func NewTestDB(t *testing.T) *database.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "moneymapper_test.db")
	db, err := database.New(database.Config{
		Path:    path,
		Profile: database.ProfileStandard,
		Name:    "moneymapper",
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Warning: Failed to close test database: %v", err)
		}
	})

	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// NewEmptyTestDB creates a temporary SQLite database with no schema applied
func NewEmptyTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.New(database.Config{
		Path: filepath.Join(t.TempDir(), "empty_test.db"),
		Name: "empty",
	})
	if err != nil {
		t.Fatalf("Failed to create empty test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, db *database.DB, table string) int {
	t.Helper()

	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
	if err := db.QueryRowContext(context.Background(), query).Scan(&count); err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}
	return count
}
