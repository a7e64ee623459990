package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTempDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(Config{
		Path: filepath.Join(t.TempDir(), "test.db"),
		Name: "test",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestNew_Defaults(t *testing.T) {
	db := newTempDB(t)

	assert.Equal(t, DriverModernc, db.Driver())
	assert.Equal(t, ProfileStandard, db.Profile())
	assert.Equal(t, "test", db.Name())
	assert.True(t, filepath.IsAbs(db.Path()))
	assert.NoError(t, db.QuickCheck(context.Background()))
}

func TestBuildConnectionString(t *testing.T) {
	testCases := []struct {
		name     string
		path     string
		driver   Driver
		profile  DatabaseProfile
		contains []string
		wantErr  bool
	}{
		{
			name:     "modernc standard",
			path:     "/tmp/a.db",
			driver:   DriverModernc,
			profile:  ProfileStandard,
			contains: []string{"/tmp/a.db?_pragma=journal_mode(WAL)", "_pragma=synchronous(NORMAL)", "_pragma=foreign_keys(1)"},
		},
		{
			name:     "modernc ledger",
			path:     "/tmp/a.db",
			driver:   DriverModernc,
			profile:  ProfileLedger,
			contains: []string{"_pragma=synchronous(FULL)"},
		},
		{
			name:     "mattn standard",
			path:     "/tmp/a.db",
			driver:   DriverMattn,
			profile:  ProfileStandard,
			contains: []string{"/tmp/a.db?_journal_mode=WAL", "_synchronous=NORMAL", "_foreign_keys=1"},
		},
		{
			name:     "uri with query appends",
			path:     "file:test?mode=memory",
			driver:   DriverModernc,
			profile:  ProfileStandard,
			contains: []string{"file:test?mode=memory&_pragma=journal_mode(WAL)"},
		},
		{
			name:    "unknown driver",
			path:    "/tmp/a.db",
			driver:  Driver("postgres"),
			profile: ProfileStandard,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			connStr, err := buildConnectionString(tc.path, tc.driver, tc.profile)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, want := range tc.contains {
				assert.Contains(t, connStr, want)
			}
		})
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := newTempDB(t)

	require.NoError(t, db.Migrate(ctx))
	require.NoError(t, db.Migrate(ctx))

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM categories").Scan(&count))
	assert.Equal(t, 14, count)

	for _, table := range []string{"accounts", "tags", "rules", "expenses", "expense_tags", "trading_activities", "market_data"} {
		var name string
		err := db.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}
}

func TestWithTransaction_CommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	db := newTempDB(t)
	require.NoError(t, db.Migrate(ctx))

	err := db.WithTransaction(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, "INSERT INTO tags (name, color, style) VALUES ('x', '#000000', 'solid')")
		return err
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tags").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestWithTransaction_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := newTempDB(t)
	require.NoError(t, db.Migrate(ctx))

	boom := errors.New("boom")
	err := db.WithTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "INSERT INTO tags (name, color, style) VALUES ('x', '#000000', 'solid')"); err != nil {
			return err
		}
		return boom
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tags").Scan(&count))
	assert.Equal(t, 0, count)
}

func TestWithTransaction_RollsBackOnPanic(t *testing.T) {
	ctx := context.Background()
	db := newTempDB(t)
	require.NoError(t, db.Migrate(ctx))

	err := db.WithTransaction(ctx, func(tx *sql.Tx) error {
		_, _ = tx.ExecContext(ctx, "INSERT INTO tags (name, color, style) VALUES ('x', '#000000', 'solid')")
		panic("unexpected")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic in transaction")

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tags").Scan(&count))
	assert.Equal(t, 0, count)
}

func TestWithTransaction_NilDB(t *testing.T) {
	var db *DB
	err := db.WithTransaction(context.Background(), func(*sql.Tx) error { return nil })
	assert.Error(t, err)
}
