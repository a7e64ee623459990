package config

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/ledger-seeder/internal/database"
	"github.com/aristath/ledger-seeder/internal/domain"
)

// inTempDir runs the test from an empty directory so no .env is picked up
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	inTempDir(t)

	cfg, err := Load(nil, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, DefaultDatabasePath, cfg.DatabasePath)
	assert.Equal(t, 1500, cfg.Expenses)
	assert.Equal(t, 1095, cfg.Days)
	assert.Equal(t, "sqlite", cfg.Driver)
	assert.Equal(t, "standard", cfg.Profile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Zero(t, cfg.Seed)
	assert.False(t, cfg.Clear)
	assert.False(t, cfg.EnsureSchema)
}

func TestLoad_Flags(t *testing.T) {
	inTempDir(t)

	cfg, err := Load([]string{"-expenses", "200", "-days", "30", "-clear", "-seed", "42", "-driver", "sqlite3", "custom.db"}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, "custom.db", cfg.DatabasePath)
	assert.Equal(t, 200, cfg.Expenses)
	assert.Equal(t, 30, cfg.Days)
	assert.True(t, cfg.Clear)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "sqlite3", cfg.Driver)
}

func TestLoad_EnvironmentAndFlagPrecedence(t *testing.T) {
	inTempDir(t)
	t.Setenv("SEED_EXPENSES", "300")
	t.Setenv("SEED_DAYS", "90")
	t.Setenv("SEED_LOG_LEVEL", "debug")
	t.Setenv("SEED_DB_PROFILE", "ledger")

	cfg, err := Load([]string{"-days", "45"}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, 300, cfg.Expenses)
	assert.Equal(t, 45, cfg.Days, "flags override the environment")
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "ledger", cfg.Profile)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SEED_EXPENSES=77\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("SEED_EXPENSES") })

	cfg, err := Load(nil, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 77, cfg.Expenses)
}

func TestLoad_Invalid(t *testing.T) {
	inTempDir(t)

	tests := []struct {
		name string
		args []string
	}{
		{"zero days", []string{"-days", "0"}},
		{"negative expenses", []string{"-expenses", "-1"}},
		{"unknown driver", []string{"-driver", "postgres"}},
		{"unknown profile", []string{"-profile", "fast"}},
		{"unknown log level", []string{"-log-level", "loud"}},
		{"unknown flag", []string{"-bogus"}},
		{"two databases", []string{"a.db", "b.db"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args, &bytes.Buffer{})
			assert.ErrorIs(t, err, domain.ErrInvalidConfig)
		})
	}
}

func TestLoad_Help(t *testing.T) {
	inTempDir(t)

	var usage bytes.Buffer
	_, err := Load([]string{"-h"}, &usage)
	assert.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, usage.String(), "Usage: seeder")
	assert.Contains(t, usage.String(), "-expenses")
}

func TestCheckStore(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "demo.db")
	require.NoError(t, os.WriteFile(existing, nil, 0o600))

	tests := []struct {
		name     string
		path     string
		wantErr  bool
		notFound bool
	}{
		{"existing file", existing, false, false},
		{"missing file", filepath.Join(dir, "missing.db"), true, true},
		{"directory", dir, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&Config{DatabasePath: tt.path}).CheckStore()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.notFound, errors.Is(err, domain.ErrStoreNotFound))
		})
	}
}

func TestDatabase(t *testing.T) {
	cfg := &Config{DatabasePath: "demo.db", Driver: "sqlite3", Profile: "ledger"}

	db := cfg.Database()
	assert.Equal(t, "demo.db", db.Path)
	assert.Equal(t, database.DriverMattn, db.Driver)
	assert.Equal(t, database.ProfileLedger, db.Profile)
	assert.Equal(t, "moneymapper", db.Name)
}
