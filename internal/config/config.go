// Package config provides configuration management functionality.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/aristath/ledger-seeder/internal/database"
	"github.com/aristath/ledger-seeder/internal/domain"
)

// DefaultDatabasePath is used when no database argument is given
const DefaultDatabasePath = "demo.db"

// Config holds the seeder configuration
type Config struct {
	DatabasePath string `validate:"required"`
	Driver       string `validate:"oneof=sqlite sqlite3"`
	Profile      string `validate:"oneof=standard ledger"`
	LogLevel     string `validate:"oneof=debug info warn error disabled"`
	Seed         uint64
	Expenses     int `validate:"gte=0"`
	Days         int `validate:"gte=1"`
	Clear        bool
	EnsureSchema bool
	PrettyLog    bool
}

// Load reads configuration from .env, SEED_* environment variables and the
// command-line args (without the program name), in increasing precedence.
// flag.ErrHelp is returned unwrapped when -h is given.
func Load(args []string, usage io.Writer) (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("SEED")
	v.AutomaticEnv()

	v.SetDefault("db_driver", string(database.DriverModernc))
	v.SetDefault("db_profile", string(database.ProfileStandard))
	v.SetDefault("log_level", "info")
	v.SetDefault("log_pretty", true)
	v.SetDefault("expenses", 1500)
	v.SetDefault("days", 1095)
	v.SetDefault("seed", 0)

	cfg := &Config{}

	fs := flag.NewFlagSet("seeder", flag.ContinueOnError)
	fs.SetOutput(usage)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: seeder [flags] [database]\n\n")
		fmt.Fprintf(fs.Output(), "Seed a MoneyMapper database (default %s) with realistic demo data.\n\n", DefaultDatabasePath)
		fs.PrintDefaults()
	}

	fs.IntVar(&cfg.Expenses, "expenses", v.GetInt("expenses"), "Number of expenses to generate")
	fs.IntVar(&cfg.Days, "days", v.GetInt("days"), "Number of days back to generate data")
	fs.BoolVar(&cfg.Clear, "clear", false, "Clear existing generated data before seeding")
	fs.Uint64Var(&cfg.Seed, "seed", v.GetUint64("seed"), "Random seed (0 picks one and logs it)")
	fs.BoolVar(&cfg.EnsureSchema, "ensure-schema", false, "Create missing tables in an existing database")
	fs.StringVar(&cfg.LogLevel, "log-level", v.GetString("log_level"), "Log level: debug, info, warn, error, disabled")
	fs.StringVar(&cfg.Driver, "driver", v.GetString("db_driver"), "SQLite driver: sqlite (pure Go) or sqlite3 (cgo)")
	fs.StringVar(&cfg.Profile, "profile", v.GetString("db_profile"), "Durability profile: standard or ledger")
	fs.BoolVar(&cfg.PrettyLog, "pretty", v.GetBool("log_pretty"), "Human readable log output")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}

	switch fs.NArg() {
	case 0:
		cfg.DatabasePath = DefaultDatabasePath
	case 1:
		cfg.DatabasePath = fs.Arg(0)
	default:
		return nil, fmt.Errorf("%w: expected at most one database argument, got %d", domain.ErrInvalidConfig, fs.NArg())
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field ranges and enumerations
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s failed %q (value %v)", domain.ErrInvalidConfig, fe.Field(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	return nil
}

// CheckStore verifies the database file exists before anything touches it
func (c *Config) CheckStore() error {
	abs, err := filepath.Abs(c.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to resolve database path: %w", err)
	}

	info, err := os.Stat(abs)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", domain.ErrStoreNotFound, abs)
	}
	if err != nil {
		return fmt.Errorf("failed to stat database %s: %w", abs, err)
	}
	if info.IsDir() {
		return fmt.Errorf("database path is a directory: %s", abs)
	}
	return nil
}

// Database returns the database settings for the configured store
func (c *Config) Database() database.Config {
	return database.Config{
		Path:    c.DatabasePath,
		Driver:  database.Driver(c.Driver),
		Profile: database.DatabaseProfile(c.Profile),
		Name:    "moneymapper",
	}
}
