// Package main is the entry point of the ledger seeder, which fills a
// MoneyMapper database with realistic demo data: accounts, tags, rules,
// expenses, income and trading activity.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/aristath/ledger-seeder/internal/config"
	"github.com/aristath/ledger-seeder/internal/database"
	"github.com/aristath/ledger-seeder/internal/domain"
	"github.com/aristath/ledger-seeder/internal/modules/reference"
	"github.com/aristath/ledger-seeder/internal/seeder"
	"github.com/aristath/ledger-seeder/pkg/logger"
	"github.com/aristath/ledger-seeder/pkg/random"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
	case errors.Is(err, domain.ErrStoreNotFound):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run the application first to create the database with migrations.")
		os.Exit(1)
	default:
		fallbackLog := logger.New(logger.Config{
			Level:  "info",
			Pretty: true,
		})
		fallbackLog.Fatal().Err(err).Msg("Seeding failed")
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(args, stderr)
	if err != nil {
		return err
	}

	log := logger.New(logger.Config{
		Output: stderr,
		Level:  cfg.LogLevel,
		Pretty: cfg.PrettyLog,
	})
	logger.SetGlobalLogger(log)

	// Nothing may touch the store before it is known to exist
	if err := cfg.CheckStore(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.New(cfg.Database())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if cfg.EnsureSchema {
		if err := db.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
		log.Info().Str("database", db.Path()).Msg("Schema ensured")
	}

	rnd := random.New(cfg.Seed)
	log.Info().Uint64("seed", rnd.Seed()).Msg("Random source ready")

	svc := seeder.NewService(db, reference.Default(), rnd, log)
	res, err := svc.Run(ctx, seeder.Options{
		Expenses: cfg.Expenses,
		Days:     cfg.Days,
		Clear:    cfg.Clear,
	})
	if err != nil {
		return err
	}

	return res.Report.Write(stdout)
}
