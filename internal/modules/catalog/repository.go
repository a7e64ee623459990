// Package catalog resolves names to store identifiers and seeds the fixed
// account, tag and rule catalogs.
package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aristath/ledger-seeder/internal/domain"
	"github.com/aristath/ledger-seeder/internal/modules/reference"
)

// Querier is satisfied by *sql.DB, *sql.Tx and *database.DB
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// Execer is satisfied by *sql.DB, *sql.Tx and *database.DB
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// NameIndex maps a catalog name to its store identifier
type NameIndex map[string]int64

// Lookup returns the id for name
func (n NameIndex) Lookup(name string) (int64, bool) {
	id, ok := n[name]
	return id, ok
}

// Ptr returns a pointer to the id for name, or nil when name is unresolved
func (n NameIndex) Ptr(name string) *int64 {
	id, ok := n[name]
	if !ok {
		return nil
	}
	return &id
}

// Reverse returns the id to name mapping
func (n NameIndex) Reverse() map[int64]string {
	out := make(map[int64]string, len(n))
	for name, id := range n {
		out[id] = name
	}
	return out
}

// generatedTables lists the tables cleared before reseeding, children first
var generatedTables = []string{
	"expense_tags",
	"expenses",
	"trading_activities",
	"market_data",
	"accounts",
	"rules",
	"tags",
}

// Repository reads and seeds catalog tables
type Repository struct {
	log zerolog.Logger
}

// NewRepository creates a catalog repository
func NewRepository(log zerolog.Logger) *Repository {
	return &Repository{
		log: log.With().Str("repo", "catalog").Logger(),
	}
}

// CategoryIDs returns the category name index
func (r *Repository) CategoryIDs(ctx context.Context, q Querier) (NameIndex, error) {
	return r.index(ctx, q, "categories")
}

// TagIDs returns the tag name index
func (r *Repository) TagIDs(ctx context.Context, q Querier) (NameIndex, error) {
	return r.index(ctx, q, "tags")
}

// AccountIDs returns the account name index
func (r *Repository) AccountIDs(ctx context.Context, q Querier) (NameIndex, error) {
	return r.index(ctx, q, "accounts")
}

func (r *Repository) index(ctx context.Context, q Querier, table string) (NameIndex, error) {
	rows, err := q.QueryContext(ctx, "SELECT id, name FROM "+table)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", table, err)
	}
	defer rows.Close()

	index := NameIndex{}
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		index[name] = id
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", table, err)
	}

	return index, nil
}

// SeedAccounts inserts accounts that are not present yet and returns how many
// rows were added.
func (r *Repository) SeedAccounts(ctx context.Context, ex Execer, defs []reference.AccountDef) (int, error) {
	inserted := 0
	for _, def := range defs {
		res, err := ex.ExecContext(ctx,
			"INSERT OR IGNORE INTO accounts (name, account_type) VALUES (?, ?)",
			def.Name, string(def.Type))
		if err != nil {
			return inserted, fmt.Errorf("failed to seed account %s: %w", def.Name, err)
		}
		inserted += affected(res)
	}

	r.log.Debug().Int("inserted", inserted).Int("declared", len(defs)).Msg("Accounts seeded")
	return inserted, nil
}

// SeedTags inserts tags that are not present yet and returns how many rows
// were added.
func (r *Repository) SeedTags(ctx context.Context, ex Execer, defs []reference.TagDef) (int, error) {
	inserted := 0
	for _, def := range defs {
		res, err := ex.ExecContext(ctx,
			"INSERT OR IGNORE INTO tags (name, color, style) VALUES (?, ?, ?)",
			def.Name, def.Color, string(def.Style))
		if err != nil {
			return inserted, fmt.Errorf("failed to seed tag %s: %w", def.Name, err)
		}
		inserted += affected(res)
	}

	r.log.Debug().Int("inserted", inserted).Int("declared", len(defs)).Msg("Tags seeded")
	return inserted, nil
}

// SeedRules inserts rules whose target resolves and whose name is not taken.
// Rules with an unresolved target are skipped.
func (r *Repository) SeedRules(ctx context.Context, ex Execer, defs []reference.RuleDef, categories, tags NameIndex) (inserted, skipped int, err error) {
	for _, def := range defs {
		var index NameIndex
		switch def.Action {
		case domain.RuleActionAssignCategory:
			index = categories
		case domain.RuleActionAssignTag:
			index = tags
		}

		targetID, ok := index.Lookup(def.Target)
		if !ok {
			skipped++
			r.log.Debug().Str("rule", def.Name).Str("target", def.Target).Msg("Rule target unresolved, skipping")
			continue
		}

		res, err := ex.ExecContext(ctx, `
			INSERT INTO rules (name, pattern, action_type, action_value)
			SELECT ?, ?, ?, ?
			WHERE NOT EXISTS (SELECT 1 FROM rules WHERE name = ?)`,
			def.Name, def.Pattern, string(def.Action), fmt.Sprintf("%d", targetID), def.Name)
		if err != nil {
			return inserted, skipped, fmt.Errorf("failed to seed rule %s: %w", def.Name, err)
		}
		inserted += affected(res)
	}

	r.log.Debug().Int("inserted", inserted).Int("skipped", skipped).Msg("Rules seeded")
	return inserted, skipped, nil
}

// ClearGenerated deletes everything the seeder creates. Categories are kept.
func (r *Repository) ClearGenerated(ctx context.Context, ex Execer) error {
	for _, table := range generatedTables {
		res, err := ex.ExecContext(ctx, "DELETE FROM "+table)
		if err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
		r.log.Debug().Str("table", table).Int("deleted", affected(res)).Msg("Table cleared")
	}
	return nil
}

func affected(res sql.Result) int {
	n, err := res.RowsAffected()
	if err != nil {
		return 0
	}
	return int(n)
}
