// Package migrate applies the embedded schema to Postgres and ClickHouse.
// Postgres migrations run in version order, one transaction each, recorded in schema_migrations.
package migrate

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"todotrack/internal/platform/logger"
	"todotrack/internal/platform/store"
)

//go:embed sql/*.sql
var files embed.FS

// lockKey serialises concurrent migrators (API replicas booting together)
const lockKey = 7_410_001

// Migration is one numbered SQL file
type Migration struct {
	Version string
	Name    string
	SQL     string
}

// Load returns the embedded Postgres migrations sorted by version
func Load() ([]Migration, error) { return load(files) }

func load(fsys fs.FS) ([]Migration, error) {
	names, err := fs.Glob(fsys, "sql/[0-9]*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	out := make([]Migration, 0, len(names))
	for _, n := range names {
		body, err := fs.ReadFile(fsys, n)
		if err != nil {
			return nil, err
		}
		base := strings.TrimSuffix(path.Base(n), ".sql")
		version, name, ok := strings.Cut(base, "_")
		if !ok {
			return nil, fmt.Errorf("migration %q: want <version>_<name>.sql", n)
		}
		out = append(out, Migration{Version: version, Name: name, SQL: string(body)})
	}
	return out, nil
}

const ledgerDDL = `CREATE TABLE IF NOT EXISTS schema_migrations (
    version    text PRIMARY KEY,
    name       text NOT NULL,
    applied_at timestamptz NOT NULL DEFAULT now()
)`

// Up applies every pending migration and returns the versions it applied
func Up(ctx context.Context, db store.TxRunner) ([]string, error) {
	all, err := Load()
	if err != nil {
		return nil, err
	}
	return up(ctx, db, all)
}

func up(ctx context.Context, db store.TxRunner, all []Migration) ([]string, error) {
	log := logger.Named("migrate")
	if _, err := db.Exec(ctx, ledgerDDL); err != nil {
		return nil, fmt.Errorf("create ledger: %w", err)
	}

	var applied []string
	for _, m := range all {
		ran := false
		err := db.Tx(ctx, func(q store.RowQuerier) error {
			if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, lockKey); err != nil {
				return err
			}
			done, err := store.Scalar[bool](ctx, q, `SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)`, m.Version)
			if err != nil || done {
				return err
			}
			if _, err := q.Exec(ctx, m.SQL); err != nil {
				return err
			}
			if _, err := q.Exec(ctx, `INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`, m.Version, m.Name); err != nil {
				return err
			}
			ran = true
			return nil
		})
		if err != nil {
			return applied, fmt.Errorf("migration %s_%s: %w", m.Version, m.Name, err)
		}
		if ran {
			log.Info().Str("version", m.Version).Str("name", m.Name).Msg("migration applied")
			applied = append(applied, m.Version)
		}
	}
	return applied, nil
}

// ClickHouse creates the analytics tables
func ClickHouse(ctx context.Context, ch store.Clickhouse) error {
	ddl, err := files.ReadFile("sql/clickhouse.sql")
	if err != nil {
		return err
	}
	return ch.Exec(ctx, string(ddl))
}
