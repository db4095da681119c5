package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed *.sql
var files embed.FS

// lockKey serialises concurrent Apply calls across processes.
const lockKey int64 = 704221901

// Names lists the embedded migrations in the order Apply runs them.
func Names() ([]string, error) {
	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}
	slices.Sort(names)
	return names, nil
}

// Apply runs every embedded migration not yet recorded in schema_migrations
// and returns the names it applied. Each file and its record commit together.
func Apply(ctx context.Context, pool *pgxpool.Pool) ([]string, error) {
	names, err := Names()
	if err != nil {
		return nil, err
	}

	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire conn: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, `SELECT pg_advisory_lock($1)`, lockKey); err != nil {
		return nil, fmt.Errorf("lock migrations: %w", err)
	}
	defer conn.Exec(context.Background(), `SELECT pg_advisory_unlock($1)`, lockKey)

	if _, err := conn.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			name       TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}

	done, err := appliedNames(ctx, conn.Conn())
	if err != nil {
		return nil, err
	}

	var applied []string
	for _, name := range names {
		if done[name] {
			continue
		}
		if err := applyOne(ctx, conn.Conn(), name); err != nil {
			return applied, err
		}
		applied = append(applied, name)
	}
	return applied, nil
}

func appliedNames(ctx context.Context, conn *pgx.Conn) (map[string]bool, error) {
	rows, err := conn.Query(ctx, `SELECT name FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("read schema_migrations: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan schema_migrations: %w", err)
	}

	done := make(map[string]bool, len(names))
	for _, name := range names {
		done[name] = true
	}
	return done, nil
}

func applyOne(ctx context.Context, conn *pgx.Conn, name string) error {
	body, err := files.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	return pgx.BeginFunc(ctx, conn, func(tx pgx.Tx) error {
		if sql := strings.TrimSpace(string(body)); sql != "" {
			if _, err := tx.Exec(ctx, sql); err != nil {
				return fmt.Errorf("exec %s: %w", name, err)
			}
		}
		if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (name) VALUES ($1)`, name); err != nil {
			return fmt.Errorf("record %s: %w", name, err)
		}
		return nil
	})
}
