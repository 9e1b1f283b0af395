// Package migrations applies the embedded SQL files at startup.
//
// Files are named NNN_description.sql and run in lexicographic order. Each
// applied file is recorded in schema_migrations, so Run is idempotent. A
// Postgres advisory lock keeps concurrently starting instances from applying
// the same version twice.
package migrations

import (
	"context"
	"embed"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/DioGolang/GoRider/pkg/logger"
)

//go:embed *.sql
var sqlFiles embed.FS

// advisoryLockKey identifies the migration lock among other advisory locks on the database.
const advisoryLockKey int64 = 0x676f7269646572

type entry struct {
	version string
	sql     string
}

// Run applies every pending migration, each in its own transaction. All work
// happens on one connection that holds the advisory lock until Run returns.
func Run(ctx context.Context, db *sqlx.DB, log logger.Logger) error {
	conn, err := db.Connx(ctx)
	if err != nil {
		return fmt.Errorf("migrations: acquire connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, `SELECT pg_advisory_lock($1)`, advisoryLockKey); err != nil {
		return fmt.Errorf("migrations: acquire lock: %w", err)
	}
	defer func() {
		// The session outlives ctx in the pool, so unlock regardless of cancellation.
		unlockCtx := context.WithoutCancel(ctx)
		if _, err := conn.ExecContext(unlockCtx, `SELECT pg_advisory_unlock($1)`, advisoryLockKey); err != nil {
			log.Warn(unlockCtx, "Failed to release migration lock", logger.WithError(err))
		}
	}()

	return migrate(ctx, conn, log)
}

func migrate(ctx context.Context, conn *sqlx.Conn, log logger.Logger) error {
	if _, err := conn.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    VARCHAR(255) PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`); err != nil {
		return fmt.Errorf("migrations: ensure tracking table: %w", err)
	}

	entries, err := loadEntries()
	if err != nil {
		return fmt.Errorf("migrations: load files: %w", err)
	}

	var versions []string
	if err := conn.SelectContext(ctx, &versions, `SELECT version FROM schema_migrations`); err != nil {
		return fmt.Errorf("migrations: read applied versions: %w", err)
	}
	applied := make(map[string]bool, len(versions))
	for _, v := range versions {
		applied[v] = true
	}

	pending := 0
	for _, e := range entries {
		if applied[e.version] {
			continue
		}
		if err := applyEntry(ctx, conn, e); err != nil {
			return fmt.Errorf("migrations: apply %q: %w", e.version, err)
		}
		log.Info(ctx, "Migration applied", logger.String("version", e.version))
		pending++
	}

	log.Info(ctx, "Schema is up to date", logger.Int("applied", pending))
	return nil
}

func loadEntries() ([]entry, error) {
	dirEntries, err := sqlFiles.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("read embedded dir: %w", err)
	}

	var out []entry
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		content, err := sqlFiles.ReadFile(de.Name())
		if err != nil {
			return nil, fmt.Errorf("read %q: %w", de.Name(), err)
		}
		out = append(out, entry{version: de.Name(), sql: string(content)})
	}
	return out, nil
}

func applyEntry(ctx context.Context, conn *sqlx.Conn, e entry) error {
	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, e.sql); err != nil {
		return fmt.Errorf("exec sql: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, e.version); err != nil {
		return fmt.Errorf("record version: %w", err)
	}
	return tx.Commit()
}
