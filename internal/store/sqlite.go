// internal/store/sqlite.go
//
// SQLite-backed Store.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying embedded migrations (idempotent, recorded in _migrations).
//   - Saving runs and their rounds in one transaction.

package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

//go:embed migrations/*.sql
var migrations embed.FS

// timeLayout is fixed-width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type sqliteStore struct {
	db *sql.DB
}

/**
 * OpenSQLite opens (and creates if missing) a SQLite database file and
 * applies pending migrations.
 *
 * - Ensures the parent directory exists for relative paths (e.g. ./data/runs.db).
 * - ":memory:" is accepted and pinned to a single connection.
 */
func OpenSQLite(dsn string) (Store, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

/**
 * openDB opens the database with busy timeout and WAL journaling and
 * enforces foreign keys.
 */
func openDB(dsn string) (*sql.DB, error) {
	if dsn == ":memory:" {
		db, err := sql.Open("sqlite3", dsn)
		if err != nil {
			return nil, err
		}
		// separate connections would see separate in-memory databases
		db.SetMaxOpenConns(1)
		if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set pragmas: %w", err)
		}
		return db, nil
	}

	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	// _foreign_keys applies to every pooled connection, not just the first
	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=1")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

/**
 * migrate applies the embedded migrations in lexical order.
 *
 * - Uses a _migrations table to track applied files.
 * - Each file runs inside its own transaction.
 */
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := migrations.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Debug().Str("migration", f).Msg("applied")
	}
	return nil
}

func (s *sqliteStore) SaveRun(ctx context.Context, r *Run) error {
	stamp(r)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
        INSERT OR REPLACE INTO runs
            (id, label, beta_bigram, beta_trigram, seed, rounds, wins, total_guesses, exhausted, elapsed_ms, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Label, r.BetaBigram, r.BetaTrigram, int64(r.Seed), r.Rounds, r.Wins,
		r.TotalGuesses, r.Exhausted, r.Elapsed.Milliseconds(), r.CreatedAt.UTC().Format(timeLayout),
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM rounds WHERE run_id=?`, r.ID); err != nil {
		return fmt.Errorf("clear rounds: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `
        INSERT INTO rounds (run_id, idx, target, guesses, won, exhausted, sequence)
        VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare rounds: %w", err)
	}
	defer stmt.Close()
	for i, rd := range r.Results {
		if _, err := stmt.ExecContext(ctx, r.ID, i, rd.Target, rd.Guesses, rd.Won, rd.Exhausted,
			strings.Join(rd.Sequence, " ")); err != nil {
			return fmt.Errorf("insert round %d: %w", i, err)
		}
	}
	return tx.Commit()
}

func (s *sqliteStore) GetRun(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT id, label, beta_bigram, beta_trigram, seed, rounds, wins, total_guesses, exhausted, elapsed_ms, created_at
        FROM runs WHERE id=?`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
        SELECT target, guesses, won, exhausted, sequence
        FROM rounds WHERE run_id=? ORDER BY idx ASC`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var rd Round
		var seq string
		if err := rows.Scan(&rd.Target, &rd.Guesses, &rd.Won, &rd.Exhausted, &seq); err != nil {
			return nil, err
		}
		if seq != "" {
			rd.Sequence = strings.Fields(seq)
		}
		r.Results = append(r.Results, rd)
	}
	return r, rows.Err()
}

func (s *sqliteStore) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, label, beta_bigram, beta_trigram, seed, rounds, wins, total_guesses, exhausted, elapsed_ms, created_at
        FROM runs
        ORDER BY created_at DESC, id ASC
        LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Run, 0, limit)
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

func (s *sqliteStore) Close() error { return s.db.Close() }

type scanner interface {
	Scan(dest ...any) error
}

// scanRun converts a runs row into a Run.
func scanRun(sc scanner) (*Run, error) {
	var r Run
	var seed, elapsedMs int64
	var created string
	if err := sc.Scan(&r.ID, &r.Label, &r.BetaBigram, &r.BetaTrigram, &seed, &r.Rounds, &r.Wins,
		&r.TotalGuesses, &r.Exhausted, &elapsedMs, &created); err != nil {
		return nil, err
	}
	r.Seed = uint64(seed)
	r.Elapsed = time.Duration(elapsedMs) * time.Millisecond
	t, err := time.Parse(timeLayout, created)
	if err != nil {
		return nil, fmt.Errorf("run %s: created_at %q: %w", r.ID, created, err)
	}
	r.CreatedAt = t
	return &r, nil
}
