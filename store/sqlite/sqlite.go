/*
Package sqlite persists calculation history.

PURPOSE:
  The engine itself is pure; the store is an append-only audit trail of
  what was computed, with which inputs, and what came out. Loan and
  calculator frontends use it for "recent calculations" views.

KEY TABLE:
  calculations: id, operation, inputs (JSON), result (NULL on failure),
                error (empty on success), created_at (unix nanoseconds,
                so recency ordering is numeric, never lexical)

APPEND-ONLY:
  No UPDATE or DELETE statements. History records are immutable.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging): multiple readers don't
  block and crash recovery is better.

USAGE:
  store, err := sqlite.New("./data/finance.db")   // or ":memory:"
  if err != nil { log.Fatal(err) }
  defer store.Close()
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// CalculationRecord is one persisted calculation. Result is nil when the
// operation failed; Error is empty when it succeeded.
type CalculationRecord struct {
	ID         string
	Operation  string
	InputsJSON string
	Result     *float64
	Error      string
	CreatedAt  time.Time
}

// Store persists calculation history in SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a store at the given database path. Use ":memory:" for an
// in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS calculations (
		id TEXT PRIMARY KEY,
		operation TEXT NOT NULL,
		inputs_json TEXT NOT NULL,
		result REAL,
		error TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_calculations_created_at
		ON calculations(created_at);
	CREATE INDEX IF NOT EXISTS idx_calculations_operation
		ON calculations(operation);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveCalculation appends a calculation record.
func (s *Store) SaveCalculation(ctx context.Context, rec CalculationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result sql.NullFloat64
	if rec.Result != nil {
		result = sql.NullFloat64{Float64: *rec.Result, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO calculations (id, operation, inputs_json, result, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Operation, rec.InputsJSON, result, rec.Error,
		rec.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to save calculation: %w", err)
	}
	return nil
}

// ListCalculations returns the most recent records, newest first.
func (s *Store) ListCalculations(ctx context.Context, limit int) ([]CalculationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, operation, inputs_json, result, error, created_at
		FROM calculations
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list calculations: %w", err)
	}
	defer rows.Close()

	var records []CalculationRecord
	for rows.Next() {
		var rec CalculationRecord
		var result sql.NullFloat64
		var createdAt int64
		if err := rows.Scan(&rec.ID, &rec.Operation, &rec.InputsJSON, &result, &rec.Error, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan calculation: %w", err)
		}
		if result.Valid {
			v := result.Float64
			rec.Result = &v
		}
		rec.CreatedAt = time.Unix(0, createdAt).UTC()
		records = append(records, rec)
	}
	return records, rows.Err()
}
