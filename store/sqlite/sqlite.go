/*
Package sqlite provides a SQLite-backed holiday calendar.

PURPOSE:
  Persists the holidays the paydate engine treats as non-paydays, so the
  calendar can be edited through the API without a redeploy. The engine
  itself never reads the database; callers snapshot the calendar with
  HolidaySet() and hand that to paydate.NewEngine.

KEY TABLES:
  holidays: One row per holiday date (date is unique)

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. The connection pool is pinned to a
  single connection so ":memory:" databases are shared by every query.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging):
  - Multiple readers don't block
  - Single writer at a time

USAGE:
  store, err := sqlite.New("./data/paydate.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  holidays, err := store.HolidaySet(ctx)
  engine := paydate.NewEngine(paydate.WithHolidays(holidays))

SEE ALSO:
  - paydate/holidays.go: HolidaySet and the default calendar
  - api/handlers.go: Holiday endpoints
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/warp/paydate-engine/paydate"
)

// ErrHolidayNotFound is returned when deleting an unknown holiday ID.
var ErrHolidayNotFound = errors.New("holiday not found")

// Store is the SQLite holiday calendar.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

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

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS holidays (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		name TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_holidays_date
		ON holidays(date);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// HOLIDAY CALENDAR
// =============================================================================

// SaveHoliday inserts a holiday. Saving a date that already exists replaces
// its name and keeps the original ID.
func (s *Store) SaveHoliday(ctx context.Context, h paydate.Holiday) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.saveHoliday(ctx, s.db, h)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) saveHoliday(ctx context.Context, db execer, h paydate.Holiday) error {
	if h.ID == "" {
		h.ID = h.Date.String()
	}

	query := `
		INSERT INTO holidays (id, date, name, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			name = excluded.name
	`

	_, err := db.ExecContext(ctx, query,
		h.ID,
		h.Date.String(),
		h.Name,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save holiday %s: %w", h.Date, err)
	}
	return nil
}

// SeedHolidays saves every holiday in one transaction.
func (s *Store) SeedHolidays(ctx context.Context, holidays []paydate.Holiday) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	for _, h := range holidays {
		if err := s.saveHoliday(ctx, tx, h); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// DeleteHoliday deletes a holiday by ID.
func (s *Store) DeleteHoliday(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM holidays WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete holiday %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrHolidayNotFound
	}
	return nil
}

// ListHolidays returns all holidays ordered by date.
func (s *Store) ListHolidays(ctx context.Context) ([]paydate.Holiday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, name
		FROM holidays
		ORDER BY date ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []paydate.Holiday
	for rows.Next() {
		var h paydate.Holiday
		var dateStr string
		if err := rows.Scan(&h.ID, &dateStr, &h.Name); err != nil {
			return nil, err
		}
		h.Date, err = paydate.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("holiday %s: %w", h.ID, err)
		}
		holidays = append(holidays, h)
	}

	return holidays, rows.Err()
}

// CountHolidays returns the number of stored holidays.
func (s *Store) CountHolidays(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM holidays").Scan(&count)
	return count, err
}

// HolidaySet snapshots the calendar for an engine.
func (s *Store) HolidaySet(ctx context.Context) (paydate.HolidaySet, error) {
	holidays, err := s.ListHolidays(ctx)
	if err != nil {
		return paydate.HolidaySet{}, err
	}
	return paydate.HolidaySetOf(holidays), nil
}

// ResetHolidays removes every holiday.
func (s *Store) ResetHolidays(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM holidays")
	return err
}
