// Package store persists budget cycles and their transactions in SQLite.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tathagatalaskar/paycycle/internal/budget"

	_ "modernc.org/sqlite" // register sqlite driver
)

const (
	dayFormat = "2006-01-02"
)

// Store is a SQLite-backed cycle repository. A single process owns the
// database; no cross-process locking is attempted.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path and ensures the
// schema, including the transaction-deletion audit trigger, exists.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// OpenOrReset opens the database like Open, but when an existing file
// turns out not to be a usable database it is moved aside and a fresh
// one is created, so a corrupted store degrades to "no current cycle"
// instead of a fatal fault. The second return reports whether a reset
// happened; the unreadable file is kept next to the database with a
// ".corrupt" suffix.
func OpenOrReset(dbPath string) (*Store, bool, error) {
	s, err := Open(dbPath)
	if err == nil {
		return s, false, nil
	}

	if renameErr := os.Rename(dbPath, dbPath+".corrupt"); renameErr != nil {
		return nil, false, err
	}
	for _, sidecar := range []string{dbPath + "-wal", dbPath + "-shm"} {
		_ = os.Remove(sidecar)
	}

	s, retryErr := Open(dbPath)
	if retryErr != nil {
		return nil, false, retryErr
	}
	return s, true, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveCycle upserts the cycle row and all of its transactions in one
// database transaction. Safe to call repeatedly after each append.
func (s *Store) SaveCycle(c *budget.Cycle) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`INSERT INTO cycles (id, start_date, end_date, initial_income, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			start_date = excluded.start_date,
			end_date = excluded.end_date,
			initial_income = excluded.initial_income`,
		c.ID,
		c.StartDate.Format(dayFormat),
		c.EndDate.Format(dayFormat),
		c.InitialIncome.String(),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("saving cycle: %w", err)
	}

	for _, t := range c.Transactions {
		_, err = tx.Exec(`INSERT OR REPLACE INTO transactions
			(id, cycle_id, kind, amount, category, description, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			t.ID, c.ID, string(t.Kind), t.Amount.String(),
			t.Category, t.Description,
			t.CreatedAt.UTC().Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("saving transaction %s: %w", t.ID, err)
		}
	}

	return tx.Commit()
}

// CurrentCycle returns the most recently created cycle with its ledger
// loaded, or nil when no cycle has been started yet.
func (s *Store) CurrentCycle() (*budget.Cycle, error) {
	row := s.db.QueryRow(`SELECT id, start_date, end_date, initial_income
		FROM cycles ORDER BY created_at DESC, start_date DESC LIMIT 1`)

	c, err := scanCycle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := s.loadTransactions(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Cycle returns one cycle by id, ledger included.
func (s *Store) Cycle(id string) (*budget.Cycle, error) {
	row := s.db.QueryRow(`SELECT id, start_date, end_date, initial_income
		FROM cycles WHERE id = ?`, id)

	c, err := scanCycle(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("cycle %s not found", id)
	}
	if err != nil {
		return nil, err
	}

	if err := s.loadTransactions(c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListCycles returns every cycle, newest first, with ledgers loaded.
// Historical cycles are never deleted, only superseded.
func (s *Store) ListCycles() ([]*budget.Cycle, error) {
	rows, err := s.db.Query(`SELECT id, start_date, end_date, initial_income
		FROM cycles ORDER BY created_at DESC, start_date DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var cycles []*budget.Cycle
	for rows.Next() {
		c, err := scanCycle(rows)
		if err != nil {
			return nil, err
		}
		cycles = append(cycles, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, c := range cycles {
		if err := s.loadTransactions(c); err != nil {
			return nil, err
		}
	}
	return cycles, nil
}

// DeleteTransaction removes a ledger entry by id. This is an
// administrative action outside the append-only domain contract; the
// schema trigger records it in the audit log.
func (s *Store) DeleteTransaction(id string) error {
	res, err := s.db.Exec(`DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("transaction %s not found", id)
	}
	return nil
}

// AuditEntry is one row of the audit log.
type AuditEntry struct {
	ID       int64
	Action   string
	Entity   string
	EntityID string
	Detail   string
	LoggedAt time.Time
}

// AuditEntries returns the audit log, newest first.
func (s *Store) AuditEntries() ([]AuditEntry, error) {
	rows, err := s.db.Query(`SELECT id, action, entity, entity_id, detail, logged_at
		FROM audit_log ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []AuditEntry
	for rows.Next() {
		var e AuditEntry
		var loggedAt string
		if err := rows.Scan(&e.ID, &e.Action, &e.Entity, &e.EntityID, &e.Detail, &loggedAt); err != nil {
			return nil, err
		}
		e.LoggedAt, _ = time.Parse(time.RFC3339, loggedAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCycle(row rowScanner) (*budget.Cycle, error) {
	var c budget.Cycle
	var startStr, endStr, incomeStr string

	if err := row.Scan(&c.ID, &startStr, &endStr, &incomeStr); err != nil {
		return nil, err
	}

	var err error
	if c.StartDate, err = time.Parse(dayFormat, startStr); err != nil {
		return nil, fmt.Errorf("bad start_date %q: %w", startStr, err)
	}
	if c.EndDate, err = time.Parse(dayFormat, endStr); err != nil {
		return nil, fmt.Errorf("bad end_date %q: %w", endStr, err)
	}
	if c.InitialIncome, err = decimal.NewFromString(incomeStr); err != nil {
		return nil, fmt.Errorf("bad initial_income %q: %w", incomeStr, err)
	}
	return &c, nil
}

func (s *Store) loadTransactions(c *budget.Cycle) error {
	rows, err := s.db.Query(`SELECT id, kind, amount, category, description, created_at
		FROM transactions WHERE cycle_id = ? ORDER BY created_at, id`, c.ID)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var t budget.Transaction
		var kind, amount, createdAt string
		if err := rows.Scan(&t.ID, &kind, &amount, &t.Category, &t.Description, &createdAt); err != nil {
			return err
		}
		t.Kind = budget.Kind(kind)
		if t.Amount, err = decimal.NewFromString(amount); err != nil {
			return fmt.Errorf("bad amount %q: %w", amount, err)
		}
		t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		c.Transactions = append(c.Transactions, t)
	}
	return rows.Err()
}
