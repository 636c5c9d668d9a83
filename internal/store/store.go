// Package store opens SQLite store files and executes inserts with explicit
// outcome classification, so generators can tell a tolerable duplicate-key
// collision from a fatal failure.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Execer is the minimal statement surface generators need. Both *sql.DB and
// *sql.Tx satisfy it.
type Execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// Querier is the read-back surface used for summary counts.
type Querier interface {
	QueryRow(query string, args ...any) *sql.Row
}

// Outcome classifies a single insert attempt.
type Outcome int

const (
	// Inserted means the row was written.
	Inserted Outcome = iota
	// SkippedDuplicate means a uniqueness or primary-key constraint rejected
	// the row; junction generators discard the attempt and continue.
	SkippedDuplicate
)

// Open opens (or creates) a SQLite store file with referential integrity
// enforcement enabled on the connection.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return db, nil
}

// Insert executes an insert statement and classifies the result. A unique or
// primary-key constraint violation yields (SkippedDuplicate, nil); every other
// failure is returned as an error for the caller to propagate.
func Insert(x Execer, query string, args ...any) (Outcome, error) {
	if _, err := x.Exec(query, args...); err != nil {
		if isUniqueViolation(err) {
			return SkippedDuplicate, nil
		}
		return 0, err
	}
	return Inserted, nil
}

// isUniqueViolation reports whether err is a SQLite unique or primary-key
// constraint failure. Other constraint classes (FK, NOT NULL, CHECK, trigger
// aborts) stay fatal.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	}
	return false
}

// CountRows returns the number of rows in table. The table name comes from a
// fixed internal list, never from user input.
func CountRows(q Querier, table string) (int, error) {
	var n int
	if err := q.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}
