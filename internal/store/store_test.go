// Tests for store opening and insert outcome classification.
package store

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestInsertOutcomes(t *testing.T) {
	db := openTestDB(t)

	if _, err := db.Exec(`CREATE TABLE pairs (
		a TEXT NOT NULL,
		b TEXT NOT NULL,
		PRIMARY KEY (a, b)
	)`); err != nil {
		t.Fatalf("create table: %v", err)
	}

	outcome, err := Insert(db, "INSERT INTO pairs (a, b) VALUES (?, ?)", "x", "y")
	if err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if outcome != Inserted {
		t.Errorf("expected Inserted, got %v", outcome)
	}

	// Same pair again: a primary-key collision is a skip, not an error.
	outcome, err = Insert(db, "INSERT INTO pairs (a, b) VALUES (?, ?)", "x", "y")
	if err != nil {
		t.Fatalf("duplicate insert: %v", err)
	}
	if outcome != SkippedDuplicate {
		t.Errorf("expected SkippedDuplicate, got %v", outcome)
	}

	n, err := CountRows(db, "pairs")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 row, got %d", n)
	}
}

func TestInsertUniqueColumn(t *testing.T) {
	db := openTestDB(t)

	if _, err := db.Exec(`CREATE TABLE accounts (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE
	)`); err != nil {
		t.Fatalf("create table: %v", err)
	}

	if _, err := Insert(db, "INSERT INTO accounts (id, email) VALUES (?, ?)", "1", "a@b.c"); err != nil {
		t.Fatalf("first insert: %v", err)
	}

	outcome, err := Insert(db, "INSERT INTO accounts (id, email) VALUES (?, ?)", "2", "a@b.c")
	if err != nil {
		t.Fatalf("unique collision should be tolerated: %v", err)
	}
	if outcome != SkippedDuplicate {
		t.Errorf("expected SkippedDuplicate, got %v", outcome)
	}
}

func TestInsertFatalErrors(t *testing.T) {
	db := openTestDB(t)

	if _, err := db.Exec(`CREATE TABLE parents (id TEXT PRIMARY KEY);
		CREATE TABLE children (
			id TEXT PRIMARY KEY,
			parent_id TEXT NOT NULL,
			FOREIGN KEY (parent_id) REFERENCES parents(id)
		)`); err != nil {
		t.Fatalf("create tables: %v", err)
	}

	// Missing table: fatal.
	if _, err := Insert(db, "INSERT INTO nope (id) VALUES (?)", "1"); err == nil {
		t.Error("expected error inserting into missing table")
	}

	// Dangling mandatory FK: fatal, not a duplicate skip.
	if _, err := Insert(db, "INSERT INTO children (id, parent_id) VALUES (?, ?)", "1", "ghost"); err == nil {
		t.Error("expected error for dangling foreign key")
	}

	// NOT NULL violation: fatal.
	if _, err := Insert(db, "INSERT INTO children (id, parent_id) VALUES (?, ?)", "2", nil); err == nil {
		t.Error("expected error for null mandatory column")
	}
}
