package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-editor/internal/portable"
	"github.com/jonathan/resume-editor/internal/types"
	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS saved_resumes (
	slot     INTEGER PRIMARY KEY CHECK (slot = 1),
	id       TEXT NOT NULL,
	document TEXT NOT NULL,
	saved_at TEXT NOT NULL
)`

// SQLiteStore keeps the latest document in a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Save upserts doc into the slot.
func (s *SQLiteStore) Save(ctx context.Context, doc types.Document) (Receipt, error) {
	data, err := portable.Marshal(doc)
	if err != nil {
		return Receipt{}, err
	}

	r := newReceipt()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO saved_resumes (slot, id, document, saved_at)
		 VALUES (1, ?, ?, ?)
		 ON CONFLICT (slot) DO UPDATE SET id = excluded.id, document = excluded.document, saved_at = excluded.saved_at`,
		r.ID.String(), string(data), r.SavedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Receipt{}, fmt.Errorf("failed to save resume: %w", err)
	}
	return r, nil
}

// Latest returns the saved document.
func (s *SQLiteStore) Latest(ctx context.Context) (Record, error) {
	var id, data, savedAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, document, saved_at FROM saved_resumes WHERE slot = 1`,
	).Scan(&id, &data, &savedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("failed to load saved resume: %w", err)
	}

	var rec Record
	if rec.ID, err = uuid.Parse(id); err != nil {
		return Record{}, fmt.Errorf("stored receipt id is invalid: %w", err)
	}
	if rec.SavedAt, err = time.Parse(time.RFC3339Nano, savedAt); err != nil {
		return Record{}, fmt.Errorf("stored receipt time is invalid: %w", err)
	}
	if rec.Document, err = portable.Unmarshal([]byte(data)); err != nil {
		return Record{}, &CorruptError{Backend: "sqlite", Cause: err}
	}
	return rec, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
