package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonathan/resume-editor/internal/portable"
	"github.com/jonathan/resume-editor/internal/types"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS saved_resumes (
	slot     SMALLINT PRIMARY KEY DEFAULT 1 CHECK (slot = 1),
	id       UUID NOT NULL,
	document JSONB NOT NULL,
	saved_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// PostgresStore keeps the latest document in a single-row table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool and applies the schema
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Save upserts doc into the slot
func (s *PostgresStore) Save(ctx context.Context, doc types.Document) (Receipt, error) {
	data, err := portable.Marshal(doc)
	if err != nil {
		return Receipt{}, err
	}

	r := newReceipt()
	_, err = s.pool.Exec(ctx,
		`INSERT INTO saved_resumes (slot, id, document, saved_at)
		 VALUES (1, $1, $2, $3)
		 ON CONFLICT (slot) DO UPDATE SET id = $1, document = $2, saved_at = $3`,
		r.ID, data, r.SavedAt,
	)
	if err != nil {
		return Receipt{}, fmt.Errorf("failed to save resume: %w", err)
	}
	return r, nil
}

// Latest returns the saved document
func (s *PostgresStore) Latest(ctx context.Context) (Record, error) {
	var rec Record
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT id, document, saved_at FROM saved_resumes WHERE slot = 1`,
	).Scan(&rec.ID, &data, &rec.SavedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("failed to load saved resume: %w", err)
	}

	doc, err := portable.Unmarshal(data)
	if err != nil {
		return Record{}, &CorruptError{Backend: "postgres", Cause: err}
	}
	rec.Document = doc
	rec.SavedAt = rec.SavedAt.UTC()
	return rec, nil
}

// Close closes the connection pool
func (s *PostgresStore) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}
