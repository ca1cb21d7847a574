// Package store persists the most recently saved resume for the gateway service.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-editor/internal/types"
)

// DefaultFilePath is where the file store writes when no DSN is given.
const DefaultFilePath = "saved_resume.json"

// ErrNotFound is returned by Latest when nothing has been saved yet.
var ErrNotFound = errors.New("no saved resume")

// CorruptError reports a stored resume that no longer decodes. The fault is
// in the store, not in the request that read it.
type CorruptError struct {
	Backend string
	Cause   error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("%s store holds an invalid resume: %v", e.Backend, e.Cause)
}

func (e *CorruptError) Unwrap() error {
	return e.Cause
}

// Receipt identifies one save.
type Receipt struct {
	ID      uuid.UUID `json:"id"`
	SavedAt time.Time `json:"saved_at"`
}

// Record is a saved document together with its receipt.
type Record struct {
	Receipt
	Document types.Document `json:"data"`
}

// Store keeps a single slot holding the latest saved document. Each Save
// overwrites the previous one.
type Store interface {
	Save(ctx context.Context, doc types.Document) (Receipt, error)
	Latest(ctx context.Context) (Record, error)
	Close() error
}

// Open selects a backend from dsn:
//
//	""                       file store at DefaultFilePath
//	file://path or a path    file store
//	postgres://, postgresql:// PostgreSQL via pgx
//	sqlite://path            SQLite
func Open(ctx context.Context, dsn string) (Store, error) {
	switch {
	case dsn == "":
		return NewFileStore(DefaultFilePath), nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return ConnectPostgres(ctx, dsn)
	case strings.HasPrefix(dsn, "sqlite://"):
		return OpenSQLite(ctx, strings.TrimPrefix(dsn, "sqlite://"))
	case strings.HasPrefix(dsn, "file://"):
		return NewFileStore(strings.TrimPrefix(dsn, "file://")), nil
	case strings.Contains(dsn, "://"):
		return nil, fmt.Errorf("unsupported store %q", dsn)
	default:
		return NewFileStore(dsn), nil
	}
}

func newReceipt() Receipt {
	return Receipt{ID: uuid.New(), SavedAt: time.Now().UTC()}
}
