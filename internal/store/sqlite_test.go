package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore(t *testing.T) {
	s, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "resume.db"))
	require.NoError(t, err)
	defer s.Close()
	exerciseStore(t, s)
}

func TestSQLiteStore_ReopenKeepsLatest(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "resume.db")

	s, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	r, err := s.Save(ctx, sampleDocument())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer s.Close()
	rec, err := s.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, r.ID, rec.ID)
	assert.Equal(t, sampleDocument(), rec.Document)
}

func TestOpenSQLite_EmptyPath(t *testing.T) {
	_, err := OpenSQLite(context.Background(), "")
	assert.Error(t, err)
}

func TestSQLiteStore_CorruptDocument(t *testing.T) {
	ctx := context.Background()
	s, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "resume.db"))
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Save(ctx, sampleDocument())
	require.NoError(t, err)
	_, err = s.db.ExecContext(ctx, `UPDATE saved_resumes SET document = '{"name":1}' WHERE slot = 1`)
	require.NoError(t, err)

	_, err = s.Latest(ctx)
	var corrupt *CorruptError
	require.ErrorAs(t, err, &corrupt)
	assert.Equal(t, "sqlite", corrupt.Backend)
}
