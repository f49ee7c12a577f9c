package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestSQLite(t *testing.T, path string) *SQLite {
	t.Helper()

	s, err := OpenSQLite(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, "theme-storage")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Put(ctx, "theme-storage", []byte(`{"mode":"dark"}`)))
	got, err := s.Get(ctx, "theme-storage")
	require.NoError(t, err)
	require.JSONEq(t, `{"mode":"dark"}`, string(got))

	require.NoError(t, s.Put(ctx, "theme-storage", []byte(`{"mode":"light"}`)))
	got, err = s.Get(ctx, "theme-storage")
	require.NoError(t, err)
	require.JSONEq(t, `{"mode":"light"}`, string(got))
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	buf := []byte("dark")
	require.NoError(t, m.Put(ctx, "k", buf))
	buf[0] = 'x'

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "dark", string(got))
}

func TestSQLiteStore(t *testing.T) {
	exerciseStore(t, openTestSQLite(t, ":memory:"))
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")
	ctx := context.Background()

	first, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, first.Put(ctx, "theme-storage", []byte(`{"mode":"light"}`)))
	require.NoError(t, first.Close())

	second := openTestSQLite(t, path)
	got, err := second.Get(ctx, "theme-storage")
	require.NoError(t, err)
	require.JSONEq(t, `{"mode":"light"}`, string(got))
}
