package localstate

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStorage runs the Storage contract against s.
func exerciseStorage(t *testing.T, s Storage) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, KeyToken, "t1"))
	require.NoError(t, s.Set(ctx, KeyID, "7"))
	require.NoError(t, s.Set(ctx, KeyToken, "t2"))

	v, ok, err := s.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "t2", v)

	require.NoError(t, s.Delete(ctx, KeyToken, KeyID, "missing"))
	_, ok, err = s.Get(ctx, KeyID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Delete(ctx))
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	exerciseStorage(t, NewMemoryStore())
}

func TestSQLiteStore(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", dbFilename)
	s, err := OpenSQLite(context.Background(), path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	exerciseStorage(t, s)
	assert.Equal(t, path, s.Path())
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), dbFilename)

	s, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, KeyToken, "persisted"))
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, _, err = s.Get(ctx, KeyToken)
	assert.ErrorIs(t, err, ErrClosed)

	s2, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer func() { _ = s2.Close() }()
	v, ok, err := s2.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "persisted", v)
}
