package kvstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(filepath.Join(dir, "nested"))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = s.Get(ctx, "sipensiun:letters")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "sipensiun:letters", []byte(`[1]`)))
	require.NoError(t, s.Set(ctx, "sipensiun:letters", []byte(`[1,2]`)))

	got, err := s.Get(ctx, "sipensiun:letters")
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(got))

	entries, err := os.ReadDir(filepath.Join(dir, "nested"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")

	require.NoError(t, s.Delete(ctx, "sipensiun:letters"))
	require.NoError(t, s.Delete(ctx, "sipensiun:letters"))
	_, err = s.Get(ctx, "sipensiun:letters")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreKeyCannotEscapeDir(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Set(context.Background(), "../../etc/x", []byte("x")))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileStoreDistinctKeysDoNotCollide(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	keys := []string{"a:b", "a/b", "a_b", `a\b`, "a%3Ab", "a b"}
	for i, k := range keys {
		require.NoError(t, s.Set(ctx, k, []byte{byte('0' + i)}))
	}
	for i, k := range keys {
		got, err := s.Get(ctx, k)
		require.NoError(t, err, k)
		assert.Equal(t, []byte{byte('0' + i)}, got, k)
	}
}
