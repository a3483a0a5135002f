package tokenstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemory()

	_, err := store.Load(ctx, "auth_token")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Save(ctx, "auth_token", "tok-1"))
	token, err := store.Load(ctx, "auth_token")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	require.NoError(t, store.Clear(ctx, "auth_token", "token", "access_token"))
	_, err = store.Load(ctx, "auth_token")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tokens.json")
	store := NewFile(path)

	_, err := store.Load(ctx, "auth_token")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Save(ctx, "auth_token", "tok-2"))

	// A second store over the same path sees the saved token.
	again := NewFile(path)
	token, err := again.Load(ctx, "auth_token")
	require.NoError(t, err)
	assert.Equal(t, "tok-2", token)

	require.NoError(t, again.Clear(ctx, "auth_token"))
	_, err = store.Load(ctx, "auth_token")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileClearsLegacyKeys(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tokens.json")
	store := NewFile(path)

	require.NoError(t, store.Save(ctx, "token", "legacy"))
	require.NoError(t, store.Save(ctx, "auth_token", "current"))

	require.NoError(t, store.Clear(ctx, "auth_token", "token", "access_token"))

	for _, key := range []string{"auth_token", "token"} {
		_, err := store.Load(ctx, key)
		assert.ErrorIs(t, err, ErrNotFound, "key %s should be cleared", key)
	}
}

func TestFileToleratesCorruptFile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tokens.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := NewFile(path)
	_, err := store.Load(ctx, "auth_token")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Save(ctx, "auth_token", "fresh"))
	token, err := store.Load(ctx, "auth_token")
	require.NoError(t, err)
	assert.Equal(t, "fresh", token)
}

func TestFilePermissions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "tokens.json")
	store := NewFile(path)

	require.NoError(t, store.Save(ctx, "auth_token", "tok"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
