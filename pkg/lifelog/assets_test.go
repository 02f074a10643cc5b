package lifelog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetStorePersistAndResolve(t *testing.T) {
	store, err := NewAssetStore(t.TempDir(), 10, 100)
	require.NoError(t, err)

	uri, deleted, err := store.Persist("sess 1", []byte("image-bytes"), "image/png", "dhash:ab12;blake2:cd34", 1700000000000)
	require.NoError(t, err)
	assert.Empty(t, deleted)
	assert.True(t, strings.HasPrefix(uri, AssetURIPrefix))
	assert.Contains(t, uri, "sess-1/")
	assert.True(t, strings.HasSuffix(uri, ".png"))

	path, ok := store.ResolveURI(uri)
	require.True(t, ok)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), data)

	_, ok = store.ResolveURI("inline:image/png;hash=abc")
	assert.False(t, ok)
}

func TestAssetStorePersistIsIdempotent(t *testing.T) {
	store, err := NewAssetStore(t.TempDir(), 10, 100)
	require.NoError(t, err)

	uri1, _, err := store.Persist("s1", []byte("same"), "image/jpeg", "blake2:aa", 1000)
	require.NoError(t, err)
	uri2, _, err := store.Persist("s1", []byte("same"), "image/jpeg", "blake2:aa", 1000)
	require.NoError(t, err)
	assert.Equal(t, uri1, uri2)
}

func TestAssetStoreCleanupEvictsOldest(t *testing.T) {
	root := t.TempDir()
	store, err := NewAssetStore(root, 2, 1)
	require.NoError(t, err)

	_, deleted, err := store.Persist("s1", []byte("a"), "image/jpeg", "blake2:aa", 1000)
	require.NoError(t, err)
	assert.Empty(t, deleted)
	_, deleted, err = store.Persist("s1", []byte("b"), "image/jpeg", "blake2:bb", 2000)
	require.NoError(t, err)
	assert.Empty(t, deleted)

	_, deleted, err = store.Persist("s1", []byte("c"), "image/jpeg", "blake2:cc", 3000)
	require.NoError(t, err)
	require.Len(t, deleted, 1)
	assert.Contains(t, deleted[0], "1000-")

	gone, ok := store.ResolveURI(deleted[0])
	require.True(t, ok)
	_, err = os.Stat(gone)
	assert.True(t, os.IsNotExist(err))

	var remaining int
	err = filepath.Walk(root, func(_ string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			remaining++
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, remaining)
}
