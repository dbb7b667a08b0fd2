package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveKeepsOriginalFilename(t *testing.T) {
	dir := t.TempDir()
	store, err := NewImageStore(filepath.Join(dir, "uploads"))
	require.NoError(t, err)

	name, err := store.Save(strings.NewReader("image bytes"), "robot.png")
	require.NoError(t, err)
	assert.Equal(t, "robot.png", name)

	data, err := os.ReadFile(filepath.Join(store.Dir(), "robot.png"))
	require.NoError(t, err)
	assert.Equal(t, "image bytes", string(data))
}

func TestSaveLastWriteWins(t *testing.T) {
	store, err := NewImageStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save(strings.NewReader("first"), "robot.png")
	require.NoError(t, err)
	_, err = store.Save(strings.NewReader("second"), "robot.png")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(store.Dir(), "robot.png"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestSaveStripsPathComponents(t *testing.T) {
	store, err := NewImageStore(t.TempDir())
	require.NoError(t, err)

	name, err := store.Save(strings.NewReader("x"), "../../etc/evil.png")
	require.NoError(t, err)
	assert.Equal(t, "evil.png", name)

	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "evil.png", entries[0].Name())
}
