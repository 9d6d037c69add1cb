package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("not = [valid"), 0600))

	_, err := NewConfigStore(tmpDir)
	assert.Error(t, err)
}

func TestConfigStore_ReadsNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
[server]
port = 8080
data_dir = "/srv/pizza"

[client]
api_url = "http://pizza.local"
rate_per_second = 2.5
timeout_seconds = 3
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 8080, store.GetInt("server.port"))
	assert.Equal(t, "/srv/pizza", store.GetString("server.data_dir"))
	assert.Equal(t, "http://pizza.local", store.GetString("client.api_url"))
	assert.InDelta(t, 2.5, store.GetFloat("client.rate_per_second"), 0.0001)
	assert.InDelta(t, 3.0, store.GetFloat("client.timeout_seconds"), 0.0001)
}

func TestConfigStore_MissingKeys(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get("nope")
	assert.False(t, ok)
	assert.Equal(t, "", store.GetString("nope"))
	assert.Equal(t, 0, store.GetInt("nope"))
	assert.Zero(t, store.GetFloat("nope"))
}

func TestConfigStore_WrongTypes(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("server.port", "not a number"))
	assert.Equal(t, 0, store.GetInt("server.port"))
	assert.Zero(t, store.GetFloat("server.port"))

	require.NoError(t, store.Set("client.api_url", 42))
	assert.Equal(t, "", store.GetString("client.api_url"))
}

func TestConfigStore_SetPersistsAsTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("client.api_url", "http://saved"))
	require.NoError(t, store.Set("server.port", 9000))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[client]")
	assert.Contains(t, string(data), "[server]")

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "http://saved", reloaded.GetString("client.api_url"))
	assert.Equal(t, 9000, reloaded.GetInt("server.port"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("k", "v"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFlattenAndNestMap(t *testing.T) {
	nested := map[string]any{
		"client": map[string]any{"api_url": "u"},
		"top":    "v",
	}

	flat := flattenMap(nested, "")
	assert.Equal(t, map[string]any{"client.api_url": "u", "top": "v"}, flat)
	assert.Equal(t, nested, nestMap(flat))
}
