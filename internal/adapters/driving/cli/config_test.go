package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigShow(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Port:        3002")
	assert.Contains(t, out, "http://localhost:3002")
	assert.Contains(t, out, "(default)")
}

func TestConfigSetAPIURL(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "config", "set-api-url", "https://pizza.example")

	require.NoError(t, err)
	assert.Contains(t, out, "API URL set to https://pizza.example")
	assert.Equal(t, "https://pizza.example", ts.settings.setURL)
}

func TestConfigSetAPIURL_Invalid(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "config", "set-api-url", "not a url")

	assert.ErrorContains(t, err, "invalid URL")
	assert.Empty(t, ts.settings.setURL)
}
