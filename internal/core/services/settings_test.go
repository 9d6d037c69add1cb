package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pizza-hunt/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/pizza-hunt/internal/core/domain"
)

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore(nil), nil)

	settings := service.Get()

	defaults := domain.DefaultSettings()
	assert.Equal(t, defaults.Server.Port, settings.Server.Port)
	assert.Equal(t, defaults.Client.APIURL, settings.Client.APIURL)
	assert.InDelta(t, defaults.Client.RatePerSecond, settings.Client.RatePerSecond, 0.0001)
	assert.Equal(t, defaults.Client.Timeout, settings.Client.Timeout)
	assert.Empty(t, settings.Client.DataDir)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		"server.port":            int64(8080),
		"server.data_dir":        "/srv/pizza",
		"client.api_url":         "http://pizza.example",
		"client.data_dir":        "/tmp/client",
		"client.status_file":     "/tmp/net.status",
		"client.rate_per_second": 0.5,
		"client.timeout_seconds": int64(3),
	})
	service := NewSettingsService(store, nil)

	settings := service.Get()

	assert.Equal(t, 8080, settings.Server.Port)
	assert.Equal(t, "/srv/pizza", settings.Server.DataDir)
	assert.Equal(t, "http://pizza.example", settings.Client.APIURL)
	assert.Equal(t, "/tmp/client", settings.Client.DataDir)
	assert.Equal(t, "/tmp/net.status", settings.Client.StatusFile)
	assert.InDelta(t, 0.5, settings.Client.RatePerSecond, 0.0001)
	assert.Equal(t, 3*time.Second, settings.Client.Timeout)
}

func TestSettingsService_Get_ZeroRateDisablesThrottle(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{"client.rate_per_second": 0})
	service := NewSettingsService(store, nil)

	assert.Zero(t, service.Get().Client.RatePerSecond)
}

func TestSettingsService_Get_EnvironmentWins(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		"server.port":    int64(8080),
		"client.api_url": "http://from-file",
	})
	env := map[string]string{
		"PORT":              "9090",
		"PIZZAHUNT_DATA":    "/env/data",
		"PIZZAHUNT_API_URL": "http://from-env",
	}
	service := NewSettingsService(store, func(k string) string { return env[k] })

	settings := service.Get()

	assert.Equal(t, 9090, settings.Server.Port)
	assert.Equal(t, "/env/data", settings.Server.DataDir)
	assert.Equal(t, "http://from-env", settings.Client.APIURL)
}

func TestSettingsService_Get_InvalidPortEnvIgnored(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore(nil), func(k string) string {
		if k == "PORT" {
			return "not-a-port"
		}
		return ""
	})

	assert.Equal(t, domain.DefaultSettings().Server.Port, service.Get().Server.Port)
}

func TestSettingsService_SetAPIURL(t *testing.T) {
	store := memory.NewConfigStore(nil)
	service := NewSettingsService(store, nil)

	require.NoError(t, service.SetAPIURL("http://new"))

	assert.Equal(t, "http://new", service.Get().Client.APIURL)
}
