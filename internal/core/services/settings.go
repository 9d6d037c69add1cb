package services

import (
	"strconv"
	"time"

	"github.com/custodia-labs/pizza-hunt/internal/core/domain"
	"github.com/custodia-labs/pizza-hunt/internal/core/ports/driven"
	"github.com/custodia-labs/pizza-hunt/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyServerPort       = "server.port"
	keyServerDataDir    = "server.data_dir"
	keyClientAPIURL     = "client.api_url"
	keyClientDataDir    = "client.data_dir"
	keyClientStatusFile = "client.status_file"
	keyClientRate       = "client.rate_per_second"
	keyClientTimeout    = "client.timeout_seconds"
)

// Environment variables that override the config file.
const (
	envPort    = "PORT"
	envDataDir = "PIZZAHUNT_DATA"
	envAPIURL  = "PIZZAHUNT_API_URL"
)

// SettingsService resolves application settings from the config store.
type SettingsService struct {
	configStore driven.ConfigStore
	getenv      func(string) string
}

// NewSettingsService creates a new settings service.
// getenv is usually os.Getenv; nil disables environment overrides.
func NewSettingsService(configStore driven.ConfigStore, getenv func(string) string) *SettingsService {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	return &SettingsService{
		configStore: configStore,
		getenv:      getenv,
	}
}

// Get retrieves current application settings.
// Environment variables win over the config file, which wins over defaults.
func (s *SettingsService) Get() *domain.Settings {
	settings := domain.DefaultSettings()

	if port := s.configStore.GetInt(keyServerPort); port > 0 {
		settings.Server.Port = port
	}
	settings.Server.DataDir = s.configStore.GetString(keyServerDataDir)

	if url := s.configStore.GetString(keyClientAPIURL); url != "" {
		settings.Client.APIURL = url
	}
	settings.Client.DataDir = s.configStore.GetString(keyClientDataDir)
	settings.Client.StatusFile = s.configStore.GetString(keyClientStatusFile)
	if _, ok := s.configStore.Get(keyClientRate); ok {
		settings.Client.RatePerSecond = s.configStore.GetFloat(keyClientRate)
	}
	if secs := s.configStore.GetInt(keyClientTimeout); secs > 0 {
		settings.Client.Timeout = time.Duration(secs) * time.Second
	}

	// Environment overrides, as used by hosted deployments
	if v := s.getenv(envPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			settings.Server.Port = port
		}
	}
	if v := s.getenv(envDataDir); v != "" {
		settings.Server.DataDir = v
	}
	if v := s.getenv(envAPIURL); v != "" {
		settings.Client.APIURL = v
	}

	return &settings
}

// SetAPIURL persists the remote API base URL.
func (s *SettingsService) SetAPIURL(url string) error {
	return s.configStore.Set(keyClientAPIURL, url)
}
