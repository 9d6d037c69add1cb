package driving

import "github.com/custodia-labs/pizza-hunt/internal/core/domain"

// SettingsService resolves and updates application settings.
type SettingsService interface {
	// Get returns the effective settings.
	Get() *domain.Settings

	// SetAPIURL persists the remote API base URL.
	SetAPIURL(url string) error
}
