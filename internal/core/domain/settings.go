package domain

import "time"

const (
	defaultServerPort     = 3002
	defaultAPIURL         = "http://localhost:3002"
	defaultRatePerSecond  = 5
	defaultTimeoutSeconds = 10
)

// Settings holds the resolved application settings.
type Settings struct {
	Server ServerSettings
	Client ClientSettings
}

// ServerSettings configures the REST API process.
type ServerSettings struct {
	// Port is the HTTP listen port.
	Port int

	// DataDir holds the document database. Empty means the default location.
	DataDir string
}

// ClientSettings configures the offline-first client.
type ClientSettings struct {
	// APIURL is the base URL of the remote API.
	APIURL string

	// DataDir holds the local write store. Empty means the default location.
	DataDir string

	// StatusFile is watched for connectivity signals.
	StatusFile string

	// RatePerSecond throttles outgoing requests. Zero disables throttling.
	RatePerSecond float64

	// Timeout bounds a single HTTP request at the transport layer.
	Timeout time.Duration
}

// DefaultSettings returns settings with sensible defaults.
func DefaultSettings() Settings {
	return Settings{
		Server: ServerSettings{
			Port: defaultServerPort,
		},
		Client: ClientSettings{
			APIURL:        defaultAPIURL,
			RatePerSecond: defaultRatePerSecond,
			Timeout:       defaultTimeoutSeconds * time.Second,
		},
	}
}
