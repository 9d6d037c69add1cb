// Package cli implements the pizzahunt command line.
package cli

import (
	"context"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pizza-hunt/internal/core/domain"
	"github.com/custodia-labs/pizza-hunt/internal/core/ports/driving"
	"github.com/custodia-labs/pizza-hunt/internal/logger"
)

// version is set at build time with -ldflags.
var version = "dev"

// verbose enables debug logging for every command.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "pizzahunt",
	Short: "Track pizzas, online or off",
	Long: `pizzahunt serves the pizza API and submits pizzas to it.

When the API cannot be reached, new pizzas are saved locally and submitted
automatically once connectivity returns (see "pizzahunt watch").`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Dependencies holds the services the commands run against.
type Dependencies struct {
	// Offline is the client write path and server browser.
	Offline driving.OfflineService

	// Monitor watches connectivity and replays queued writes.
	Monitor driving.ConnectivityMonitor

	// Settings resolves configuration.
	Settings driving.SettingsService

	// Serve runs the HTTP API until ctx is cancelled. A zero port uses the
	// configured one.
	Serve func(ctx context.Context, port int) error

	// SetConnectivity publishes a connectivity signal for running monitors.
	SetConnectivity func(state domain.ConnectivityState) error

	// Connectivity reports the current connectivity signal.
	Connectivity func() domain.ConnectivityState

	// Metrics exposes client metrics while watching.
	Metrics http.Handler
}

// Service handles configured by main.
var (
	offlineService  driving.OfflineService
	monitor         driving.ConnectivityMonitor
	settingsService driving.SettingsService
	serveFunc       func(ctx context.Context, port int) error
	setConnectivity func(state domain.ConnectivityState) error
	connectivity    func() domain.ConnectivityState
	metricsHandler  http.Handler
)

// Configure installs the services used by the commands.
func Configure(deps Dependencies) {
	offlineService = deps.Offline
	monitor = deps.Monitor
	settingsService = deps.Settings
	serveFunc = deps.Serve
	setConnectivity = deps.SetConnectivity
	connectivity = deps.Connectivity
	metricsHandler = deps.Metrics
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
