// Command pizzahunt serves the pizza API and submits pizzas to it,
// saving them locally while the API is unreachable.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/custodia-labs/pizza-hunt/internal/adapters/driven/config/file"
	"github.com/custodia-labs/pizza-hunt/internal/adapters/driven/connectivity/statusfile"
	"github.com/custodia-labs/pizza-hunt/internal/adapters/driven/notify"
	"github.com/custodia-labs/pizza-hunt/internal/adapters/driven/remote"
	"github.com/custodia-labs/pizza-hunt/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/pizza-hunt/internal/adapters/driving/api"
	"github.com/custodia-labs/pizza-hunt/internal/adapters/driving/cli"
	"github.com/custodia-labs/pizza-hunt/internal/core/domain"
	"github.com/custodia-labs/pizza-hunt/internal/core/ports/driven"
	"github.com/custodia-labs/pizza-hunt/internal/core/services"
	"github.com/custodia-labs/pizza-hunt/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore, os.Getenv)
	settings := settingsService.Get()

	appDir, err := appDirectory()
	if err != nil {
		return err
	}
	clientDataDir := settings.Client.DataDir
	if clientDataDir == "" {
		clientDataDir = filepath.Join(appDir, "client")
	}
	statusPath := settings.Client.StatusFile
	if statusPath == "" {
		statusPath = filepath.Join(appDir, "network.status")
	}

	// Client metrics and notifications
	clientRegistry := prometheus.NewRegistry()
	replayMetrics, err := notify.NewMetrics(clientRegistry)
	if err != nil {
		return fmt.Errorf("registering client metrics: %w", err)
	}
	notifier := notify.Multi{notify.NewTerminal(os.Stdout, os.Stderr), replayMetrics}

	// Local write store. Without it live writes still work.
	var queue driven.LocalWriteStore
	clientStore, err := sqlite.NewStore(clientDataDir)
	if err != nil {
		logger.Warn("Local storage unavailable, offline saving disabled: %v", err)
	} else {
		defer clientStore.Close()
		queue = clientStore.WriteStore()
	}

	remoteAPI := remote.NewClient(
		settings.Client.APIURL,
		settings.Client.Timeout,
		remote.WithRateLimit(settings.Client.RatePerSecond),
	)
	offline := services.NewOfflineService(queue, remoteAPI, notifier)

	source := statusfile.New(statusPath)
	monitor := services.NewConnectivityMonitor(source, offline)

	cli.Configure(cli.Dependencies{
		Offline:  offline,
		Monitor:  monitor,
		Settings: settingsService,
		Serve: func(ctx context.Context, port int) error {
			if port == 0 {
				port = settings.Server.Port
			}
			return serve(ctx, settings.Server.DataDir, port)
		},
		SetConnectivity: func(state domain.ConnectivityState) error {
			return statusfile.Write(statusPath, state)
		},
		Connectivity: source.Current,
		Metrics:      promhttp.HandlerFor(clientRegistry, promhttp.HandlerOpts{}),
	})

	return cli.Execute()
}

// serve opens the server document store and runs the HTTP API.
func serve(ctx context.Context, dataDir string, port int) error {
	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return err
	}
	defer store.Close()
	logger.Info("Server database: %s", store.Path())

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	pizzas := services.NewPizzaService(store.PizzaStore(), uuid.NewString)
	comments := services.NewCommentService(store.PizzaStore(), uuid.NewString)
	server, err := api.NewServer(pizzas, comments, registry)
	if err != nil {
		return err
	}

	fmt.Printf("Pizza API listening on :%d\n", port)
	return server.Run(ctx, fmt.Sprintf(":%d", port))
}

func appDirectory() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".pizzahunt"), nil
}
