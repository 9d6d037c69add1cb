package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pizza-hunt/internal/logger"
)

// watchMetricsAddr serves client metrics while watching when set.
var watchMetricsAddr string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Submit saved pizzas whenever connectivity returns",
	Long: `Watches the connectivity signal and submits pizzas saved while offline
each time the network comes back. If already online at start, saved pizzas
are submitted immediately. Runs until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchMetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9102)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if monitor == nil {
		return errors.New("connectivity monitor not configured")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if watchMetricsAddr != "" && metricsHandler != nil {
		shutdown, err := serveMetrics(watchMetricsAddr)
		if err != nil {
			return err
		}
		defer shutdown()
	}

	cmd.Println("Watching connectivity. Press Ctrl+C to stop.")
	if err := monitor.Run(ctx); err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}
	cmd.Printf("Stopped (last state: %s).\n", monitor.State())
	return nil
}

// serveMetrics exposes metricsHandler on addr and returns a shutdown func.
func serveMetrics(addr string) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", metricsHandler)
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("Metrics server stopped: %v", err)
		}
	}()
	logger.Info("Serving metrics on %s", ln.Addr())

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
