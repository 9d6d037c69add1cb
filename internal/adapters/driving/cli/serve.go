package cli

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// servePort overrides the configured listen port.
var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the pizza API server",
	Long: `Serves the pizza REST API and Prometheus metrics until interrupted.
The port comes from --port, then $PORT, then server.port in the config file.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Listen port")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if serveFunc == nil {
		return errors.New("server not configured")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serveFunc(ctx, servePort)
}
