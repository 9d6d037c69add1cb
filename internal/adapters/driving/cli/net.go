package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pizza-hunt/internal/core/domain"
)

var netCmd = &cobra.Command{
	Use:   "net",
	Short: "Report or change the connectivity signal",
	Long: `Reads or writes the connectivity status file watched by "pizzahunt watch".
Network hooks (for example a NetworkManager dispatcher script) call
"pizzahunt net online" and "pizzahunt net offline".`,
}

var netStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the current connectivity signal",
	Args:  cobra.NoArgs,
	RunE:  runNetStatus,
}

var netOnlineCmd = &cobra.Command{
	Use:   "online",
	Short: "Signal that the network is available",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runNetSet(cmd, domain.StateOnline)
	},
}

var netOfflineCmd = &cobra.Command{
	Use:   "offline",
	Short: "Signal that the network is unavailable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runNetSet(cmd, domain.StateOffline)
	},
}

func init() {
	netCmd.AddCommand(netStatusCmd)
	netCmd.AddCommand(netOnlineCmd)
	netCmd.AddCommand(netOfflineCmd)
	rootCmd.AddCommand(netCmd)
}

func runNetStatus(cmd *cobra.Command, _ []string) error {
	if connectivity == nil {
		return errors.New("connectivity source not configured")
	}
	cmd.Println(connectivity())
	return nil
}

func runNetSet(cmd *cobra.Command, state domain.ConnectivityState) error {
	if setConnectivity == nil {
		return errors.New("connectivity source not configured")
	}
	if err := setConnectivity(state); err != nil {
		return fmt.Errorf("failed to signal %s: %w", state, err)
	}
	cmd.Printf("Connectivity set to %s.\n", state)
	return nil
}
