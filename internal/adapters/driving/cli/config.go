package cli

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetAPIURLCmd = &cobra.Command{
	Use:   "set-api-url [url]",
	Short: "Set the pizza API base URL",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSetAPIURL,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetAPIURLCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	s := settingsService.Get()
	cmd.Println("Server:")
	cmd.Printf("  Port:        %d\n", s.Server.Port)
	cmd.Printf("  Data dir:    %s\n", orDefault(s.Server.DataDir))
	cmd.Println("Client:")
	cmd.Printf("  API URL:     %s\n", s.Client.APIURL)
	cmd.Printf("  Data dir:    %s\n", orDefault(s.Client.DataDir))
	cmd.Printf("  Status file: %s\n", orDefault(s.Client.StatusFile))
	cmd.Printf("  Rate limit:  %g req/s\n", s.Client.RatePerSecond)
	cmd.Printf("  Timeout:     %s\n", s.Client.Timeout)
	return nil
}

func runConfigSetAPIURL(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	u, err := url.Parse(args[0])
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid URL: %s", args[0])
	}
	if err := settingsService.SetAPIURL(args[0]); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("API URL set to %s\n", args[0])
	return nil
}

func orDefault(s string) string {
	if s == "" {
		return "(default)"
	}
	return s
}
