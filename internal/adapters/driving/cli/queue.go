package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pizza-hunt/internal/core/domain"
)

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Inspect pizzas saved while offline",
	Long:  `List, submit, or discard pizzas waiting in the local write store.`,
}

var queueListCmd = &cobra.Command{
	Use:   "list",
	Short: "List queued pizzas",
	Args:  cobra.NoArgs,
	RunE:  runQueueList,
}

var queueReplayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Submit queued pizzas now",
	Long:  `Sends every queued pizza to the server as one batch. The queue is cleared only if the server accepts all of them.`,
	Args:  cobra.NoArgs,
	RunE:  runQueueReplay,
}

var queueClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Discard queued pizzas",
	Args:  cobra.NoArgs,
	RunE:  runQueueClear,
}

func init() {
	queueCmd.AddCommand(queueListCmd)
	queueCmd.AddCommand(queueReplayCmd)
	queueCmd.AddCommand(queueClearCmd)
	rootCmd.AddCommand(queueCmd)
}

func runQueueList(cmd *cobra.Command, _ []string) error {
	if offlineService == nil {
		return errors.New("offline service not configured")
	}

	records, err := offlineService.Pending(context.Background())
	if err != nil {
		return fmt.Errorf("failed to read queue: %w", err)
	}

	if len(records) == 0 {
		cmd.Println("Queue is empty.")
		return nil
	}

	for _, r := range records {
		cmd.Printf("  #%d  %s  %s\n", r.Seq, r.QueuedAt.Local().Format("2006-01-02 15:04:05"), r.Payload)
	}
	cmd.Printf("\nTotal: %d queued\n", len(records))
	return nil
}

func runQueueReplay(cmd *cobra.Command, _ []string) error {
	if offlineService == nil {
		return errors.New("offline service not configured")
	}

	result := offlineService.Replay(context.Background())
	switch result.Outcome {
	case domain.ReplayNoOp:
		cmd.Println("Queue is empty. Nothing to submit.")
	case domain.ReplayFlushed:
		cmd.Printf("Submitted %d queued pizzas.\n", result.Count)
	case domain.ReplayFailed:
		return fmt.Errorf("replay failed, queue kept: %w", result.Err)
	}
	return nil
}

func runQueueClear(cmd *cobra.Command, _ []string) error {
	if offlineService == nil {
		return errors.New("offline service not configured")
	}

	if err := offlineService.Discard(context.Background()); err != nil {
		return fmt.Errorf("failed to clear queue: %w", err)
	}

	cmd.Println("Queue cleared.")
	return nil
}
