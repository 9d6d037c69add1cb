package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pizza-hunt/internal/core/domain"
)

var pizzaCmd = &cobra.Command{
	Use:   "pizza",
	Short: "Manage pizzas",
	Long:  `Add, list, view, or delete pizzas on the server.`,
}

var pizzaAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a pizza",
	Long: `Submits a new pizza to the server. If the server cannot be reached the
pizza is saved locally and submitted when connectivity returns.`,
	Args: cobra.NoArgs,
	RunE: runPizzaAdd,
}

var pizzaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List pizzas",
	Args:  cobra.NoArgs,
	RunE:  runPizzaList,
}

var pizzaGetCmd = &cobra.Command{
	Use:   "get [pizza-id]",
	Short: "Show a pizza and its comments",
	Args:  cobra.ExactArgs(1),
	RunE:  runPizzaGet,
}

var pizzaDeleteCmd = &cobra.Command{
	Use:   "delete [pizza-id]",
	Short: "Delete a pizza",
	Args:  cobra.ExactArgs(1),
	RunE:  runPizzaDelete,
}

// Flags for pizza add.
var (
	pizzaName     string
	pizzaBy       string
	pizzaSize     string
	pizzaToppings []string
)

func init() {
	pizzaAddCmd.Flags().StringVarP(&pizzaName, "name", "n", "", "Pizza name (required)")
	pizzaAddCmd.Flags().StringVarP(&pizzaBy, "by", "b", "", "Who created the pizza (required)")
	pizzaAddCmd.Flags().StringVarP(&pizzaSize, "size", "s", "", "Size: Personal, Small, Medium, Large, Extra Large")
	pizzaAddCmd.Flags().StringSliceVarP(&pizzaToppings, "topping", "t", nil, "Topping (repeatable)")
	_ = pizzaAddCmd.MarkFlagRequired("name")
	_ = pizzaAddCmd.MarkFlagRequired("by")

	pizzaCmd.AddCommand(pizzaAddCmd)
	pizzaCmd.AddCommand(pizzaListCmd)
	pizzaCmd.AddCommand(pizzaGetCmd)
	pizzaCmd.AddCommand(pizzaDeleteCmd)
	rootCmd.AddCommand(pizzaCmd)
}

func runPizzaAdd(cmd *cobra.Command, _ []string) error {
	if offlineService == nil {
		return errors.New("pizza service not configured")
	}

	in := domain.PizzaInput{
		PizzaName: pizzaName,
		CreatedBy: pizzaBy,
		Size:      domain.PizzaSize(pizzaSize),
		Toppings:  pizzaToppings,
	}

	res, err := offlineService.Submit(context.Background(), in)
	if err != nil {
		return fmt.Errorf("failed to add pizza: %w", err)
	}

	if res.Queued {
		cmd.Printf("Server unreachable. Pizza saved offline (#%d) and will be submitted when you are back online.\n", res.Seq)
		return nil
	}

	cmd.Printf("Pizza created: %s\n", res.Pizza.ID)
	return nil
}

func runPizzaList(cmd *cobra.Command, _ []string) error {
	if offlineService == nil {
		return errors.New("pizza service not configured")
	}

	pizzas, err := offlineService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list pizzas: %w", err)
	}

	if len(pizzas) == 0 {
		cmd.Println("No pizzas found.")
		return nil
	}

	for i := range pizzas {
		p := &pizzas[i]
		cmd.Printf("  %s\n", p.ID)
		cmd.Printf("    Name:     %s (%s)\n", p.PizzaName, p.Size)
		cmd.Printf("    By:       %s\n", p.CreatedBy)
		if len(p.Toppings) > 0 {
			cmd.Printf("    Toppings: %s\n", strings.Join(p.Toppings, ", "))
		}
		cmd.Printf("    Comments: %d\n", len(p.Comments))
		cmd.Println()
	}

	cmd.Printf("Total: %d pizzas\n", len(pizzas))
	return nil
}

func runPizzaGet(cmd *cobra.Command, args []string) error {
	if offlineService == nil {
		return errors.New("pizza service not configured")
	}

	p, err := offlineService.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get pizza: %w", err)
	}

	cmd.Printf("Pizza: %s\n\n", p.ID)
	cmd.Printf("  Name:     %s\n", p.PizzaName)
	cmd.Printf("  Size:     %s\n", p.Size)
	cmd.Printf("  By:       %s\n", p.CreatedBy)
	cmd.Printf("  Created:  %s\n", p.CreatedAt.Format("2006-01-02 15:04:05"))
	if len(p.Toppings) > 0 {
		cmd.Printf("  Toppings: %s\n", strings.Join(p.Toppings, ", "))
	}

	if len(p.Comments) > 0 {
		cmd.Println("\n  Comments:")
		for _, c := range p.Comments {
			cmd.Printf("    [%s] %s: %s\n", c.ID, c.WrittenBy, c.CommentBody)
			for _, r := range c.Replies {
				cmd.Printf("      > %s: %s\n", r.WrittenBy, r.ReplyBody)
			}
		}
	}

	return nil
}

func runPizzaDelete(cmd *cobra.Command, args []string) error {
	if offlineService == nil {
		return errors.New("pizza service not configured")
	}

	p, err := offlineService.Delete(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to delete pizza: %w", err)
	}

	cmd.Printf("Deleted pizza %s (%s)\n", p.ID, p.PizzaName)
	return nil
}
