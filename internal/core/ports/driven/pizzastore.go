package driven

import (
	"context"

	"github.com/custodia-labs/pizza-hunt/internal/core/domain"
)

// PizzaStore persists pizza documents. Comments and replies are embedded
// in their pizza and saved with it.
type PizzaStore interface {
	// Save inserts or replaces a pizza.
	Save(ctx context.Context, pizza *domain.Pizza) error

	// SaveAll inserts every pizza or none of them.
	SaveAll(ctx context.Context, pizzas []domain.Pizza) error

	// Get retrieves a pizza by ID.
	// Returns domain.ErrPizzaNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.Pizza, error)

	// List returns all pizzas, newest first.
	List(ctx context.Context) ([]domain.Pizza, error)

	// Delete removes a pizza.
	// Returns domain.ErrPizzaNotFound if it does not exist.
	Delete(ctx context.Context, id string) error
}
