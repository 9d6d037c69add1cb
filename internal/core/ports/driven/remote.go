package driven

import (
	"context"
	"encoding/json"

	"github.com/custodia-labs/pizza-hunt/internal/core/domain"
)

// RemoteAPI is the client's view of the REST API.
//
// Transport failures wrap domain.ErrNetworkFailure. Responses carrying a
// "message" field are returned as *domain.APIError.
type RemoteAPI interface {
	// CreatePizza submits a single create payload.
	CreatePizza(ctx context.Context, payload json.RawMessage) (*domain.Pizza, error)

	// CreatePizzas submits an ordered batch of create payloads in one request.
	CreatePizzas(ctx context.Context, payloads []json.RawMessage) ([]domain.Pizza, error)

	// ListPizzas returns all pizzas.
	ListPizzas(ctx context.Context) ([]domain.Pizza, error)

	// GetPizza returns a single pizza.
	GetPizza(ctx context.Context, id string) (*domain.Pizza, error)

	// DeletePizza deletes a pizza and returns what was deleted.
	DeletePizza(ctx context.Context, id string) (*domain.Pizza, error)
}
