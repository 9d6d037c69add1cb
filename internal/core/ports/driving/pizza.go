package driving

import (
	"context"

	"github.com/custodia-labs/pizza-hunt/internal/core/domain"
)

// PizzaService manages pizza documents on the server.
type PizzaService interface {
	// List returns all pizzas, newest first.
	List(ctx context.Context) ([]domain.Pizza, error)

	// Get returns a pizza by ID.
	Get(ctx context.Context, id string) (*domain.Pizza, error)

	// Create creates a single pizza.
	Create(ctx context.Context, in domain.PizzaInput) (*domain.Pizza, error)

	// CreateBatch creates every pizza in order, or none of them.
	CreateBatch(ctx context.Context, in []domain.PizzaInput) ([]domain.Pizza, error)

	// Update applies in to an existing pizza and returns the new version.
	Update(ctx context.Context, id string, in domain.PizzaInput) (*domain.Pizza, error)

	// Delete removes a pizza and returns what was removed.
	Delete(ctx context.Context, id string) (*domain.Pizza, error)
}

// CommentService manages comments and replies on pizzas.
type CommentService interface {
	// AddComment adds a comment to a pizza and returns the pizza.
	AddComment(ctx context.Context, pizzaID string, in domain.CommentInput) (*domain.Pizza, error)

	// RemoveComment deletes a comment and returns the pizza.
	RemoveComment(ctx context.Context, pizzaID, commentID string) (*domain.Pizza, error)

	// AddReply adds a reply to a comment and returns the comment.
	AddReply(ctx context.Context, pizzaID, commentID string, in domain.ReplyInput) (*domain.Comment, error)

	// RemoveReply deletes a reply and returns the comment.
	RemoveReply(ctx context.Context, pizzaID, commentID, replyID string) (*domain.Comment, error)
}
