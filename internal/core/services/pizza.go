package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/pizza-hunt/internal/core/domain"
	"github.com/custodia-labs/pizza-hunt/internal/core/ports/driven"
	"github.com/custodia-labs/pizza-hunt/internal/core/ports/driving"
)

// Ensure PizzaService implements the interface.
var _ driving.PizzaService = (*PizzaService)(nil)

// IDFunc generates document identifiers.
type IDFunc func() string

// PizzaService manages pizza documents.
type PizzaService struct {
	store driven.PizzaStore
	newID IDFunc
	now   func() time.Time
}

// NewPizzaService creates a new pizza service.
func NewPizzaService(store driven.PizzaStore, newID IDFunc) *PizzaService {
	return &PizzaService{
		store: store,
		newID: newID,
		now:   time.Now,
	}
}

// List returns all pizzas, newest first.
func (s *PizzaService) List(ctx context.Context) ([]domain.Pizza, error) {
	pizzas, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pizzas: %w", err)
	}
	if pizzas == nil {
		pizzas = []domain.Pizza{}
	}
	return pizzas, nil
}

// Get returns a pizza by ID.
func (s *PizzaService) Get(ctx context.Context, id string) (*domain.Pizza, error) {
	return s.store.Get(ctx, id)
}

// Create creates a single pizza.
func (s *PizzaService) Create(ctx context.Context, in domain.PizzaInput) (*domain.Pizza, error) {
	pizza := domain.NewPizza(s.newID(), in, s.now())
	if err := s.store.Save(ctx, &pizza); err != nil {
		return nil, fmt.Errorf("create pizza: %w", err)
	}
	return &pizza, nil
}

// CreateBatch creates every pizza in order, or none of them.
func (s *PizzaService) CreateBatch(ctx context.Context, in []domain.PizzaInput) ([]domain.Pizza, error) {
	now := s.now()
	pizzas := make([]domain.Pizza, 0, len(in))
	for _, item := range in {
		pizzas = append(pizzas, domain.NewPizza(s.newID(), item, now))
	}
	if len(pizzas) == 0 {
		return pizzas, nil
	}
	if err := s.store.SaveAll(ctx, pizzas); err != nil {
		return nil, fmt.Errorf("create pizzas: %w", err)
	}
	return pizzas, nil
}

// Update applies in to an existing pizza and returns the new version.
func (s *PizzaService) Update(ctx context.Context, id string, in domain.PizzaInput) (*domain.Pizza, error) {
	pizza, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	pizza.Apply(in)
	if err := s.store.Save(ctx, pizza); err != nil {
		return nil, fmt.Errorf("update pizza: %w", err)
	}
	return pizza, nil
}

// Delete removes a pizza and returns what was removed.
func (s *PizzaService) Delete(ctx context.Context, id string) (*domain.Pizza, error) {
	pizza, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete pizza: %w", err)
	}
	return pizza, nil
}
