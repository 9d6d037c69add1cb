package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/pizza-hunt/internal/core/domain"
	"github.com/custodia-labs/pizza-hunt/internal/core/ports/driven"
)

// Ensure PizzaStore implements the interface.
var _ driven.PizzaStore = (*PizzaStore)(nil)

type pizzaEntry struct {
	pizza domain.Pizza
	order int64
}

// PizzaStore is an in-memory implementation of driven.PizzaStore.
// Documents are deep-copied on the way in and out, like a real database.
type PizzaStore struct {
	mu     sync.RWMutex
	pizzas map[string]pizzaEntry
	next   int64
}

// NewPizzaStore creates a new in-memory pizza store.
func NewPizzaStore() *PizzaStore {
	return &PizzaStore{
		pizzas: make(map[string]pizzaEntry),
	}
}

// Save inserts or replaces a pizza.
func (s *PizzaStore) Save(_ context.Context, pizza *domain.Pizza) error {
	if pizza == nil || pizza.ID == "" {
		return domain.ErrInvalidInput
	}
	cp, err := clonePizza(*pizza)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(cp)
	return nil
}

// SaveAll inserts every pizza or none of them.
func (s *PizzaStore) SaveAll(_ context.Context, pizzas []domain.Pizza) error {
	copies := make([]domain.Pizza, 0, len(pizzas))
	for _, p := range pizzas {
		if p.ID == "" {
			return domain.ErrInvalidInput
		}
		cp, err := clonePizza(p)
		if err != nil {
			return err
		}
		copies = append(copies, cp)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cp := range copies {
		s.put(cp)
	}
	return nil
}

// put stores p, keeping the insertion order of existing entries (caller must hold lock).
func (s *PizzaStore) put(p domain.Pizza) {
	entry, ok := s.pizzas[p.ID]
	if !ok {
		s.next++
		entry.order = s.next
	}
	entry.pizza = p
	s.pizzas[p.ID] = entry
}

// Get retrieves a pizza by ID.
func (s *PizzaStore) Get(_ context.Context, id string) (*domain.Pizza, error) {
	s.mu.RLock()
	entry, ok := s.pizzas[id]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrPizzaNotFound
	}
	cp, err := clonePizza(entry.pizza)
	if err != nil {
		return nil, err
	}
	return &cp, nil
}

// List returns all pizzas, newest first.
func (s *PizzaStore) List(_ context.Context) ([]domain.Pizza, error) {
	s.mu.RLock()
	entries := make([]pizzaEntry, 0, len(s.pizzas))
	for _, e := range s.pizzas {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.pizza.CreatedAt.Equal(b.pizza.CreatedAt) {
			return a.pizza.CreatedAt.After(b.pizza.CreatedAt)
		}
		return a.order > b.order
	})

	pizzas := make([]domain.Pizza, 0, len(entries))
	for _, e := range entries {
		cp, err := clonePizza(e.pizza)
		if err != nil {
			return nil, err
		}
		pizzas = append(pizzas, cp)
	}
	return pizzas, nil
}

// Delete removes a pizza.
func (s *PizzaStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pizzas[id]; !ok {
		return domain.ErrPizzaNotFound
	}
	delete(s.pizzas, id)
	return nil
}

// clonePizza deep-copies a pizza through its JSON form.
func clonePizza(p domain.Pizza) (domain.Pizza, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return domain.Pizza{}, fmt.Errorf("copying pizza: %w", err)
	}
	var cp domain.Pizza
	if err := json.Unmarshal(data, &cp); err != nil {
		return domain.Pizza{}, fmt.Errorf("copying pizza: %w", err)
	}
	return cp, nil
}
