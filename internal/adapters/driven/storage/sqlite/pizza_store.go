package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/custodia-labs/pizza-hunt/internal/core/domain"
	"github.com/custodia-labs/pizza-hunt/internal/core/ports/driven"
)

// pizzaStore implements driven.PizzaStore.
type pizzaStore struct {
	store *Store
}

var _ driven.PizzaStore = (*pizzaStore)(nil)

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Save inserts or replaces a pizza.
func (s *pizzaStore) Save(ctx context.Context, pizza *domain.Pizza) error {
	if pizza == nil || pizza.ID == "" {
		return domain.ErrInvalidInput
	}
	if err := savePizza(ctx, s.store.db, pizza); err != nil {
		return fmt.Errorf("saving pizza: %w", err)
	}
	return nil
}

// SaveAll inserts every pizza in one transaction.
func (s *pizzaStore) SaveAll(ctx context.Context, pizzas []domain.Pizza) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	for i := range pizzas {
		if pizzas[i].ID == "" {
			return domain.ErrInvalidInput
		}
		if err := savePizza(ctx, tx, &pizzas[i]); err != nil {
			return fmt.Errorf("saving pizza %d of %d: %w", i+1, len(pizzas), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing pizzas: %w", err)
	}
	return nil
}

func savePizza(ctx context.Context, db execer, pizza *domain.Pizza) error {
	doc, err := json.Marshal(pizza)
	if err != nil {
		return fmt.Errorf("marshalling pizza: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO pizzas (id, created_at, doc)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			doc = excluded.doc
	`, pizza.ID, pizza.CreatedAt.UTC(), string(doc))
	return err
}

// Get retrieves a pizza by ID.
func (s *pizzaStore) Get(ctx context.Context, id string) (*domain.Pizza, error) {
	var doc string
	err := s.store.db.QueryRowContext(ctx, "SELECT doc FROM pizzas WHERE id = ?", id).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPizzaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying pizza: %w", err)
	}

	var pizza domain.Pizza
	if err := json.Unmarshal([]byte(doc), &pizza); err != nil {
		return nil, fmt.Errorf("unmarshalling pizza: %w", err)
	}
	return &pizza, nil
}

// List returns all pizzas, newest first.
func (s *pizzaStore) List(ctx context.Context) ([]domain.Pizza, error) {
	rows, err := s.store.db.QueryContext(ctx, "SELECT doc FROM pizzas ORDER BY created_at DESC, rowid DESC")
	if err != nil {
		return nil, fmt.Errorf("querying pizzas: %w", err)
	}
	defer rows.Close()

	pizzas := []domain.Pizza{}
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scanning pizza: %w", err)
		}
		var pizza domain.Pizza
		if err := json.Unmarshal([]byte(doc), &pizza); err != nil {
			return nil, fmt.Errorf("unmarshalling pizza: %w", err)
		}
		pizzas = append(pizzas, pizza)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pizzas: %w", err)
	}
	return pizzas, nil
}

// Delete removes a pizza.
func (s *pizzaStore) Delete(ctx context.Context, id string) error {
	result, err := s.store.db.ExecContext(ctx, "DELETE FROM pizzas WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting pizza: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting pizza: %w", err)
	}
	if n == 0 {
		return domain.ErrPizzaNotFound
	}
	return nil
}
