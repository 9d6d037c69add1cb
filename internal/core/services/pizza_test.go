package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pizza-hunt/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/pizza-hunt/internal/core/domain"
)

func sequentialIDs() IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// failingPizzaStore wraps the memory store and fails writes.
type failingPizzaStore struct {
	*memory.PizzaStore
	err error
}

func (f *failingPizzaStore) Save(context.Context, *domain.Pizza) error    { return f.err }
func (f *failingPizzaStore) SaveAll(context.Context, []domain.Pizza) error { return f.err }

func TestPizzaService_CreateAppliesDefaults(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := NewPizzaService(memory.NewPizzaStore(), sequentialIDs())
	svc.now = fixedClock(now)

	pizza, err := svc.Create(context.Background(), domain.PizzaInput{PizzaName: "  Margherita ", CreatedBy: "ann"})

	require.NoError(t, err)
	assert.Equal(t, "id-1", pizza.ID)
	assert.Equal(t, "Margherita", pizza.PizzaName)
	assert.Equal(t, domain.SizeLarge, pizza.Size)
	assert.Equal(t, now, pizza.CreatedAt)
	assert.NotNil(t, pizza.Toppings)
	assert.NotNil(t, pizza.Comments)
}

func TestPizzaService_CreateBatch(t *testing.T) {
	ctx := context.Background()
	store := memory.NewPizzaStore()
	svc := NewPizzaService(store, sequentialIDs())

	created, err := svc.CreateBatch(ctx, []domain.PizzaInput{
		{PizzaName: "a"}, {PizzaName: "b"}, {PizzaName: "c"},
	})

	require.NoError(t, err)
	require.Len(t, created, 3)
	for i, name := range []string{"a", "b", "c"} {
		assert.Equal(t, name, created[i].PizzaName)
		assert.Equal(t, fmt.Sprintf("id-%d", i+1), created[i].ID)
	}

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestPizzaService_CreateBatchEmpty(t *testing.T) {
	svc := NewPizzaService(&failingPizzaStore{PizzaStore: memory.NewPizzaStore(), err: errors.New("unused")}, sequentialIDs())

	created, err := svc.CreateBatch(context.Background(), nil)

	require.NoError(t, err)
	assert.NotNil(t, created)
	assert.Empty(t, created)
}

func TestPizzaService_StoreFailure(t *testing.T) {
	boom := errors.New("disk gone")
	svc := NewPizzaService(&failingPizzaStore{PizzaStore: memory.NewPizzaStore(), err: boom}, sequentialIDs())

	_, err := svc.Create(context.Background(), domain.PizzaInput{PizzaName: "a"})
	assert.ErrorIs(t, err, boom)

	_, err = svc.CreateBatch(context.Background(), []domain.PizzaInput{{PizzaName: "a"}})
	assert.ErrorIs(t, err, boom)
}

func TestPizzaService_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc := NewPizzaService(memory.NewPizzaStore(), sequentialIDs())

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range []string{"old", "mid", "new"} {
		svc.now = fixedClock(base.Add(time.Duration(i) * time.Hour))
		_, err := svc.Create(ctx, domain.PizzaInput{PizzaName: name})
		require.NoError(t, err)
	}

	pizzas, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, pizzas, 3)
	assert.Equal(t, "new", pizzas[0].PizzaName)
	assert.Equal(t, "old", pizzas[2].PizzaName)
}

func TestPizzaService_ListEmpty(t *testing.T) {
	svc := NewPizzaService(memory.NewPizzaStore(), sequentialIDs())

	pizzas, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, pizzas)
	assert.Empty(t, pizzas)
}

func TestPizzaService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewPizzaService(memory.NewPizzaStore(), sequentialIDs())
	pizza, err := svc.Create(ctx, domain.PizzaInput{PizzaName: "a", CreatedBy: "ann", Toppings: []string{"ham"}})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, pizza.ID, domain.PizzaInput{Size: domain.SizeMedium})
	require.NoError(t, err)
	assert.Equal(t, "a", updated.PizzaName)
	assert.Equal(t, domain.SizeMedium, updated.Size)
	assert.Equal(t, []string{"ham"}, updated.Toppings)

	deleted, err := svc.Delete(ctx, pizza.ID)
	require.NoError(t, err)
	assert.Equal(t, pizza.ID, deleted.ID)

	_, err = svc.Get(ctx, pizza.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPizzaService_MissingPizza(t *testing.T) {
	ctx := context.Background()
	svc := NewPizzaService(memory.NewPizzaStore(), sequentialIDs())

	_, err := svc.Get(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrPizzaNotFound)

	_, err = svc.Update(ctx, "nope", domain.PizzaInput{PizzaName: "x"})
	assert.ErrorIs(t, err, domain.ErrPizzaNotFound)

	_, err = svc.Delete(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrPizzaNotFound)
}
