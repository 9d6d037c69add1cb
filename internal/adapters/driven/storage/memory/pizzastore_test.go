package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pizza-hunt/internal/core/domain"
)

func newTestPizza(id string, at time.Time) domain.Pizza {
	return domain.NewPizza(id, domain.PizzaInput{PizzaName: id, CreatedBy: "tester"}, at)
}

func TestPizzaStore_SaveAndGet(t *testing.T) {
	store := NewPizzaStore()
	ctx := context.Background()

	p := newTestPizza("p1", time.Now())
	require.NoError(t, store.Save(ctx, &p))

	got, err := store.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", got.PizzaName)
}

func TestPizzaStore_GetReturnsCopy(t *testing.T) {
	store := NewPizzaStore()
	ctx := context.Background()

	p := newTestPizza("p1", time.Now())
	require.NoError(t, store.Save(ctx, &p))

	got, err := store.Get(ctx, "p1")
	require.NoError(t, err)
	got.PizzaName = "changed"
	got.Comments = append(got.Comments, domain.Comment{ID: "c"})

	again, err := store.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", again.PizzaName)
	assert.Empty(t, again.Comments)
}

func TestPizzaStore_GetNotFound(t *testing.T) {
	_, err := NewPizzaStore().Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrPizzaNotFound)
}

func TestPizzaStore_SaveRejectsMissingID(t *testing.T) {
	err := NewPizzaStore().Save(context.Background(), &domain.Pizza{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPizzaStore_ListNewestFirst(t *testing.T) {
	store := NewPizzaStore()
	ctx := context.Background()

	base := time.Now()
	older := newTestPizza("older", base)
	newer := newTestPizza("newer", base.Add(time.Minute))
	require.NoError(t, store.Save(ctx, &older))
	require.NoError(t, store.Save(ctx, &newer))

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "newer", list[0].ID)
	assert.Equal(t, "older", list[1].ID)
}

func TestPizzaStore_ListTieBreaksOnInsertion(t *testing.T) {
	store := NewPizzaStore()
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, store.SaveAll(ctx, []domain.Pizza{newTestPizza("a", now), newTestPizza("b", now)}))

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID)
	assert.Equal(t, "a", list[1].ID)
}

func TestPizzaStore_SaveAllAllOrNothing(t *testing.T) {
	store := NewPizzaStore()
	ctx := context.Background()

	err := store.SaveAll(ctx, []domain.Pizza{newTestPizza("a", time.Now()), {}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestPizzaStore_Delete(t *testing.T) {
	store := NewPizzaStore()
	ctx := context.Background()

	p := newTestPizza("p1", time.Now())
	require.NoError(t, store.Save(ctx, &p))
	require.NoError(t, store.Delete(ctx, "p1"))
	assert.ErrorIs(t, store.Delete(ctx, "p1"), domain.ErrPizzaNotFound)
}
