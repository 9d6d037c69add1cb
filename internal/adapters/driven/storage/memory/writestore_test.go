package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pizza-hunt/internal/core/domain"
)

func TestNewWriteStore(t *testing.T) {
	store := NewWriteStore()
	require.NotNil(t, store)
	assert.Equal(t, 0, store.Len())
}

func TestWriteStore_DrainAllReturnsInsertionOrder(t *testing.T) {
	ctx := context.Background()

	for _, n := range []int{1, 2, 5, 50} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			store := NewWriteStore()
			want := make([]string, n)
			for i := range want {
				want[i] = fmt.Sprintf(`{"pizzaName":"p%d"}`, i)
				_, err := store.Append(ctx, json.RawMessage(want[i]))
				require.NoError(t, err)
			}

			records, err := store.DrainAll(ctx)
			require.NoError(t, err)
			require.Len(t, records, n)
			for i, rec := range records {
				assert.JSONEq(t, want[i], string(rec.Payload))
				if i > 0 {
					assert.Greater(t, rec.Seq, records[i-1].Seq)
				}
			}
		})
	}
}

func TestWriteStore_DrainAllDoesNotRemove(t *testing.T) {
	store := NewWriteStore()
	ctx := context.Background()

	_, err := store.Append(ctx, json.RawMessage(`{"pizzaName":"a"}`))
	require.NoError(t, err)

	_, err = store.DrainAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())
}

func TestWriteStore_AppendCopiesPayload(t *testing.T) {
	store := NewWriteStore()
	ctx := context.Background()

	payload := json.RawMessage(`{"pizzaName":"a"}`)
	_, err := store.Append(ctx, payload)
	require.NoError(t, err)
	payload[2] = 'X'

	records, err := store.DrainAll(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"pizzaName":"a"}`, string(records[0].Payload))
}

func TestWriteStore_AppendRejectsInvalidJSON(t *testing.T) {
	store := NewWriteStore()

	_, err := store.Append(context.Background(), json.RawMessage("nope"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, store.Len())
}

func TestWriteStore_ClearIsIdempotent(t *testing.T) {
	store := NewWriteStore()
	ctx := context.Background()

	require.NoError(t, store.Clear(ctx))
	_, err := store.Append(ctx, json.RawMessage(`{}`))
	require.NoError(t, err)
	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))

	records, err := store.DrainAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestWriteStore_ClearThroughKeepsLaterRecords(t *testing.T) {
	store := NewWriteStore()
	ctx := context.Background()

	through, err := store.Append(ctx, json.RawMessage(`{"pizzaName":"a"}`))
	require.NoError(t, err)
	later, err := store.Append(ctx, json.RawMessage(`{"pizzaName":"b"}`))
	require.NoError(t, err)

	require.NoError(t, store.ClearThrough(ctx, through))

	records, err := store.DrainAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, later, records[0].Seq)
}

func TestWriteStore_SequenceSurvivesClear(t *testing.T) {
	store := NewWriteStore()
	ctx := context.Background()

	first, err := store.Append(ctx, json.RawMessage(`{}`))
	require.NoError(t, err)
	require.NoError(t, store.Clear(ctx))
	second, err := store.Append(ctx, json.RawMessage(`{}`))
	require.NoError(t, err)

	assert.Greater(t, second, first)
}

func TestWriteStore_ConcurrentAppend(t *testing.T) {
	store := NewWriteStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Append(ctx, json.RawMessage(`{}`))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	records, err := store.DrainAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 20)
	seen := make(map[int64]bool)
	for _, r := range records {
		assert.False(t, seen[r.Seq], "duplicate sequence %d", r.Seq)
		seen[r.Seq] = true
	}
}
