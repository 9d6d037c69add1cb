package driven

import (
	"context"
	"encoding/json"

	"github.com/custodia-labs/pizza-hunt/internal/core/domain"
)

// LocalWriteStore is the client-resident queue of create payloads that
// could not be delivered while offline. Opening the store is the job of the
// adapter constructor and must be idempotent.
type LocalWriteStore interface {
	// Append durably stores payload and returns its sequence number.
	// Failures wrap domain.ErrStorageWrite; data is never dropped silently.
	Append(ctx context.Context, payload json.RawMessage) (int64, error)

	// DrainAll returns every stored record in insertion order without
	// removing any of them.
	DrainAll(ctx context.Context) ([]domain.PendingWriteRecord, error)

	// Clear removes all records. Clearing an empty store succeeds.
	Clear(ctx context.Context) error

	// ClearThrough removes records with a sequence number up to and
	// including seq. Records appended later stay queued.
	ClearThrough(ctx context.Context, seq int64) error
}
