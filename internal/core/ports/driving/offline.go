package driving

import (
	"context"

	"github.com/custodia-labs/pizza-hunt/internal/core/domain"
)

// ReplayEngine drains the local write store through the remote API.
type ReplayEngine interface {
	// Replay submits every queued record as one batch and clears the queue
	// only when the server confirms the whole batch.
	Replay(ctx context.Context) domain.ReplayResult
}

// OfflineService is the client's write path with offline fallback.
type OfflineService interface {
	ReplayEngine

	// Submit creates a pizza live. If the network is unavailable the
	// payload is queued locally instead.
	Submit(ctx context.Context, in domain.PizzaInput) (*SubmitResult, error)

	// Pending returns the queued records in insertion order.
	Pending(ctx context.Context) ([]domain.PendingWriteRecord, error)

	// Discard drops every queued record.
	Discard(ctx context.Context) error

	// List returns the pizzas held by the server.
	List(ctx context.Context) ([]domain.Pizza, error)

	// Get returns one pizza from the server.
	Get(ctx context.Context, id string) (*domain.Pizza, error)

	// Delete removes a pizza on the server and returns it.
	Delete(ctx context.Context, id string) (*domain.Pizza, error)
}

// SubmitResult describes where a submitted write ended up.
type SubmitResult struct {
	// Pizza is the created document when the write went through live.
	Pizza *domain.Pizza

	// Queued is true when the write was stored locally for a later replay.
	Queued bool

	// Seq is the local sequence number of a queued write.
	Seq int64
}

// ConnectivityMonitor tracks online/offline transitions and triggers
// replays on the offline -> online edge.
type ConnectivityMonitor interface {
	// Run consumes connectivity signals until ctx is done.
	Run(ctx context.Context) error

	// State returns the current connectivity state.
	State() domain.ConnectivityState
}
