package driven

import (
	"context"

	"github.com/custodia-labs/pizza-hunt/internal/core/domain"
)

// ConnectivitySource delivers online/offline signals from the environment.
// Signals are pushed by the environment; implementations must not poll.
type ConnectivitySource interface {
	// Current reads the environment's connectivity signal now.
	Current() domain.ConnectivityState

	// Subscribe returns a channel of signals. The channel is closed once
	// ctx is done or the source stops. Repeated signals for the same state
	// may be delivered; consumers deduplicate.
	Subscribe(ctx context.Context) (<-chan domain.ConnectivityState, error)
}
