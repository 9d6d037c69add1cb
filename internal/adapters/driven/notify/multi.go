package notify

import "github.com/custodia-labs/pizza-hunt/internal/core/ports/driven"

// Ensure Multi implements the interface.
var _ driven.Notifier = Multi(nil)

// Multi forwards every notification to each notifier in order.
type Multi []driven.Notifier

// Flushed forwards to every notifier.
func (m Multi) Flushed(count int) {
	for _, n := range m {
		n.Flushed(count)
	}
}

// Failed forwards to every notifier.
func (m Multi) Failed(err error) {
	for _, n := range m {
		n.Failed(err)
	}
}
