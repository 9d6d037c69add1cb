package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// PendingWriteRecord is a create payload that could not be delivered live
// and is waiting in the local write store.
type PendingWriteRecord struct {
	// Seq is the auto-assigned local sequence number. It only grows.
	Seq int64

	// Payload is the exact create-request body of the original write.
	Payload json.RawMessage

	// QueuedAt is when the record was appended.
	QueuedAt time.Time
}

// ConnectivityState is the process-wide online/offline state.
type ConnectivityState int

// Connectivity states.
const (
	StateOffline ConnectivityState = iota
	StateOnline
)

// String returns the string representation.
func (s ConnectivityState) String() string {
	switch s {
	case StateOnline:
		return "online"
	case StateOffline:
		return "offline"
	default:
		return fmt.Sprintf("ConnectivityState(%d)", int(s))
	}
}

// ParseConnectivityState parses "online" or "offline".
func ParseConnectivityState(s string) (ConnectivityState, error) {
	switch s {
	case "online":
		return StateOnline, nil
	case "offline":
		return StateOffline, nil
	default:
		return StateOffline, fmt.Errorf("%w: connectivity state %q", ErrInvalidInput, s)
	}
}

// Transition is the edge produced by applying a signal to a state.
type Transition int

// Transitions between connectivity states.
const (
	// TransitionNone means the signal matched the current state.
	TransitionNone Transition = iota

	// TransitionWentOnline is the offline -> online edge. It is the only
	// edge that triggers a replay.
	TransitionWentOnline

	// TransitionWentOffline is the online -> offline edge.
	TransitionWentOffline
)

// String returns the string representation.
func (t Transition) String() string {
	switch t {
	case TransitionWentOnline:
		return "offline->online"
	case TransitionWentOffline:
		return "online->offline"
	default:
		return "none"
	}
}

// Apply returns the state after receiving signal and the edge taken.
func (s ConnectivityState) Apply(signal ConnectivityState) (ConnectivityState, Transition) {
	switch {
	case s == StateOffline && signal == StateOnline:
		return StateOnline, TransitionWentOnline
	case s == StateOnline && signal == StateOffline:
		return StateOffline, TransitionWentOffline
	default:
		return s, TransitionNone
	}
}

// ReplayOutcome enumerates the results of a replay.
type ReplayOutcome int

// Replay outcomes.
const (
	// ReplayNoOp means the queue was empty and no request was sent.
	ReplayNoOp ReplayOutcome = iota

	// ReplayFlushed means the batch was accepted and the queue cleared.
	ReplayFlushed

	// ReplayFailed means the batch was rejected or never delivered.
	// The queue is left untouched.
	ReplayFailed
)

// String returns the string representation.
func (o ReplayOutcome) String() string {
	switch o {
	case ReplayNoOp:
		return "noop"
	case ReplayFlushed:
		return "flushed"
	case ReplayFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ReplayResult is the outcome of one replay.
type ReplayResult struct {
	Outcome ReplayOutcome

	// Count is the number of records flushed. Zero unless Outcome is ReplayFlushed.
	Count int

	// Err is the failure reason. Nil unless Outcome is ReplayFailed.
	Err error
}

// NoOpResult reports an empty queue.
func NoOpResult() ReplayResult {
	return ReplayResult{Outcome: ReplayNoOp}
}

// FlushedResult reports count records delivered and cleared.
func FlushedResult(count int) ReplayResult {
	return ReplayResult{Outcome: ReplayFlushed, Count: count}
}

// FailedResult reports a failed replay.
func FailedResult(err error) ReplayResult {
	return ReplayResult{Outcome: ReplayFailed, Err: err}
}

// String returns a short human-readable summary.
func (r ReplayResult) String() string {
	switch r.Outcome {
	case ReplayFlushed:
		return fmt.Sprintf("flushed %d", r.Count)
	case ReplayFailed:
		return fmt.Sprintf("failed: %v", r.Err)
	default:
		return r.Outcome.String()
	}
}
