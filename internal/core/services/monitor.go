package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/pizza-hunt/internal/core/domain"
	"github.com/custodia-labs/pizza-hunt/internal/core/ports/driven"
	"github.com/custodia-labs/pizza-hunt/internal/core/ports/driving"
	"github.com/custodia-labs/pizza-hunt/internal/logger"
)

// Ensure ConnectivityMonitor implements the interface.
var _ driving.ConnectivityMonitor = (*ConnectivityMonitor)(nil)

// ConnectivityMonitor runs the online/offline state machine.
//
// Signals are handled one at a time on the Run goroutine, so replays never
// overlap. Only the offline -> online edge replays.
type ConnectivityMonitor struct {
	source driven.ConnectivitySource
	engine driving.ReplayEngine

	mu    sync.RWMutex
	state domain.ConnectivityState
}

// NewConnectivityMonitor creates a monitor. The state is offline until Run
// reads the environment.
func NewConnectivityMonitor(source driven.ConnectivitySource, engine driving.ReplayEngine) *ConnectivityMonitor {
	return &ConnectivityMonitor{
		source: source,
		engine: engine,
		state:  domain.StateOffline,
	}
}

// State returns the current connectivity state.
func (m *ConnectivityMonitor) State() domain.ConnectivityState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Run consumes connectivity signals until ctx is done or the source closes.
// If the environment is online at start, one replay runs immediately to
// flush records left over from an earlier session.
func (m *ConnectivityMonitor) Run(ctx context.Context) error {
	// Subscribe before reading the initial state so no edge is missed.
	signals, err := m.source.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("subscribe to connectivity: %w", err)
	}

	initial := m.source.Current()
	m.setState(initial)
	logger.Info("Connectivity at start: %s", initial)
	if initial == domain.StateOnline {
		m.replay(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case signal, ok := <-signals:
			if !ok {
				return nil
			}
			m.handle(ctx, signal)
		}
	}
}

// handle applies one signal and returns the edge taken.
func (m *ConnectivityMonitor) handle(ctx context.Context, signal domain.ConnectivityState) domain.Transition {
	m.mu.Lock()
	next, transition := m.state.Apply(signal)
	m.state = next
	m.mu.Unlock()

	switch transition {
	case domain.TransitionWentOnline:
		logger.Info("Connectivity restored")
		m.replay(ctx)
	case domain.TransitionWentOffline:
		logger.Info("Connectivity lost")
	case domain.TransitionNone:
		logger.Debug("Connectivity unchanged: %s", next)
	}
	return transition
}

func (m *ConnectivityMonitor) setState(s domain.ConnectivityState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = s
}

func (m *ConnectivityMonitor) replay(ctx context.Context) {
	result := m.engine.Replay(ctx)
	logger.Debug("Replay result: %s", result)
}
