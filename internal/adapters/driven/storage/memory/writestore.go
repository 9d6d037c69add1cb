package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/custodia-labs/pizza-hunt/internal/core/domain"
	"github.com/custodia-labs/pizza-hunt/internal/core/ports/driven"
)

// Ensure WriteStore implements the interface.
var _ driven.LocalWriteStore = (*WriteStore)(nil)

// WriteStore is an in-memory implementation of driven.LocalWriteStore.
// It is not durable and is meant for tests and ephemeral sessions.
type WriteStore struct {
	mu      sync.Mutex
	records []domain.PendingWriteRecord
	seq     int64
}

// NewWriteStore creates a new in-memory write store.
func NewWriteStore() *WriteStore {
	return &WriteStore{}
}

// Append stores payload and returns its sequence number.
func (s *WriteStore) Append(_ context.Context, payload json.RawMessage) (int64, error) {
	if !json.Valid(payload) {
		return 0, fmt.Errorf("%w: payload is not valid JSON", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.records = append(s.records, domain.PendingWriteRecord{
		Seq:      s.seq,
		Payload:  append(json.RawMessage(nil), payload...),
		QueuedAt: time.Now().UTC(),
	})
	return s.seq, nil
}

// DrainAll returns a copy of every record in insertion order.
func (s *WriteStore) DrainAll(_ context.Context) ([]domain.PendingWriteRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.PendingWriteRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Clear removes all records. The sequence counter is not reset.
func (s *WriteStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	return nil
}

// ClearThrough removes records with a sequence number up to and including through.
func (s *WriteStore) ClearThrough(_ context.Context, through int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.records[:0]
	for _, r := range s.records {
		if r.Seq > through {
			kept = append(kept, r)
		}
	}
	s.records = kept
	return nil
}

// Len returns the number of queued records.
func (s *WriteStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
