package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/custodia-labs/pizza-hunt/internal/core/domain"
	"github.com/custodia-labs/pizza-hunt/internal/core/ports/driven"
)

// writeStore implements driven.LocalWriteStore on the new_pizza table.
type writeStore struct {
	store *Store
}

var _ driven.LocalWriteStore = (*writeStore)(nil)

// Append durably stores payload and returns its sequence number.
func (s *writeStore) Append(ctx context.Context, payload json.RawMessage) (int64, error) {
	if !json.Valid(payload) {
		return 0, fmt.Errorf("%w: payload is not valid JSON", domain.ErrInvalidInput)
	}

	result, err := s.store.db.ExecContext(ctx,
		"INSERT INTO new_pizza (payload, queued_at) VALUES (?, ?)",
		string(payload), time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("%w: appending record: %w", domain.ErrStorageWrite, err)
	}

	seq, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: reading sequence: %w", domain.ErrStorageWrite, err)
	}
	return seq, nil
}

// DrainAll returns every stored record in insertion order.
func (s *writeStore) DrainAll(ctx context.Context) ([]domain.PendingWriteRecord, error) {
	rows, err := s.store.db.QueryContext(ctx, "SELECT seq, payload, queued_at FROM new_pizza ORDER BY seq ASC")
	if err != nil {
		return nil, fmt.Errorf("%w: querying queue: %w", domain.ErrStorageWrite, err)
	}
	defer rows.Close()

	var records []domain.PendingWriteRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		var rec domain.PendingWriteRecord
		var payload string
		if err := rows.Scan(&rec.Seq, &payload, &rec.QueuedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning record: %w", domain.ErrStorageWrite, err)
		}
		rec.Payload = json.RawMessage(payload)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating queue: %w", domain.ErrStorageWrite, err)
	}
	return records, nil
}

// Clear removes all records. The AUTOINCREMENT counter is kept, so
// sequence numbers are never reused.
func (s *writeStore) Clear(ctx context.Context) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM new_pizza"); err != nil {
		return fmt.Errorf("%w: clearing queue: %w", domain.ErrStorageWrite, err)
	}
	return nil
}

// ClearThrough removes records with seq <= through.
func (s *writeStore) ClearThrough(ctx context.Context, through int64) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM new_pizza WHERE seq <= ?", through); err != nil {
		return fmt.Errorf("%w: clearing queue through %d: %w", domain.ErrStorageWrite, through, err)
	}
	return nil
}
