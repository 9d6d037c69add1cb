package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/custodia-labs/pizza-hunt/internal/core/domain"
	"github.com/custodia-labs/pizza-hunt/internal/core/ports/driven"
	"github.com/custodia-labs/pizza-hunt/internal/core/ports/driving"
	"github.com/custodia-labs/pizza-hunt/internal/logger"
)

// Ensure OfflineService implements the interface.
var _ driving.OfflineService = (*OfflineService)(nil)

// OfflineService sends writes to the remote API and falls back to the
// local write store when the network is unavailable.
type OfflineService struct {
	queue    driven.LocalWriteStore
	remote   driven.RemoteAPI
	notifier driven.Notifier

	// replayMu serialises replays so one batch is in flight at a time.
	replayMu sync.Mutex
}

// NewOfflineService creates the offline write service.
// The queue may be nil when local storage could not be opened; writes then
// only succeed while online.
func NewOfflineService(queue driven.LocalWriteStore, remote driven.RemoteAPI, notifier driven.Notifier) *OfflineService {
	return &OfflineService{
		queue:    queue,
		remote:   remote,
		notifier: notifier,
	}
}

// Submit creates a pizza live, queueing it locally on network failure.
func (s *OfflineService) Submit(ctx context.Context, in domain.PizzaInput) (*driving.SubmitResult, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding pizza: %w", domain.ErrInvalidInput, err)
	}

	pizza, err := s.remote.CreatePizza(ctx, payload)
	if err == nil {
		return &driving.SubmitResult{Pizza: pizza}, nil
	}
	if !errors.Is(err, domain.ErrNetworkFailure) {
		return nil, err
	}

	logger.Info("Live write failed, queueing locally: %v", err)
	if s.queue == nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
	}

	seq, appendErr := s.queue.Append(ctx, payload)
	if appendErr != nil {
		logger.Error("Pizza lost: could not queue after network failure: %v", appendErr)
		return nil, appendErr
	}

	logger.Debug("Queued record %d", seq)
	return &driving.SubmitResult{Queued: true, Seq: seq}, nil
}

// Pending returns the queued records in insertion order.
func (s *OfflineService) Pending(ctx context.Context) ([]domain.PendingWriteRecord, error) {
	if s.queue == nil {
		return nil, domain.ErrStorageUnavailable
	}
	return s.queue.DrainAll(ctx)
}

// Discard drops every queued record.
func (s *OfflineService) Discard(ctx context.Context) error {
	if s.queue == nil {
		return domain.ErrStorageUnavailable
	}
	return s.queue.Clear(ctx)
}

// List returns the pizzas held by the server.
func (s *OfflineService) List(ctx context.Context) ([]domain.Pizza, error) {
	return s.remote.ListPizzas(ctx)
}

// Get returns one pizza from the server.
func (s *OfflineService) Get(ctx context.Context, id string) (*domain.Pizza, error) {
	return s.remote.GetPizza(ctx, id)
}

// Delete removes a pizza on the server and returns it.
func (s *OfflineService) Delete(ctx context.Context, id string) (*domain.Pizza, error) {
	return s.remote.DeletePizza(ctx, id)
}

// Replay drains the queue through the remote API as a single batch.
//
// The queue is cleared only after the server accepts the whole batch.
// Any failure leaves every record in place for the next replay; nothing
// is retried within one call.
func (s *OfflineService) Replay(ctx context.Context) domain.ReplayResult {
	s.replayMu.Lock()
	defer s.replayMu.Unlock()

	logger.Section("Replay")

	if s.queue == nil {
		return s.fail(domain.ErrStorageUnavailable)
	}

	// 1. Read everything without removing it
	records, err := s.queue.DrainAll(ctx)
	if err != nil {
		return s.fail(err)
	}
	if len(records) == 0 {
		logger.Debug("Queue empty, nothing to replay")
		return domain.NoOpResult()
	}

	// 2. Submit as one ordered batch
	payloads := make([]json.RawMessage, len(records))
	for i, r := range records {
		payloads[i] = r.Payload
	}
	logger.Info("Replaying %d queued records", len(payloads))

	created, err := s.remote.CreatePizzas(ctx, payloads)
	if err != nil {
		return s.fail(err)
	}

	// 3. A short acknowledgement means the server applied only part of the
	// batch. Keep everything queued rather than guess which records landed.
	if len(created) != len(records) {
		return s.fail(&domain.APIError{
			Message: fmt.Sprintf("server acknowledged %d of %d records", len(created), len(records)),
		})
	}

	// 4. Confirmed: clear what was sent. Records appended while the batch
	// was in flight wait for the next replay.
	if err := s.queue.ClearThrough(ctx, records[len(records)-1].Seq); err != nil {
		return s.fail(err)
	}

	logger.Info("Replay flushed %d records", len(records))
	if s.notifier != nil {
		s.notifier.Flushed(len(records))
	}
	return domain.FlushedResult(len(records))
}

// fail logs and notifies a failed replay.
func (s *OfflineService) fail(err error) domain.ReplayResult {
	logger.Warn("Replay failed: %v", err)
	if s.notifier != nil {
		s.notifier.Failed(err)
	}
	return domain.FailedResult(err)
}
