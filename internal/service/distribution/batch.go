package distribution

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/plantops/shiftlog-backend/internal/domain"
)

// BatchMarkRead acknowledges up to maxBatch (log, work-center) pairs in one
// call. The read timestamp is computed once, before any item is processed,
// and every item that succeeds in this call stores that identical value:
// rows read together are distinguishable from rows read individually.
//
// Items are processed independently in input order. A failed item is recorded
// in the outcome with its 1-based position and does not stop the remaining
// items. Only a batch-level validation failure (empty or oversized batch)
// aborts the whole call; in that case storage is never touched.
func (s *Service) BatchMarkRead(ctx context.Context, keys []domain.DistributionKey) (domain.BatchOutcome, error) {
	if err := s.validateBatch(keys); err != nil {
		return domain.BatchOutcome{}, err
	}

	// One timestamp for the whole batch: the batch-consistency invariant.
	readAt := time.Now().UTC()

	outcome := s.processBatch(ctx, keys, func(ctx context.Context, key domain.DistributionKey) error {
		return s.dists.MarkRead(ctx, key, readAt)
	})

	s.log.InfoContext(ctx, "batch mark read processed",
		slog.Int("total", outcome.TotalCount),
		slog.Int("failed", outcome.FailedCount),
	)

	return outcome, nil
}

// BatchMarkUnread clears the acknowledgment of up to maxBatch pairs in one
// call, with the same batch-level validation and partial-success policy as
// BatchMarkRead.
func (s *Service) BatchMarkUnread(ctx context.Context, keys []domain.DistributionKey) (domain.BatchOutcome, error) {
	if err := s.validateBatch(keys); err != nil {
		return domain.BatchOutcome{}, err
	}

	outcome := s.processBatch(ctx, keys, s.dists.MarkUnread)

	s.log.InfoContext(ctx, "batch mark unread processed",
		slog.Int("total", outcome.TotalCount),
		slog.Int("failed", outcome.FailedCount),
	)

	return outcome, nil
}

// validateBatch enforces the batch-level preconditions. These are the only
// failures that reject the call as a whole.
func (s *Service) validateBatch(keys []domain.DistributionKey) error {
	if len(keys) == 0 {
		return domain.NewValidationError("logs", "batch must be a non-empty array")
	}
	if len(keys) > s.maxBatch {
		return domain.NewValidationError("logs", fmt.Sprintf("maximum %d entries per batch", s.maxBatch))
	}
	return nil
}

// processBatch runs op over every key, accumulating an outcome instead of
// letting any single item unwind the call. When an error shows the backend
// connection itself is gone, the remaining items fail fast with that error
// rather than hammering a dead connection.
func (s *Service) processBatch(ctx context.Context, keys []domain.DistributionKey, op func(context.Context, domain.DistributionKey) error) domain.BatchOutcome {
	outcome := domain.BatchOutcome{TotalCount: len(keys)}

	var fatal error
	for i, key := range keys {
		err := fatal
		if err == nil {
			if err = key.Validate(); err == nil {
				err = op(ctx, key)
			}
			if err != nil && isConnFatal(err) {
				fatal = err
			}
		}

		if err != nil {
			outcome.FailedCount++
			outcome.Errors = append(outcome.Errors, itemMessage(i+1, err))
			continue
		}
		outcome.SuccessCount++
	}

	outcome.Success = outcome.FailedCount == 0
	return outcome
}

// itemMessage renders one per-item failure with its 1-based batch position.
func itemMessage(pos int, err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fmt.Sprintf("log %d: not found", pos)
	case errors.Is(err, domain.ErrValidation):
		return fmt.Sprintf("log %d: invalid input", pos)
	default:
		return fmt.Sprintf("log %d: %v", pos, err)
	}
}

// isConnFatal reports whether the error makes further storage calls
// pointless for this request.
func isConnFatal(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
