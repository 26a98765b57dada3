package distribution

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/plantops/shiftlog-backend/internal/domain"
)

// MarkRead acknowledges one log entry for one work center and returns the
// recorded read timestamp. The timestamp always overwrites a previous one,
// even if the row was already read: re-reads are tracked, so two consecutive
// calls strictly advance the stored value.
func (s *Service) MarkRead(ctx context.Context, key domain.DistributionKey) (time.Time, error) {
	if err := key.Validate(); err != nil {
		return time.Time{}, err
	}

	readAt := time.Now().UTC()
	if err := s.dists.MarkRead(ctx, key, readAt); err != nil {
		return time.Time{}, fmt.Errorf("mark read: %w", err)
	}

	s.log.InfoContext(ctx, "log marked read",
		slog.String("log_id", key.LogID.String()),
		slog.String("work_center", key.WorkCenter),
	)

	return readAt, nil
}

// MarkUnread clears the acknowledgment of one log entry for one work center.
func (s *Service) MarkUnread(ctx context.Context, key domain.DistributionKey) error {
	if err := key.Validate(); err != nil {
		return err
	}

	if err := s.dists.MarkUnread(ctx, key); err != nil {
		return fmt.Errorf("mark unread: %w", err)
	}

	s.log.InfoContext(ctx, "log marked unread",
		slog.String("log_id", key.LogID.String()),
		slog.String("work_center", key.WorkCenter),
	)

	return nil
}

// ListForLog returns all acknowledgment rows of one log entry with their
// read state, so callers can show who has and hasn't seen it.
func (s *Service) ListForLog(ctx context.Context, logID uuid.UUID) ([]domain.Distribution, error) {
	if logID == uuid.Nil {
		return nil, domain.NewValidationError("log_id", "required")
	}

	dists, err := s.dists.ListByLog(ctx, logID)
	if err != nil {
		return nil, fmt.Errorf("list distributions: %w", err)
	}

	return dists, nil
}
