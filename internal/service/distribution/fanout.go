package distribution

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/plantops/shiftlog-backend/internal/domain"
)

// CreateDistributions materializes one unread acknowledgment row per work
// center for a freshly persisted log entry. An empty work-center list means
// the entry's category is not configured for distribution; that is a no-op,
// not an error. The underlying insert is all-or-nothing: a failure on any
// row leaves no rows behind for the log.
//
// Called by the entry-authoring flow, inside its transaction.
func (s *Service) CreateDistributions(ctx context.Context, logID uuid.UUID, workCenters []string) error {
	if logID == uuid.Nil {
		return domain.NewValidationError("log_id", "required")
	}
	if len(workCenters) == 0 {
		return nil
	}

	for _, wc := range workCenters {
		if wc == "" {
			return domain.NewValidationError("work_centers", "must not contain empty codes")
		}
	}

	if err := s.dists.CreateForLog(ctx, logID, workCenters); err != nil {
		return fmt.Errorf("create distributions: %w", err)
	}

	s.log.InfoContext(ctx, "distributions created",
		slog.String("log_id", logID.String()),
		slog.Int("work_centers", len(workCenters)),
	)

	return nil
}
