// Package distribution implements the log distribution and acknowledgment
// engine: fanning a log entry out to its subscribed work centers and flipping
// the resulting rows between unread and read.
package distribution

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/plantops/shiftlog-backend/internal/config"
	"github.com/plantops/shiftlog-backend/internal/domain"
)

type distributionRepo interface {
	CreateForLog(ctx context.Context, logID uuid.UUID, workCenters []string) error
	MarkRead(ctx context.Context, key domain.DistributionKey, readAt time.Time) error
	MarkUnread(ctx context.Context, key domain.DistributionKey) error
	ListByLog(ctx context.Context, logID uuid.UUID) ([]domain.Distribution, error)
}

// Service provides distribution and acknowledgment operations.
// It is stateless per call: safe for concurrent use from many callers.
type Service struct {
	dists    distributionRepo
	log      *slog.Logger
	maxBatch int
}

// NewService creates a new distribution service.
func NewService(
	log *slog.Logger,
	dists distributionRepo,
	cfg config.LogbookConfig,
) *Service {
	return &Service{
		dists:    dists,
		log:      log.With("service", "distribution"),
		maxBatch: cfg.MaxBatchItems,
	}
}
