// Package logbook implements shift-log authoring and retrieval: persisting
// a new entry, fanning it out to the work centers subscribed to its category,
// and serving paginated, filterable listings for polling clients.
package logbook

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/plantops/shiftlog-backend/internal/config"
	"github.com/plantops/shiftlog-backend/internal/domain"
)

type logRepo interface {
	Create(ctx context.Context, entry domain.LogEntry) (domain.LogEntry, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.LogEntry, error)
	List(ctx context.Context, filter domain.LogFilter) ([]domain.LogEntry, error)
	Count(ctx context.Context, filter domain.LogFilter) (int, error)
}

type categoryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Category, error)
	ListTargets(ctx context.Context, categoryID uuid.UUID, plant string) ([]string, error)
}

type distributor interface {
	CreateDistributions(ctx context.Context, logID uuid.UUID, workCenters []string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier receives every created log entry together with its category, so
// an external system can decide whether to send mail. The core never talks
// to a mail transport itself. Implementations must not block.
type Notifier interface {
	LogCreated(ctx context.Context, entry domain.LogEntry, category domain.Category)
}

// Service provides shift-log authoring and retrieval operations.
type Service struct {
	logs       logRepo
	categories categoryRepo
	dists      distributor
	tx         txManager
	notifier   Notifier
	log        *slog.Logger

	defaultPageSize int
	maxPageSize     int
}

// NewService creates a new logbook service. notifier may be nil when no
// notification collaborator is configured.
func NewService(
	log *slog.Logger,
	logs logRepo,
	categories categoryRepo,
	dists distributor,
	tx txManager,
	notifier Notifier,
	cfg config.LogbookConfig,
) *Service {
	return &Service{
		logs:            logs,
		categories:      categories,
		dists:           dists,
		tx:              tx,
		notifier:        notifier,
		log:             log.With("service", "logbook"),
		defaultPageSize: cfg.DefaultPageSize,
		maxPageSize:     cfg.MaxPageSize,
	}
}
