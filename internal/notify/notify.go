// Package notify contains notification hooks invoked after a log entry is
// created. The engine itself never sends mail; hooks hand the entry to
// whatever external system is configured.
package notify

import (
	"context"
	"log/slog"

	"github.com/plantops/shiftlog-backend/internal/domain"
)

// LogNotifier records every created entry in the application log. It stands
// in when no external notification system is configured.
type LogNotifier struct {
	log *slog.Logger
}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log.With("component", "notifier")}
}

// LogCreated implements the logbook notifier hook.
func (n *LogNotifier) LogCreated(ctx context.Context, entry domain.LogEntry, category domain.Category) {
	n.log.InfoContext(ctx, "log entry notification",
		"log_id", entry.ID,
		"plant", entry.Plant,
		"category", category.Name,
		"distributed", category.Distribute,
	)
}
