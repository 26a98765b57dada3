package logbook

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/plantops/shiftlog-backend/internal/domain"
)

// CreateLog persists a new log entry and fans it out to every work center
// subscribed to the entry's category in the same transaction. When the
// category is not marked for distribution, or has no subscribed work centers
// in the plant, the entry is still created and no distribution rows appear.
func (s *Service) CreateLog(ctx context.Context, in CreateLogInput) (domain.LogEntry, error) {
	if err := in.Validate(); err != nil {
		return domain.LogEntry{}, err
	}

	entry := domain.LogEntry{
		ID:         uuid.New(),
		Plant:      in.Plant,
		ShopOrder:  in.ShopOrder,
		StepID:     in.StepID,
		SplitID:    in.SplitID,
		WorkCenter: in.WorkCenter,
		Author:     in.Author,
		CategoryID: in.CategoryID,
		Subject:    in.Subject,
		Message:    in.Message,
		CreatedAt:  time.Now().UTC(),
	}

	var category domain.Category

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		category, err = s.categories.GetByID(ctx, in.CategoryID)
		if err != nil {
			return fmt.Errorf("get category: %w", err)
		}

		entry, err = s.logs.Create(ctx, entry)
		if err != nil {
			return fmt.Errorf("create log entry: %w", err)
		}

		if !category.Distribute {
			return nil
		}

		targets, err := s.categories.ListTargets(ctx, category.ID, entry.Plant)
		if err != nil {
			return fmt.Errorf("list category targets: %w", err)
		}
		if err := s.dists.CreateDistributions(ctx, entry.ID, targets); err != nil {
			return fmt.Errorf("create distributions: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.LogEntry{}, err
	}

	if s.notifier != nil {
		s.notifier.LogCreated(ctx, entry, category)
	}

	s.log.InfoContext(ctx, "log entry created",
		"log_id", entry.ID,
		"plant", entry.Plant,
		"category_id", entry.CategoryID,
		"distributed", category.Distribute)

	return entry, nil
}

// GetLog returns a single log entry by id.
func (s *Service) GetLog(ctx context.Context, id uuid.UUID) (domain.LogEntry, error) {
	if id == uuid.Nil {
		return domain.LogEntry{}, domain.NewValidationError("id", "must not be empty")
	}
	return s.logs.GetByID(ctx, id)
}
