package logbook

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/plantops/shiftlog-backend/internal/domain"
)

// ListLogs returns one page of log entries matching the filter, newest
// first, together with the total match count. A zero page or page size is
// replaced with the configured default; an oversized page size is clamped.
func (s *Service) ListLogs(ctx context.Context, in ListLogsInput) (domain.LogPage, error) {
	if err := in.Validate(); err != nil {
		return domain.LogPage{}, err
	}

	page := in.Page
	if page == 0 {
		page = 1
	}
	pageSize := in.PageSize
	if pageSize == 0 {
		pageSize = s.defaultPageSize
	}
	if pageSize > s.maxPageSize {
		pageSize = s.maxPageSize
	}

	filter := domain.LogFilter{
		Plant:  in.Plant,
		Since:  in.Since,
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	}
	if in.WorkCenter != "" {
		filter.WorkCenter = &in.WorkCenter
	}
	if in.CategoryID != uuid.Nil {
		id := in.CategoryID
		filter.CategoryID = &id
	}

	logs, err := s.logs.List(ctx, filter)
	if err != nil {
		return domain.LogPage{}, fmt.Errorf("list log entries: %w", err)
	}
	total, err := s.logs.Count(ctx, filter)
	if err != nil {
		return domain.LogPage{}, fmt.Errorf("count log entries: %w", err)
	}

	return domain.LogPage{
		Logs:     logs,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
