// Package logentry implements the shift log repository using PostgreSQL.
// Log entries are append-only: the API path inserts and reads, never
// updates. The only delete is the retention purge run by the cleanup cron.
package logentry

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/plantops/shiftlog-backend/internal/adapter/postgres"
	"github.com/plantops/shiftlog-backend/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const logTable = "shift_logs"

var logColumns = []string{
	"id", "plant", "shop_order", "step_id", "split_id",
	"work_center", "author", "category_id", "subject", "message", "created_at",
}

// Repo provides shift log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new shift log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new log entry. CreatedAt must already be set by the caller;
// it is stored verbatim and never touched again.
func (r *Repo) Create(ctx context.Context, entry domain.LogEntry) (domain.LogEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.
		Insert(logTable).
		Columns(logColumns...).
		Values(
			entry.ID, entry.Plant, entry.ShopOrder, entry.StepID, entry.SplitID,
			entry.WorkCenter, entry.Author, entry.CategoryID, entry.Subject,
			entry.Message, entry.CreatedAt,
		).
		ToSql()
	if err != nil {
		return domain.LogEntry{}, fmt.Errorf("build insert shift_log query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return domain.LogEntry{}, postgres.MapError(err, "shift_log", entry.ID.String())
	}

	return entry, nil
}

// PurgeOlderThan deletes log entries created before threshold. Distribution
// rows go with them via the cascade. Returns the number of deleted entries.
func (r *Repo) PurgeOlderThan(ctx context.Context, threshold time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.
		Delete(logTable).
		Where(squirrel.Lt{"created_at": threshold}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build purge shift_logs query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "shift_log", "")
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the log entry with the given id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.LogEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.
		Select(logColumns...).
		From(logTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.LogEntry{}, fmt.Errorf("build get shift_log query: %w", err)
	}

	entry, err := scanLogEntry(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.LogEntry{}, postgres.MapError(err, "shift_log", id.String())
	}

	return entry, nil
}

// List returns one page of log entries matching the filter, ordered by
// created_at descending (id descending as a tiebreaker). The Since bound is
// strictly exclusive: entries created exactly at Since are not returned.
func (r *Repo) List(ctx context.Context, filter domain.LogFilter) ([]domain.LogEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := applyFilter(psql.Select(logColumns...).From(logTable), filter).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list shift_logs query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list shift_logs: %w", err)
	}
	defer rows.Close()

	entries := []domain.LogEntry{}
	for rows.Next() {
		entry, err := scanLogEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shift_log: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list shift_logs: %w", err)
	}

	return entries, nil
}

// Count returns the total number of log entries matching the filter,
// ignoring Limit/Offset.
func (r *Repo) Count(ctx context.Context, filter domain.LogFilter) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := applyFilter(psql.Select("count(*)").From(logTable), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count shift_logs query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count shift_logs: %w", err)
	}

	return total, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

// applyFilter adds the conjunctive WHERE clauses shared by List and Count.
func applyFilter(b squirrel.SelectBuilder, f domain.LogFilter) squirrel.SelectBuilder {
	b = b.Where(squirrel.Eq{"plant": f.Plant})
	if f.WorkCenter != nil {
		b = b.Where(squirrel.Eq{"work_center": *f.WorkCenter})
	}
	if f.CategoryID != nil {
		b = b.Where(squirrel.Eq{"category_id": *f.CategoryID})
	}
	if f.Since != nil {
		// Exclusive lower bound for polling clients.
		b = b.Where(squirrel.Gt{"created_at": *f.Since})
	}
	return b
}

// scanLogEntry scans one shift_logs row in logColumns order.
func scanLogEntry(row pgx.Row) (domain.LogEntry, error) {
	var e domain.LogEntry
	err := row.Scan(
		&e.ID, &e.Plant, &e.ShopOrder, &e.StepID, &e.SplitID,
		&e.WorkCenter, &e.Author, &e.CategoryID, &e.Subject, &e.Message, &e.CreatedAt,
	)
	if err != nil {
		return domain.LogEntry{}, err
	}
	return e, nil
}
