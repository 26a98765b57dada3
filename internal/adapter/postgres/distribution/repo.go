// Package distribution implements the acknowledgment-row repository using
// PostgreSQL. Rows are keyed by the (log_id, work_center) composite identity;
// read_at is the only mutable column. Every write is a single conditional
// statement on that key, so concurrent callers can never leave a row in a
// state between unread and read.
package distribution

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/plantops/shiftlog-backend/internal/adapter/postgres"
	"github.com/plantops/shiftlog-backend/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const distTable = "shift_log_distributions"

// Repo provides distribution-row persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new distribution repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// CreateForLog inserts one unread row per work center for the given log entry.
// The insert is a single multi-row statement: either all rows land or none do,
// so a failure never leaves a partial distribution set behind.
func (r *Repo) CreateForLog(ctx context.Context, logID uuid.UUID, workCenters []string) error {
	if len(workCenters) == 0 {
		return nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := psql.Insert(distTable).Columns("log_id", "work_center", "read_at")
	for _, wc := range workCenters {
		b = b.Values(logID, wc, nil)
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build insert distributions query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "distribution", logID.String())
	}

	return nil
}

// MarkRead sets read_at for one row as a single conditional update keyed by
// the composite identity. The timestamp always overwrites a previous one, so
// repeated acknowledgments are trackable. Returns domain.ErrNotFound when no
// row matches the key.
func (r *Repo) MarkRead(ctx context.Context, key domain.DistributionKey, readAt time.Time) error {
	return r.setReadAt(ctx, key, &readAt)
}

// MarkUnread clears read_at for one row. Returns domain.ErrNotFound when no
// row matches the key.
func (r *Repo) MarkUnread(ctx context.Context, key domain.DistributionKey) error {
	return r.setReadAt(ctx, key, nil)
}

func (r *Repo) setReadAt(ctx context.Context, key domain.DistributionKey, readAt *time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.
		Update(distTable).
		Set("read_at", readAt).
		Where(squirrel.Eq{"log_id": key.LogID, "work_center": key.WorkCenter}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update distribution query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "distribution", key.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("distribution %s: %w", key, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByKey returns the distribution row with the given composite key.
func (r *Repo) GetByKey(ctx context.Context, key domain.DistributionKey) (domain.Distribution, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.
		Select("log_id", "work_center", "read_at").
		From(distTable).
		Where(squirrel.Eq{"log_id": key.LogID, "work_center": key.WorkCenter}).
		ToSql()
	if err != nil {
		return domain.Distribution{}, fmt.Errorf("build get distribution query: %w", err)
	}

	var d domain.Distribution
	row := q.QueryRow(ctx, sql, args...)
	if err := row.Scan(&d.Key.LogID, &d.Key.WorkCenter, &d.ReadAt); err != nil {
		return domain.Distribution{}, postgres.MapError(err, "distribution", key.String())
	}

	return d, nil
}

// ListByLog returns all distribution rows of one log entry, ordered by
// work center.
func (r *Repo) ListByLog(ctx context.Context, logID uuid.UUID) ([]domain.Distribution, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.
		Select("log_id", "work_center", "read_at").
		From(distTable).
		Where(squirrel.Eq{"log_id": logID}).
		OrderBy("work_center ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list distributions query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "distribution", logID.String())
	}
	defer rows.Close()

	dists := []domain.Distribution{}
	for rows.Next() {
		var d domain.Distribution
		if err := rows.Scan(&d.Key.LogID, &d.Key.WorkCenter, &d.ReadAt); err != nil {
			return nil, fmt.Errorf("scan distribution: %w", err)
		}
		dists = append(dists, d)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "distribution", logID.String())
	}

	return dists, nil
}
