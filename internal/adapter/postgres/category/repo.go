// Package category implements category persistence backed by PostgreSQL.
// The API path only reads categories; mutation happens through the
// provision tool, which upserts categories and their work-center sets.
package category

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/plantops/shiftlog-backend/internal/adapter/postgres"
	"github.com/plantops/shiftlog-backend/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides category lookups backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new category repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Upsert inserts the category or updates its name and distribution flag.
func (r *Repo) Upsert(ctx context.Context, cat domain.Category) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.
		Insert("categories").
		Columns("id", "plant", "name", "distribute").
		Values(cat.ID, cat.Plant, cat.Name, cat.Distribute).
		Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, distribute = EXCLUDED.distribute").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert category query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "category", cat.ID.String())
	}
	return nil
}

// ReplaceTargets replaces the category's subscribed work centers for the
// given plant with the provided set. Run inside a transaction so readers
// never observe a half-replaced set.
func (r *Repo) ReplaceTargets(ctx context.Context, categoryID uuid.UUID, plant string, workCenters []string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	delSQL, delArgs, err := psql.
		Delete("category_work_centers").
		Where(squirrel.Eq{"category_id": categoryID, "plant": plant}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete targets query: %w", err)
	}
	if _, err := q.Exec(ctx, delSQL, delArgs...); err != nil {
		return postgres.MapError(err, "category", categoryID.String())
	}

	if len(workCenters) == 0 {
		return nil
	}

	b := psql.Insert("category_work_centers").Columns("category_id", "plant", "work_center")
	for _, wc := range workCenters {
		b = b.Values(categoryID, plant, wc)
	}
	insSQL, insArgs, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build insert targets query: %w", err)
	}
	if _, err := q.Exec(ctx, insSQL, insArgs...); err != nil {
		return postgres.MapError(err, "category", categoryID.String())
	}
	return nil
}

// GetByID returns the category with the given id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.
		Select("id", "plant", "name", "distribute", "created_at").
		From("categories").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Category{}, fmt.Errorf("build get category query: %w", err)
	}

	var cat domain.Category
	row := q.QueryRow(ctx, sql, args...)
	if err := row.Scan(&cat.ID, &cat.Plant, &cat.Name, &cat.Distribute, &cat.CreatedAt); err != nil {
		return domain.Category{}, postgres.MapError(err, "category", id.String())
	}

	return cat, nil
}

// ListTargets returns the work-center codes subscribed to the category for the
// given plant, ordered by code. An empty result is not an error.
func (r *Repo) ListTargets(ctx context.Context, categoryID uuid.UUID, plant string) ([]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.
		Select("work_center").
		From("category_work_centers").
		Where(squirrel.Eq{"category_id": categoryID, "plant": plant}).
		OrderBy("work_center ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list targets query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "category", categoryID.String())
	}
	defer rows.Close()

	var targets []string
	for rows.Next() {
		var wc string
		if err := rows.Scan(&wc); err != nil {
			return nil, fmt.Errorf("scan work center: %w", err)
		}
		targets = append(targets, wc)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "category", categoryID.String())
	}

	return targets, nil
}
