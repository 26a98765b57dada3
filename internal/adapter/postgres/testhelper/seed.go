package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/plantops/shiftlog-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCategory creates a category for the given plant and subscribes the given
// work centers to it. Returns the filled domain.Category.
func SeedCategory(t *testing.T, pool *pgxpool.Pool, plant string, distribute bool, workCenters ...string) domain.Category {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	cat := domain.Category{
		ID:         uuid.New(),
		Plant:      plant,
		Name:       "Category " + uniqueSuffix(),
		Distribute: distribute,
		CreatedAt:  now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO categories (id, plant, name, distribute, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		cat.ID, cat.Plant, cat.Name, cat.Distribute, cat.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory insert category: %v", err)
	}

	for _, wc := range workCenters {
		_, err := pool.Exec(ctx,
			`INSERT INTO category_work_centers (category_id, plant, work_center)
			 VALUES ($1, $2, $3)`,
			cat.ID, plant, wc,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedCategory insert work center %q: %v", wc, err)
		}
	}

	return cat
}

// SeedLogEntry creates a shift log entry in the given category.
// Pass a non-zero createdAt to control ordering; zero means now.
func SeedLogEntry(t *testing.T, pool *pgxpool.Pool, plant string, categoryID uuid.UUID, createdAt time.Time) domain.LogEntry {
	t.Helper()
	ctx := context.Background()

	if createdAt.IsZero() {
		createdAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	suffix := uniqueSuffix()
	entry := domain.LogEntry{
		ID:         uuid.New(),
		Plant:      plant,
		ShopOrder:  "SO-" + suffix,
		StepID:     "0010",
		SplitID:    "0",
		WorkCenter: "WC-ORIGIN",
		Author:     "tester-" + suffix,
		CategoryID: categoryID,
		Subject:    "Subject " + suffix,
		Message:    "Message body " + suffix,
		CreatedAt:  createdAt,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO shift_logs (id, plant, shop_order, step_id, split_id, work_center, author, category_id, subject, message, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		entry.ID, entry.Plant, entry.ShopOrder, entry.StepID, entry.SplitID,
		entry.WorkCenter, entry.Author, entry.CategoryID, entry.Subject, entry.Message, entry.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLogEntry insert shift_log: %v", err)
	}

	return entry
}

// SeedDistributions creates one unread distribution row per work center for the
// given log entry.
func SeedDistributions(t *testing.T, pool *pgxpool.Pool, logID uuid.UUID, workCenters ...string) {
	t.Helper()
	ctx := context.Background()

	for _, wc := range workCenters {
		_, err := pool.Exec(ctx,
			`INSERT INTO shift_log_distributions (log_id, work_center, read_at)
			 VALUES ($1, $2, NULL)`,
			logID, wc,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedDistributions insert (%s, %s): %v", logID, wc, err)
		}
	}
}
