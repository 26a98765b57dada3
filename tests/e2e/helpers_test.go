//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/plantops/shiftlog-backend/internal/adapter/postgres"
	categoryrepo "github.com/plantops/shiftlog-backend/internal/adapter/postgres/category"
	distributionrepo "github.com/plantops/shiftlog-backend/internal/adapter/postgres/distribution"
	logentryrepo "github.com/plantops/shiftlog-backend/internal/adapter/postgres/logentry"
	"github.com/plantops/shiftlog-backend/internal/adapter/postgres/testhelper"
	"github.com/plantops/shiftlog-backend/internal/config"
	distributionsvc "github.com/plantops/shiftlog-backend/internal/service/distribution"
	logbooksvc "github.com/plantops/shiftlog-backend/internal/service/logbook"
	"github.com/plantops/shiftlog-backend/internal/transport/middleware"
	"github.com/plantops/shiftlog-backend/internal/transport/rest"
	"github.com/jackc/pgx/v5/pgxpool"
)

// testEnv holds the full HTTP stack wired against a real database.
type testEnv struct {
	srv  *httptest.Server
	pool *pgxpool.Pool
}

// newTestEnv wires repositories, services, handlers, and middleware the same
// way the application bootstrap does, against a containerized database.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.Default()

	cfg := config.LogbookConfig{
		DefaultPageSize: 50,
		MaxPageSize:     200,
		MaxBatchItems:   100,
		RetentionDays:   730,
	}

	txManager := postgres.NewTxManager(pool)
	categories := categoryrepo.New(pool)
	logs := logentryrepo.New(pool)
	distributions := distributionrepo.New(pool)

	distService := distributionsvc.NewService(logger, distributions, cfg)
	logbookService := logbooksvc.NewService(logger, logs, categories, distService, txManager, nil, cfg)

	mux := rest.NewRouter(
		rest.NewLogHandler(logbookService, logger),
		rest.NewAckHandler(distService, logger),
		rest.NewHealthHandler(pool, "e2e"),
	)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testEnv{srv: srv, pool: pool}
}

// doJSON sends a JSON request and decodes the JSON response body into a map.
// A nil body sends no payload; 204 responses return a nil map.
func (e *testEnv) doJSON(t *testing.T, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, e.srv.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return resp.StatusCode, nil
	}

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

// doJSONList is doJSON for endpoints that return a top-level JSON array.
func (e *testEnv) doJSONList(t *testing.T, method, path string) (int, []map[string]any) {
	t.Helper()

	resp, err := http.Get(e.srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func uniquePlant() string {
	return "P-" + uuid.NewString()[:8]
}

func createLogBody(plant string, categoryID uuid.UUID, subject string) map[string]any {
	return map[string]any{
		"plant":      plant,
		"shopOrder":  "SO-1001",
		"stepId":     "0010",
		"workCenter": "WC-SRC",
		"author":     "jdoe",
		"categoryId": categoryID.String(),
		"subject":    subject,
		"message":    fmt.Sprintf("details for %s", subject),
	}
}
