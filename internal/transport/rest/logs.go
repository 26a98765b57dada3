package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/plantops/shiftlog-backend/internal/domain"
	"github.com/plantops/shiftlog-backend/internal/service/logbook"
)

// logbookService defines the minimal interface needed by LogHandler.
type logbookService interface {
	CreateLog(ctx context.Context, in logbook.CreateLogInput) (domain.LogEntry, error)
	GetLog(ctx context.Context, id uuid.UUID) (domain.LogEntry, error)
	ListLogs(ctx context.Context, in logbook.ListLogsInput) (domain.LogPage, error)
}

// LogHandler serves shift-log REST endpoints.
type LogHandler struct {
	svc logbookService
	log *slog.Logger
}

// NewLogHandler creates a LogHandler.
func NewLogHandler(svc logbookService, logger *slog.Logger) *LogHandler {
	return &LogHandler{svc: svc, log: logger.With("handler", "logs")}
}

type createLogRequest struct {
	Plant      string `json:"plant"`
	ShopOrder  string `json:"shopOrder"`
	StepID     string `json:"stepId"`
	SplitID    string `json:"splitId"`
	WorkCenter string `json:"workCenter"`
	Author     string `json:"author"`
	CategoryID string `json:"categoryId"`
	Subject    string `json:"subject"`
	Message    string `json:"message"`
}

type logResponse struct {
	ID         string    `json:"id"`
	Plant      string    `json:"plant"`
	ShopOrder  string    `json:"shopOrder,omitempty"`
	StepID     string    `json:"stepId,omitempty"`
	SplitID    string    `json:"splitId,omitempty"`
	WorkCenter string    `json:"workCenter,omitempty"`
	Author     string    `json:"author"`
	CategoryID string    `json:"categoryId"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}

type logPageResponse struct {
	Logs     []logResponse `json:"logs"`
	Total    int           `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
}

func toLogResponse(e domain.LogEntry) logResponse {
	return logResponse{
		ID:         e.ID.String(),
		Plant:      e.Plant,
		ShopOrder:  e.ShopOrder,
		StepID:     e.StepID,
		SplitID:    e.SplitID,
		WorkCenter: e.WorkCenter,
		Author:     e.Author,
		CategoryID: e.CategoryID.String(),
		Subject:    e.Subject,
		Message:    e.Message,
		CreatedAt:  e.CreatedAt,
	}
}

// Create handles POST /api/v1/logs.
func (h *LogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// An unparseable category ID falls through as uuid.Nil so the
	// service reports it alongside the other field errors.
	categoryID, _ := uuid.Parse(req.CategoryID)

	entry, err := h.svc.CreateLog(r.Context(), logbook.CreateLogInput{
		Plant:      req.Plant,
		ShopOrder:  req.ShopOrder,
		StepID:     req.StepID,
		SplitID:    req.SplitID,
		WorkCenter: req.WorkCenter,
		Author:     req.Author,
		CategoryID: categoryID,
		Subject:    req.Subject,
		Message:    req.Message,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toLogResponse(entry))
}

// Get handles GET /api/v1/logs/{id}.
func (h *LogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid log id")
		return
	}

	entry, err := h.svc.GetLog(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toLogResponse(entry))
}

// List handles GET /api/v1/logs.
// Query parameters: plant (required), workCenter, categoryId, since
// (RFC 3339, exclusive), page, pageSize.
func (h *LogHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	in := logbook.ListLogsInput{
		Plant:      q.Get("plant"),
		WorkCenter: q.Get("workCenter"),
	}

	if v := q.Get("categoryId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid categoryId")
			return
		}
		in.CategoryID = id
	}
	if v := q.Get("since"); v != "" {
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid since timestamp, expected RFC 3339")
			return
		}
		in.Since = &ts
	}
	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid page")
			return
		}
		in.Page = n
	}
	if v := q.Get("pageSize"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid pageSize")
			return
		}
		in.PageSize = n
	}

	page, err := h.svc.ListLogs(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := logPageResponse{
		Logs:     make([]logResponse, 0, len(page.Logs)),
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}
	for _, e := range page.Logs {
		resp.Logs = append(resp.Logs, toLogResponse(e))
	}

	writeJSON(w, http.StatusOK, resp)
}
