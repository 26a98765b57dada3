package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/plantops/shiftlog-backend/internal/domain"
)

// distributionService defines the minimal interface needed by AckHandler.
type distributionService interface {
	MarkRead(ctx context.Context, key domain.DistributionKey) (time.Time, error)
	MarkUnread(ctx context.Context, key domain.DistributionKey) error
	BatchMarkRead(ctx context.Context, keys []domain.DistributionKey) (domain.BatchOutcome, error)
	BatchMarkUnread(ctx context.Context, keys []domain.DistributionKey) (domain.BatchOutcome, error)
	ListForLog(ctx context.Context, logID uuid.UUID) ([]domain.Distribution, error)
}

// AckHandler serves read-acknowledgment REST endpoints.
type AckHandler struct {
	svc distributionService
	log *slog.Logger
}

// NewAckHandler creates an AckHandler.
func NewAckHandler(svc distributionService, logger *slog.Logger) *AckHandler {
	return &AckHandler{svc: svc, log: logger.With("handler", "acks")}
}

type ackRequest struct {
	WorkCenter string `json:"workCenter"`
}

type batchAckRequest struct {
	Items []batchAckItem `json:"items"`
}

type batchAckItem struct {
	LogID      string `json:"logId"`
	WorkCenter string `json:"workCenter"`
}

type batchOutcomeResponse struct {
	Success      bool     `json:"success"`
	TotalCount   int      `json:"totalCount"`
	SuccessCount int      `json:"successCount"`
	FailedCount  int      `json:"failedCount"`
	Errors       []string `json:"errors,omitempty"`
}

type distributionResponse struct {
	LogID      string     `json:"logId"`
	WorkCenter string     `json:"workCenter"`
	Read       bool       `json:"read"`
	ReadAt     *time.Time `json:"readAt,omitempty"`
}

// MarkRead handles POST /api/v1/logs/{id}/read.
func (h *AckHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	key, ok := h.keyFromRequest(w, r)
	if !ok {
		return
	}

	readAt, err := h.svc.MarkRead(r.Context(), key)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"readAt": readAt})
}

// MarkUnread handles POST /api/v1/logs/{id}/unread.
func (h *AckHandler) MarkUnread(w http.ResponseWriter, r *http.Request) {
	key, ok := h.keyFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.svc.MarkUnread(r.Context(), key); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListDistributions handles GET /api/v1/logs/{id}/distributions.
func (h *AckHandler) ListDistributions(w http.ResponseWriter, r *http.Request) {
	logID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid log id")
		return
	}

	dists, err := h.svc.ListForLog(r.Context(), logID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]distributionResponse, 0, len(dists))
	for _, d := range dists {
		resp = append(resp, distributionResponse{
			LogID:      d.Key.LogID.String(),
			WorkCenter: d.Key.WorkCenter,
			Read:       d.IsRead(),
			ReadAt:     d.ReadAt,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// BatchMarkRead handles POST /api/v1/acks/read.
func (h *AckHandler) BatchMarkRead(w http.ResponseWriter, r *http.Request) {
	h.batch(w, r, h.svc.BatchMarkRead)
}

// BatchMarkUnread handles POST /api/v1/acks/unread.
func (h *AckHandler) BatchMarkUnread(w http.ResponseWriter, r *http.Request) {
	h.batch(w, r, h.svc.BatchMarkUnread)
}

func (h *AckHandler) batch(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, keys []domain.DistributionKey) (domain.BatchOutcome, error),
) {
	var req batchAckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Unparseable log IDs become nil keys so the service reports them
	// as per-item failures instead of rejecting the whole batch.
	keys := make([]domain.DistributionKey, 0, len(req.Items))
	for _, item := range req.Items {
		logID, _ := uuid.Parse(item.LogID)
		keys = append(keys, domain.DistributionKey{
			LogID:      logID,
			WorkCenter: item.WorkCenter,
		})
	}

	outcome, err := op(r.Context(), keys)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, batchOutcomeResponse{
		Success:      outcome.Success,
		TotalCount:   outcome.TotalCount,
		SuccessCount: outcome.SuccessCount,
		FailedCount:  outcome.FailedCount,
		Errors:       outcome.Errors,
	})
}

func (h *AckHandler) keyFromRequest(w http.ResponseWriter, r *http.Request) (domain.DistributionKey, bool) {
	logID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid log id")
		return domain.DistributionKey{}, false
	}

	var req ackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return domain.DistributionKey{}, false
	}

	key := domain.DistributionKey{LogID: logID, WorkCenter: req.WorkCenter}
	if err := key.Validate(); err != nil {
		handleError(h.log, w, r, err)
		return domain.DistributionKey{}, false
	}
	return key, true
}
