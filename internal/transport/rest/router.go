package rest

import "net/http"

// NewRouter registers all REST routes on a fresh ServeMux.
func NewRouter(logs *LogHandler, acks *AckHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /health/live", health.Live)
	mux.HandleFunc("GET /health/ready", health.Ready)

	mux.HandleFunc("POST /api/v1/logs", logs.Create)
	mux.HandleFunc("GET /api/v1/logs", logs.List)
	mux.HandleFunc("GET /api/v1/logs/{id}", logs.Get)

	mux.HandleFunc("GET /api/v1/logs/{id}/distributions", acks.ListDistributions)
	mux.HandleFunc("POST /api/v1/logs/{id}/read", acks.MarkRead)
	mux.HandleFunc("POST /api/v1/logs/{id}/unread", acks.MarkUnread)
	mux.HandleFunc("POST /api/v1/acks/read", acks.BatchMarkRead)
	mux.HandleFunc("POST /api/v1/acks/unread", acks.BatchMarkUnread)

	return mux
}
