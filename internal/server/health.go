package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/desertthunder/drills/internal/shared"
)

// HealthResponse is the body of /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// HealthHandler reports liveness.
type HealthHandler struct {
	startedAt time.Time
}

// NewHealthHandler creates a [HealthHandler] measuring uptime from startedAt.
func NewHealthHandler(startedAt time.Time) *HealthHandler {
	return &HealthHandler{startedAt: startedAt}
}

// Routes returns the HTTP routes this handler serves.
func (h *HealthHandler) Routes() []string { return []string{"/health"} }

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:  "ok",
		Version: shared.Version,
		Uptime:  time.Since(h.startedAt).Truncate(time.Second).String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}
