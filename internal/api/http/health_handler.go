package http

import (
	"net/http"
	"time"

	"entnt-rental-backend/internal/storage"
)

var startTime = time.Now()

type healthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type healthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Uptime    string                 `json:"uptime"`
	Checks    map[string]healthCheck `json:"checks"`
}

// Health reports process liveness and whether the storage backend answers.
// A missing app-data key is healthy; first boot starts from seed data.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	checks := map[string]healthCheck{}
	overall := "UP"

	if _, err := h.kv.Get(r.Context(), storage.KeyAppData); err != nil && err != storage.ErrNotFound {
		checks["storage"] = healthCheck{Status: "DOWN", Message: err.Error()}
		overall = "DEGRADED"
	} else {
		checks["storage"] = healthCheck{Status: "UP"}
	}

	status := http.StatusOK
	if overall != "UP" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, healthResponse{
		Status:    overall,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(startTime).Round(time.Second).String(),
		Checks:    checks,
	})
}
