package handlers

//go:generate mockgen -source=health.go -destination=health_mock.go -package=handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/techlinker/internal/logger"
)

// HealthChecker probes the service dependencies.
type HealthChecker interface {
	Check(ctx context.Context) error
}

// HealthResponse reports liveness
// swagger:model HealthResponse
type HealthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// NewHealthHandler returns an HTTP handler for liveness and dependency checks.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Healthy"
// @Failure 503 {object} handlers.HealthResponse "A dependency is down"
// @Router /health [get]
func NewHealthHandler(checker HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now().UTC()

		if err := checker.Check(r.Context()); err != nil {
			logger.Log.Warnw("health check failed", "err", err)
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:    "ERROR",
				Message:   "Dependency check failed",
				Timestamp: now,
			})
			return
		}

		writeJSON(w, http.StatusOK, HealthResponse{
			Status:    "OK",
			Message:   "Server is running",
			Timestamp: now,
		})
	}
}
