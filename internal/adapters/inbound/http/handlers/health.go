package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/storecraft/storefront/internal/usecases"
	"github.com/storecraft/storefront/internal/usecases/queries"
)

type HealthHandler struct {
	app       *usecases.Application
	startTime time.Time
}

func NewHealthHandler(app *usecases.Application) *HealthHandler {
	return &HealthHandler{
		app:       app,
		startTime: time.Now().UTC(),
	}
}

func (h *HealthHandler) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	result, err := h.app.Queries.FetchLiveness.Execute(r.Context(), queries.FetchLivenessQuery{})
	if err != nil {
		writeJSONStatus(w, http.StatusServiceUnavailable, map[string]any{
			"status":    "down",
			"timestamp": time.Now().UTC(),
		})

		return
	}

	writeJSONStatus(w, http.StatusOK, map[string]any{
		"status":    result.Status,
		"timestamp": time.Now().UTC(),
	})
}

func (h *HealthHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	result, err := h.app.Queries.FetchReadiness.Execute(r.Context(), queries.FetchReadinessQuery{})
	if err != nil {
		writeJSONStatus(w, http.StatusServiceUnavailable, map[string]any{
			"status":    "down",
			"timestamp": time.Now().UTC(),
		})

		return
	}

	httpStatus := http.StatusOK
	if !result.Ready {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSONStatus(w, httpStatus, map[string]any{
		"status":    result.Status,
		"ready":     result.Ready,
		"timestamp": time.Now().UTC(),
	})
}

func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	result, err := h.app.Queries.FetchHealthReport.Execute(r.Context(), queries.FetchHealthReportQuery{})
	if err != nil {
		writeJSONStatus(w, http.StatusServiceUnavailable, map[string]any{
			"status":    "down",
			"timestamp": time.Now().UTC(),
		})

		return
	}

	httpStatus := http.StatusOK
	if result.Status != "healthy" {
		httpStatus = http.StatusServiceUnavailable
	}

	uptime := time.Since(h.startTime)

	writeJSONStatus(w, httpStatus, map[string]any{
		"status":       result.Status,
		"timestamp":    time.Now().UTC(),
		"dependencies": result.Dependencies,
		"version": map[string]any{
			"service": result.Version,
			"go":      runtime.Version(),
		},
		"uptime": map[string]any{
			"duration":        uptime.String(),
			"durationSeconds": int(uptime.Seconds()),
			"startedAt":       h.startTime,
		},
	})
}
