package handler

import (
	"net/http"

	"github.com/pulsekit/pulse/internal/probe"
)

// ReadyHandler serves the readiness probe endpoint by consulting the
// registered dependency checkers.
type ReadyHandler struct {
	registry *probe.Registry
}

func NewReadyHandler(registry *probe.Registry) *ReadyHandler {
	return &ReadyHandler{registry: registry}
}

// Ready handles GET /api/ready
//
// With no checkers registered (no DATABASE_URL), readiness degenerates to
// liveness: the process is up, so it is ready.
//
// @Summary  Readiness probe
// @Tags     system
// @Produce  json
// @Success  200  {object}  map[string]any
// @Failure  503  {object}  map[string]any
// @Router   /api/ready [get]
func (h *ReadyHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ready, results := h.registry.Run(r.Context())

	checks := make(map[string]string, len(results))
	for _, res := range results {
		if res.Err != nil {
			checks[res.Name] = res.Err.Error()
		} else {
			checks[res.Name] = "ok"
		}
	}

	if !ready {
		respondJSON(w, http.StatusServiceUnavailable, map[string]any{
			"status": "unavailable",
			"checks": checks,
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"checks": checks,
	})
}
