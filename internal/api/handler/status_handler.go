package handler

import (
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/pulsekit/pulse/internal/repository"
)

// StatusHandler serves an operational snapshot of the running instance.
// Anything informational lives here so the liveness body on /api/health
// stays fixed-shape.
type StatusHandler struct {
	instanceID string
	startedAt  time.Time
	repo       repository.HeartbeatRepository // nil when no DB is configured
	logger     *zap.Logger
}

func NewStatusHandler(instanceID string, startedAt time.Time, repo repository.HeartbeatRepository, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{
		instanceID: instanceID,
		startedAt:  startedAt,
		repo:       repo,
		logger:     logger,
	}
}

// Status handles GET /api/status
//
// @Summary  Instance status snapshot
// @Tags     system
// @Produce  json
// @Success  200  {object}  map[string]any
// @Router   /api/status [get]
func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{
		"status":      "ok",
		"instance_id": h.instanceID,
		"started_at":  h.startedAt.UTC(),
		"uptime":      time.Since(h.startedAt).Round(time.Second).String(),
	}

	if h.repo != nil {
		hb, err := h.repo.Latest(r.Context())
		switch {
		case err == nil:
			body["last_heartbeat"] = hb
		case errors.Is(err, repository.ErrNoHeartbeat):
			// First tick has not fired yet; omit the field.
		default:
			h.logger.Warn("could not load latest heartbeat", zap.Error(err))
			body["last_heartbeat"] = "unavailable"
		}
	}

	respondJSON(w, http.StatusOK, body)
}
