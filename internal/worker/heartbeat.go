package worker

import (
	"context"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pulsekit/pulse/internal/repository"
)

// MetricHooks are the metric callbacks invoked by the heartbeat recorder.
// Kept as plain funcs so this package has no prometheus import.
type MetricHooks struct {
	OnRecorded func()
	OnFailed   func()
}

// HeartbeatRecorder periodically persists a liveness row for this instance.
//
// The DB-backed approach means the trail survives server restarts: an
// operator (or another service) can tell when each instance was last alive
// even after the process is gone. A failed tick is logged and counted, never
// fatal; the next tick retries naturally.
type HeartbeatRecorder struct {
	repo       repository.HeartbeatRepository
	instanceID string
	hostname   string
	interval   time.Duration
	hooks      MetricHooks
	logger     *zap.Logger

	wg sync.WaitGroup
}

func NewHeartbeatRecorder(
	repo repository.HeartbeatRepository,
	instanceID string,
	interval time.Duration,
	hooks MetricHooks,
	logger *zap.Logger,
) *HeartbeatRecorder {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	return &HeartbeatRecorder{
		repo:       repo,
		instanceID: instanceID,
		hostname:   hostname,
		interval:   interval,
		hooks:      hooks,
		logger:     logger,
	}
}

// Start launches the recorder goroutine. An immediate first beat is written
// so the trail begins at startup rather than one interval later.
func (hr *HeartbeatRecorder) Start(ctx context.Context) {
	hr.wg.Add(1)
	go hr.run(ctx)
}

// Wait blocks until the recorder goroutine has finished its in-flight tick
// and exited. Called during graceful shutdown after the context is cancelled.
func (hr *HeartbeatRecorder) Wait() {
	hr.wg.Wait()
}

func (hr *HeartbeatRecorder) run(ctx context.Context) {
	defer hr.wg.Done()

	ticker := time.NewTicker(hr.interval)
	defer ticker.Stop()

	hr.logger.Info("heartbeat recorder started",
		zap.String("instance_id", hr.instanceID),
		zap.Duration("interval", hr.interval),
	)

	hr.beat(ctx)

	for {
		select {
		case <-ctx.Done():
			hr.logger.Info("heartbeat recorder stopping")
			return
		case <-ticker.C:
			hr.beat(ctx)
		}
	}
}

func (hr *HeartbeatRecorder) beat(ctx context.Context) {
	hb := repository.Heartbeat{
		InstanceID: hr.instanceID,
		Hostname:   hr.hostname,
		ObservedAt: time.Now().UTC(),
	}

	if err := hr.repo.Record(ctx, hb); err != nil {
		if hr.hooks.OnFailed != nil {
			hr.hooks.OnFailed()
		}
		hr.logger.Error("heartbeat write failed", zap.Error(err))
		return
	}

	if hr.hooks.OnRecorded != nil {
		hr.hooks.OnRecorded()
	}
}
