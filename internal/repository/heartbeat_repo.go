package repository

import (
	"context"
	"errors"
	"time"
)

// ErrNoHeartbeat is returned by Latest when no heartbeat has been recorded.
var ErrNoHeartbeat = errors.New("no heartbeat recorded")

// Heartbeat is one persisted liveness observation for a service instance.
type Heartbeat struct {
	InstanceID string    `json:"instance_id"`
	Hostname   string    `json:"hostname"`
	ObservedAt time.Time `json:"observed_at"`
}

// HeartbeatRepository persists and reads back liveness observations.
// Record upserts by instance ID so each instance keeps exactly one row.
type HeartbeatRepository interface {
	Record(ctx context.Context, hb Heartbeat) error
	Latest(ctx context.Context) (*Heartbeat, error)
}
