package repository

import (
	"context"
	"sync"
)

// MockHeartbeatRepository is a hand-written, in-memory implementation of
// HeartbeatRepository used in unit tests. No mock-generation library needed.
type MockHeartbeatRepository struct {
	mu         sync.RWMutex
	heartbeats map[string]Heartbeat

	// Optional error overrides — set in tests to simulate failure paths.
	RecordErr error
	LatestErr error
}

func NewMockHeartbeatRepository() *MockHeartbeatRepository {
	return &MockHeartbeatRepository{heartbeats: make(map[string]Heartbeat)}
}

func (m *MockHeartbeatRepository) Record(_ context.Context, hb Heartbeat) error {
	if m.RecordErr != nil {
		return m.RecordErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.heartbeats[hb.InstanceID] = hb
	return nil
}

func (m *MockHeartbeatRepository) Latest(_ context.Context) (*Heartbeat, error) {
	if m.LatestErr != nil {
		return nil, m.LatestErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	var latest *Heartbeat
	for _, hb := range m.heartbeats {
		if latest == nil || hb.ObservedAt.After(latest.ObservedAt) {
			clone := hb
			latest = &clone
		}
	}
	if latest == nil {
		return nil, ErrNoHeartbeat
	}
	return latest, nil
}

// Count reports how many instances have recorded a heartbeat.
func (m *MockHeartbeatRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.heartbeats)
}
