package metrics_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pulsekit/pulse/internal/metrics"
)

func gatherValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		var total float64
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
		return total
	}
	return 0
}

func TestObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveRequest(http.MethodGet, "/api/health", http.StatusOK, 3*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/api/health", http.StatusOK, 5*time.Millisecond)

	if got := gatherValue(t, reg, "http_requests_total"); got != 2 {
		t.Fatalf("expected http_requests_total=2, got %v", got)
	}
}

func TestHeartbeatHooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	onRecorded, onFailed := m.HeartbeatHooks()
	onRecorded()
	onRecorded()
	onFailed()

	if got := gatherValue(t, reg, "heartbeats_recorded_total"); got != 2 {
		t.Fatalf("expected heartbeats_recorded_total=2, got %v", got)
	}
	if got := gatherValue(t, reg, "heartbeat_failures_total"); got != 1 {
		t.Fatalf("expected heartbeat_failures_total=1, got %v", got)
	}
}
