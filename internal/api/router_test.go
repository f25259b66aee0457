package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/pulsekit/pulse/internal/api"
	"github.com/pulsekit/pulse/internal/metrics"
	"github.com/pulsekit/pulse/internal/probe"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	reg := prometheus.NewRegistry()
	return api.NewRouter(api.Deps{
		InstanceID: "test-instance",
		StartedAt:  time.Now(),
		Probes:     probe.NewRegistry(time.Second),
		Metrics:    metrics.New(reg),
		Registry:   reg,
		Logger:     zap.NewNop(),
	})
}

func do(t *testing.T, router http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json, got %q", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not valid JSON: %v", err)
	}
	if len(body) != 1 || body["status"] != "ok" {
		t.Fatalf(`expected exactly {"status":"ok"}, got %v`, body)
	}
}

func TestRouter_UnknownPath(t *testing.T) {
	router := newTestRouter(t)

	if rec := do(t, router, http.MethodGet, "/nonexistent"); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown path, got %d", rec.Code)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(t)

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		if rec := do(t, router, method, "/api/health"); rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s /api/health: expected 405, got %d", method, rec.Code)
		}
	}
}

func TestRouter_HealthIdempotent(t *testing.T) {
	router := newTestRouter(t)

	first := do(t, router, http.MethodGet, "/api/health").Body.String()
	for i := 0; i < 5; i++ {
		if got := do(t, router, http.MethodGet, "/api/health").Body.String(); got != first {
			t.Fatalf("response %d differs from first: %q vs %q", i, got, first)
		}
	}
}

func TestRouter_Ready(t *testing.T) {
	router := newTestRouter(t)

	if rec := do(t, router, http.MethodGet, "/api/ready"); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouter_Status(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/api/status")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not valid JSON: %v", err)
	}
	if body["instance_id"] != "test-instance" {
		t.Fatalf("expected instance_id test-instance, got %v", body["instance_id"])
	}
}

func TestRouter_MetricsScrape(t *testing.T) {
	router := newTestRouter(t)

	// Serve a request first so the instruments have something to report.
	do(t, router, http.MethodGet, "/api/health")

	rec := do(t, router, http.MethodGet, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	payload, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatalf("read metrics body: %v", err)
	}
	if !strings.Contains(string(payload), "http_requests_total") {
		t.Fatal("expected http_requests_total in the scrape output")
	}
}

func TestRouter_CorrelationIDHeader(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/api/health")
	if rec.Header().Get("X-Correlation-ID") == "" {
		t.Fatal("expected a generated X-Correlation-ID header")
	}
}
