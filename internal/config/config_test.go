package config_test

import (
	"testing"
	"time"

	"github.com/pulsekit/pulse/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Fatalf("expected default shutdown timeout 30s, got %s", cfg.ShutdownTimeout)
	}
	if cfg.RateLimit != 0 {
		t.Fatalf("expected throttling disabled by default, got %d", cfg.RateLimit)
	}
	if cfg.DatabaseURL != "" {
		t.Fatalf("expected no database URL by default, got %s", cfg.DatabaseURL)
	}
}

func TestLoad_PortOverride(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %s", cfg.Port)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	tests := []struct {
		name string
		port string
	}{
		{"not a number", "eighty-eighty"},
		{"zero", "0"},
		{"negative", "-1"},
		{"too large", "70000"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("PORT", tc.port)
			if _, err := config.Load(); err == nil {
				t.Fatalf("expected error for PORT=%q", tc.port)
			}
		})
	}
}

func TestLoad_DurationOverride(t *testing.T) {
	t.Setenv("HEARTBEAT_INTERVAL", "5s")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HeartbeatInterval != 5*time.Second {
		t.Fatalf("expected 5s heartbeat interval, got %s", cfg.HeartbeatInterval)
	}
}

func TestLoad_MalformedDurationFallsBack(t *testing.T) {
	t.Setenv("READ_TIMEOUT", "soon")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ReadTimeout != 5*time.Second {
		t.Fatalf("expected default read timeout 5s, got %s", cfg.ReadTimeout)
	}
}
