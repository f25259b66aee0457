package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
// Every field has a sensible default; the service runs with no environment
// set at all. DATABASE_URL is optional and gates the Postgres-backed
// features (readiness ping, heartbeat trail).
type Config struct {
	// Server
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// Database (empty DatabaseURL disables DB features)
	DatabaseURL string
	DBMaxConns  int32
	DBMinConns  int32

	// Request throttle: maximum requests per second across the server.
	// 0 disables throttling.
	RateLimit int

	// Per-check timeout for readiness probes.
	ProbeTimeout time.Duration

	// Heartbeat recorder tick interval.
	HeartbeatInterval time.Duration
}

func Load() (*Config, error) {
	port := getEnv("PORT", "8080")
	if err := validatePort(port); err != nil {
		return nil, err
	}

	return &Config{
		Port:            port,
		ReadTimeout:     getDuration("READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    getDuration("WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 30*time.Second),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBMaxConns:  int32(getInt("DB_MAX_CONNS", 10)),
		DBMinConns:  int32(getInt("DB_MIN_CONNS", 2)),

		RateLimit: getInt("RATE_LIMIT", 0),

		ProbeTimeout: getDuration("PROBE_TIMEOUT", 5*time.Second),

		HeartbeatInterval: getDuration("HEARTBEAT_INTERVAL", 30*time.Second),
	}, nil
}

// validatePort rejects anything that is not a TCP port number. The value
// stays in string form because http.Server wants ":"+port, but garbage
// should fail at startup with a clear message, not at bind time.
func validatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("PORT %q is not a number", port)
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("PORT %d is outside the valid range 1-65535", n)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
