package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/pulsekit/pulse/internal/api"
	"github.com/pulsekit/pulse/internal/config"
	"github.com/pulsekit/pulse/internal/db"
	"github.com/pulsekit/pulse/internal/metrics"
	"github.com/pulsekit/pulse/internal/probe"
	"github.com/pulsekit/pulse/internal/repository"
	"github.com/pulsekit/pulse/internal/worker"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync() //nolint:errcheck

	// ---- configuration ----
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	instanceID := uuid.New().String()
	startedAt := time.Now()

	// ---- core dependencies ----
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	probes := probe.NewRegistry(cfg.ProbeTimeout)

	// ---- database (optional) ----
	// Without DATABASE_URL the service is purely in-process: liveness and
	// readiness both answer from memory, and no heartbeat trail is kept.
	ctx := context.Background()
	var repo repository.HeartbeatRepository
	var recorder *worker.HeartbeatRecorder

	workerCtx, cancelWorkers := context.WithCancel(ctx)
	defer cancelWorkers()

	if cfg.DatabaseURL != "" {
		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		defer pool.Close()

		if err := db.Migrate(cfg.DatabaseURL); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
		logger.Info("database migrations applied")

		probes.Register(probe.NewDBChecker(pool))
		repo = repository.NewPgHeartbeatRepository(pool)

		onRecorded, onFailed := m.HeartbeatHooks()
		recorder = worker.NewHeartbeatRecorder(repo, instanceID, cfg.HeartbeatInterval, worker.MetricHooks{
			OnRecorded: onRecorded,
			OnFailed:   onFailed,
		}, logger)
		recorder.Start(workerCtx)
	}

	// ---- HTTP server ----
	router := api.NewRouter(api.Deps{
		InstanceID: instanceID,
		StartedAt:  startedAt,
		Probes:     probes,
		Repo:       repo,
		Metrics:    m,
		Registry:   reg,
		RateLimit:  cfg.RateLimit,
		Logger:     logger,
	})
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start server in a goroutine so it does not block the shutdown listener.
	go func() {
		logger.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("instance_id", instanceID),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// ---- graceful shutdown ----
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutdown signal received")

	// 1. Stop accepting new HTTP requests.
	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	// 2. Stop the heartbeat recorder and wait for its in-flight tick.
	cancelWorkers()
	if recorder != nil {
		recorder.Wait()
	}

	logger.Info("server stopped cleanly")
}
