package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgHeartbeatRepository is the Postgres-backed HeartbeatRepository.
type PgHeartbeatRepository struct {
	pool *pgxpool.Pool
}

func NewPgHeartbeatRepository(pool *pgxpool.Pool) *PgHeartbeatRepository {
	return &PgHeartbeatRepository{pool: pool}
}

func (r *PgHeartbeatRepository) Record(ctx context.Context, hb Heartbeat) error {
	const q = `
		INSERT INTO heartbeats (instance_id, hostname, observed_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (instance_id)
		DO UPDATE SET hostname = EXCLUDED.hostname, observed_at = EXCLUDED.observed_at`

	if _, err := r.pool.Exec(ctx, q, hb.InstanceID, hb.Hostname, hb.ObservedAt); err != nil {
		return fmt.Errorf("record heartbeat: %w", err)
	}
	return nil
}

func (r *PgHeartbeatRepository) Latest(ctx context.Context) (*Heartbeat, error) {
	const q = `
		SELECT instance_id, hostname, observed_at
		FROM heartbeats
		ORDER BY observed_at DESC
		LIMIT 1`

	var hb Heartbeat
	err := r.pool.QueryRow(ctx, q).Scan(&hb.InstanceID, &hb.Hostname, &hb.ObservedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoHeartbeat
	}
	if err != nil {
		return nil, fmt.Errorf("load latest heartbeat: %w", err)
	}
	return &hb, nil
}
