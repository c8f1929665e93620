// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-zkeb/internal/config"
	"github.com/MKhiriev/go-zkeb/internal/logger"
	"github.com/MKhiriev/go-zkeb/models"
)

const (
	createCacheSchema = `
		CREATE TABLE IF NOT EXISTS backup_states (
			id           TEXT PRIMARY KEY,
			version      INTEGER NOT NULL,
			payload_hash TEXT NOT NULL,
			deleted      INTEGER NOT NULL DEFAULT 0,
			updated_at   TIMESTAMP NOT NULL
		);
		CREATE TABLE IF NOT EXISTS sync_meta (
			key   TEXT PRIMARY KEY,
			value TIMESTAMP NOT NULL
		);`

	upsertCachedState = `
		INSERT INTO backup_states (id, version, payload_hash, deleted, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT(id) DO UPDATE SET
			version      = excluded.version,
			payload_hash = excluded.payload_hash,
			deleted      = excluded.deleted,
			updated_at   = excluded.updated_at;`

	selectCachedStates = `
		SELECT id, version, payload_hash, deleted, updated_at
		FROM backup_states;`

	upsertLastSync = `
		INSERT INTO sync_meta (key, value)
		VALUES ('last_sync', $1)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value;`

	selectLastSync = `
		SELECT value FROM sync_meta WHERE key = 'last_sync';`
)

// agentCache is the SQLite-backed implementation of [AgentCache]. It mirrors
// the server-side backup states on the device so the sync worker can plan
// its next cycle offline.
type agentCache struct {
	db     *DB
	logger *logger.Logger
}

// NewAgentCache opens (and on first run bootstraps) the agent's local SQLite
// cache.
func NewAgentCache(ctx context.Context, cfg config.Agent, log *logger.Logger) (AgentCache, error) {
	db, err := NewConnectSQLite(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if _, err = db.ExecContext(ctx, createCacheSchema); err != nil {
		log.Err(err).Str("func", "NewAgentCache").Msg("error bootstrapping cache schema")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return &agentCache{db: db, logger: log}, nil
}

// UpsertState records the latest known server-side state of one backup.
func (c *agentCache) UpsertState(ctx context.Context, state models.BackupState) error {
	log := logger.FromContext(ctx)

	_, err := c.db.ExecContext(ctx, upsertCachedState,
		state.ID, state.Version, state.PayloadHash, state.Deleted, state.UpdatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "agentCache.UpsertState").
			Str("backup_id", state.ID).
			Msg("failed to upsert cached backup state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// AllStates returns every cached backup state, tombstones included.
func (c *agentCache) AllStates(ctx context.Context) ([]models.BackupState, error) {
	log := logger.FromContext(ctx)

	rows, err := c.db.QueryContext(ctx, selectCachedStates)
	if err != nil {
		log.Err(err).Str("func", "agentCache.AllStates").Msg("failed to query cached backup states")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	states := make([]models.BackupState, 0, 16)

	for rows.Next() {
		var state models.BackupState
		if scanErr := rows.Scan(&state.ID, &state.Version, &state.PayloadHash, &state.Deleted, &state.UpdatedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "agentCache.AllStates").Msg("failed to scan cached backup state")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		states = append(states, state)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return states, nil
}

// SetLastSync records the wall-clock time of the last completed sync cycle.
func (c *agentCache) SetLastSync(ctx context.Context, at time.Time) error {
	if _, err := c.db.ExecContext(ctx, upsertLastSync, at); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// LastSync returns the time of the last completed sync cycle. The zero time
// with a nil error means the agent has never synced.
func (c *agentCache) LastSync(ctx context.Context) (time.Time, error) {
	var at time.Time
	err := c.db.QueryRowContext(ctx, selectLastSync).Scan(&at)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return at, nil
}

// Close releases the underlying SQLite handle.
func (c *agentCache) Close() error {
	return c.db.Close()
}
