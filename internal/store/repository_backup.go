package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-zkeb/internal/logger"
	"github.com/MKhiriev/go-zkeb/models"
	"github.com/jackc/pgerrcode"
)

// backupRepository is the PostgreSQL-backed implementation of
// [BackupRepository]. It executes all backup CRUD operations directly
// against the "backups" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (device_id, backup_id, version).
type backupRepository struct {
	*DB
	logger *logger.Logger
}

// NewBackupRepository constructs a [BackupRepository] backed by the provided
// database connection and logger.
func NewBackupRepository(db *DB, logger *logger.Logger) BackupRepository {
	return &backupRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveBackup persists one backup record and returns it with server-assigned
// fields (Version, CreatedAt, UpdatedAt) filled in.
//
// A record with Version 0 is treated as a first upload and inserted at
// version 1. Any other Version is treated as an overwrite guarded by an
// optimistic-locking check: the UPDATE only matches when the stored version
// equals the version the client last saw, and bumps it by one.
//
// Error handling:
//   - PostgreSQL unique_violation on insert → [ErrVersionConflict] (another
//     upload won the race for this backup id).
//   - UPDATE matching no row → [ErrVersionConflict].
//   - Any other driver-level error → wrapped with [ErrExecutingStatement].
func (b *backupRepository) SaveBackup(ctx context.Context, backup models.BackupRecord) (models.BackupRecord, error) {
	log := logger.FromContext(ctx)

	var row *sql.Row
	if backup.Version == 0 {
		row = b.DB.QueryRowContext(ctx, insertBackup,
			backup.ID,
			backup.DeviceID,
			backup.Payload.Ciphertext,
			backup.Payload.Nonce,
			backup.Payload.Tag,
			backup.Payload.AssociatedData,
			backup.Metadata.Ciphertext,
			backup.Metadata.Nonce,
			backup.Metadata.Tag,
			backup.Metadata.AssociatedData,
			backup.PayloadHash,
			backup.Signature,
		)
	} else {
		row = b.DB.QueryRowContext(ctx, updateBackup,
			backup.Payload.Ciphertext,
			backup.Payload.Nonce,
			backup.Payload.Tag,
			backup.Payload.AssociatedData,
			backup.Metadata.Ciphertext,
			backup.Metadata.Nonce,
			backup.Metadata.Tag,
			backup.Metadata.AssociatedData,
			backup.PayloadHash,
			backup.Signature,
			backup.ID,
			backup.DeviceID,
			backup.Version,
		)
	}

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "backupRepository.SaveBackup").
			Str("device_id", backup.DeviceID).
			Str("backup_id", backup.ID).
			Msg("failed to execute backup save statement")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.BackupRecord{}, ErrVersionConflict
		}
		return models.BackupRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := row.Scan(&backup.Version, &backup.CreatedAt, &backup.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// the optimistic-lock predicate matched nothing
			return models.BackupRecord{}, ErrVersionConflict
		}
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.BackupRecord{}, ErrVersionConflict
		}
		log.Err(err).
			Str("func", "backupRepository.SaveBackup").
			Str("device_id", backup.DeviceID).
			Str("backup_id", backup.ID).
			Msg("failed to scan saved backup row")
		return models.BackupRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	backup.Deleted = false

	return backup, nil
}

// GetBackup retrieves one backup record identified by device and backup id,
// tombstones included.
//
// Returns [ErrBackupNotFound] when no matching row exists.
func (b *backupRepository) GetBackup(ctx context.Context, deviceID, backupID string) (models.BackupRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSingleBackupQuery(ctx, deviceID, backupID)
	if err != nil {
		log.Err(err).
			Str("func", "backupRepository.GetBackup").
			Str("device_id", deviceID).
			Msg("failed to create query")
		return models.BackupRecord{}, err
	}

	row := b.DB.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).
			Str("func", "backupRepository.GetBackup").
			Str("device_id", deviceID).
			Str("backup_id", backupID).
			Msg("failed to execute query for getting backup")
		return models.BackupRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	backup, err := scanBackupRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BackupRecord{}, ErrBackupNotFound
		}
		log.Err(err).
			Str("func", "backupRepository.GetBackup").
			Str("device_id", deviceID).
			Str("backup_id", backupID).
			Msg("failed to scan backup row")
		return models.BackupRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return backup, nil
}

// GetBackups retrieves backup records owned by the given device.
//
// When backupIDs is non-empty, an IN-clause narrows the result to those
// identifiers only; otherwise every record the device owns is returned,
// tombstones included. Returns an empty slice when nothing matches.
func (b *backupRepository) GetBackups(ctx context.Context, deviceID string, backupIDs []string) ([]models.BackupRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBackupsQuery(ctx, deviceID, backupIDs)
	if err != nil {
		log.Err(err).
			Str("func", "backupRepository.GetBackups").
			Str("device_id", deviceID).
			Msg("failed to create query")
		return nil, err
	}

	rows, err := b.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "backupRepository.GetBackups").
			Str("device_id", deviceID).
			Int("backup ids count", len(backupIDs)).
			Msg("failed to execute query for getting requested backups")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.BackupRecord, 0, 50)

	for rows.Next() {
		backup, scanErr := scanBackupRow(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "backupRepository.GetBackups").
				Str("device_id", deviceID).
				Msg("failed to scan backup row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, backup)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "backupRepository.GetBackups").
			Str("device_id", deviceID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// GetAllStates returns lightweight [models.BackupState] descriptors for
// every backup owned by the given device.
//
// The result contains only identity and change-detection fields
// (ID, Version, PayloadHash, Deleted, UpdatedAt) — no ciphertext. This is
// the method backing the sync endpoint.
func (b *backupRepository) GetAllStates(ctx context.Context, deviceID string) ([]models.BackupState, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := b.DB.QueryContext(ctx, getAllBackupStates, deviceID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "backupRepository.GetAllStates").
			Str("device_id", deviceID).
			Msg("failed to execute query for getting backup states")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	states := make([]models.BackupState, 0, 50)

	for rows.Next() {
		var state models.BackupState

		scanErr := rows.Scan(
			&state.ID,
			&state.Version,
			&state.PayloadHash,
			&state.Deleted,
			&state.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "backupRepository.GetAllStates").
				Str("device_id", deviceID).
				Msg("failed to scan backup state row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		states = append(states, state)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "backupRepository.GetAllStates").
			Str("device_id", deviceID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return states, nil
}

// DeleteBackup soft-deletes one backup: ciphertext and signature columns are
// blanked, the version is bumped, and the tombstone row survives so other
// sessions of the device learn about the deletion on their next sync.
//
// Returns [ErrBackupNotFound] when the record does not exist or was already
// deleted.
func (b *backupRepository) DeleteBackup(ctx context.Context, deviceID, backupID string) error {
	log := logger.FromContext(ctx)

	result, err := b.DB.ExecContext(ctx, softDeleteBackup, backupID, deviceID)
	if err != nil {
		log.Err(err).
			Str("func", "backupRepository.DeleteBackup").
			Str("device_id", deviceID).
			Str("backup_id", backupID).
			Msg("failed to execute backup delete statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if rowsAffected == 0 {
		return ErrBackupNotFound
	}

	return nil
}

// scanBackupRow scans one full backup row using the canonical
// [backupColumns] order. The scan argument abstracts over *sql.Row and
// *sql.Rows.
func scanBackupRow(scan func(dest ...any) error) (models.BackupRecord, error) {
	var backup models.BackupRecord

	err := scan(
		&backup.ID,
		&backup.DeviceID,
		&backup.Payload.Ciphertext,
		&backup.Payload.Nonce,
		&backup.Payload.Tag,
		&backup.Payload.AssociatedData,
		&backup.Metadata.Ciphertext,
		&backup.Metadata.Nonce,
		&backup.Metadata.Tag,
		&backup.Metadata.AssociatedData,
		&backup.PayloadHash,
		&backup.Signature,
		&backup.Version,
		&backup.Deleted,
		&backup.CreatedAt,
		&backup.UpdatedAt,
	)
	if err != nil {
		return models.BackupRecord{}, err
	}

	return backup, nil
}
