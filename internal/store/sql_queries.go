// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	createDevice = `INSERT INTO devices (device_id, name, public_key_pem)
    VALUES ($1, $2, $3)
    RETURNING device_id, name, public_key_pem, registered_at;`

	findDeviceByID = `SELECT device_id, name, public_key_pem, registered_at
    FROM devices
    WHERE device_id = $1;`

	insertBackup = `
		INSERT INTO backups (
			id,
			device_id,
			payload_ciphertext,
			payload_nonce,
			payload_tag,
			payload_aad,
			metadata_ciphertext,
			metadata_nonce,
			metadata_tag,
			metadata_aad,
			payload_hash,
			signature,
			version,
			deleted
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 1, false)
		RETURNING version, created_at, updated_at;`

	updateBackup = `
		UPDATE backups SET
			payload_ciphertext  = $1,
			payload_nonce       = $2,
			payload_tag         = $3,
			payload_aad         = $4,
			metadata_ciphertext = $5,
			metadata_nonce      = $6,
			metadata_tag        = $7,
			metadata_aad        = $8,
			payload_hash        = $9,
			signature           = $10,
			version             = version + 1,
			deleted             = false,
			updated_at          = NOW()
		WHERE id = $11 AND device_id = $12 AND version = $13
		RETURNING version, created_at, updated_at;`

	getAllBackupStates = `
		SELECT
			id,
			version,
			payload_hash,
			deleted,
			updated_at
		FROM backups
		WHERE device_id = $1;`

	softDeleteBackup = `
		UPDATE backups SET
			payload_ciphertext  = ''::bytea,
			payload_nonce       = ''::bytea,
			payload_tag         = ''::bytea,
			payload_aad         = ''::bytea,
			metadata_ciphertext = ''::bytea,
			metadata_nonce      = ''::bytea,
			metadata_tag        = ''::bytea,
			metadata_aad        = ''::bytea,
			signature           = ''::bytea,
			version             = version + 1,
			deleted             = true,
			updated_at          = NOW()
		WHERE id = $1 AND device_id = $2 AND deleted = false;`
)

// backupColumns is the canonical column order used by every SELECT that
// returns full backup records. Scan destinations must follow the same order.
var backupColumns = []string{
	"id",
	"device_id",
	"payload_ciphertext",
	"payload_nonce",
	"payload_tag",
	"payload_aad",
	"metadata_ciphertext",
	"metadata_nonce",
	"metadata_tag",
	"metadata_aad",
	"payload_hash",
	"signature",
	"version",
	"deleted",
	"created_at",
	"updated_at",
}

// buildSelectBackupsQuery builds the SELECT for backup records owned by a
// device. When backupIDs is non-empty an IN clause narrows the result to
// those identifiers; otherwise all of the device's records are returned,
// tombstones included.
func buildSelectBackupsQuery(_ context.Context, deviceID string, backupIDs []string) (string, []any, error) {
	builder := sq.Select(backupColumns...).
		From("backups").
		Where(sq.Eq{"device_id": deviceID}).
		PlaceholderFormat(sq.Dollar)

	if len(backupIDs) > 0 {
		builder = builder.Where(sq.Eq{"id": backupIDs})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectSingleBackupQuery builds the SELECT for one backup record
// identified by device and backup id.
func buildSelectSingleBackupQuery(_ context.Context, deviceID, backupID string) (string, []any, error) {
	query, args, err := sq.Select(backupColumns...).
		From("backups").
		Where(sq.Eq{"device_id": deviceID, "id": backupID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
