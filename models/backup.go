// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// BackupRecord is one encrypted backup snapshot as stored on the server.
// Payload is sealed under the device's BEK and Metadata under its MEK; the
// server can verify the signature against the device's registered public
// key but can decrypt neither envelope.
type BackupRecord struct {
	// ID is the server-assigned backup identifier (UUID).
	ID string `json:"id"`

	// DeviceID identifies the device that produced the snapshot.
	DeviceID string `json:"device_id"`

	// Payload is the backup body, encrypted with the device's BEK.
	Payload EncryptionEnvelope `json:"payload"`

	// Metadata is the backup description (names, sizes, timestamps),
	// encrypted with the device's MEK so it stays private too.
	Metadata EncryptionEnvelope `json:"metadata"`

	// PayloadHash is the hex SHA-256 of Payload.Ciphertext. It is what the
	// device signs and what the server indexes for integrity checks.
	PayloadHash string `json:"payload_hash"`

	// Signature is the device's RSA-PSS signature over PayloadHash's raw
	// digest bytes.
	Signature []byte `json:"signature"`

	// Version increments on every overwrite of the same backup ID.
	Version int64 `json:"version"`

	// Deleted marks a soft-deleted record; the ciphertext is dropped but
	// the tombstone survives for sync.
	Deleted bool `json:"deleted"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BackupState is the lightweight descriptor the sync endpoint returns for
// every backup of a device: enough to decide whether a full download or a
// fresh upload is needed, without moving ciphertext around.
type BackupState struct {
	ID          string    `json:"id"`
	Version     int64     `json:"version"`
	PayloadHash string    `json:"payload_hash"`
	Deleted     bool      `json:"deleted"`
	UpdatedAt   time.Time `json:"updated_at"`
}
