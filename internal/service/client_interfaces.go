package service

import (
	"context"

	"github.com/MKhiriev/go-zkeb/models"
)

// AgentAuthService defines the agent-side contract for device enrollment and
// challenge-response authentication against the backup server.
type AgentAuthService interface {
	// Enroll registers this device with the server: it encodes the device's
	// RSA public key as PKIX PEM and sends it together with the device
	// identifier and name. Safe to call when already enrolled; the server's
	// conflict answer is returned as an error the caller can ignore.
	Enroll(ctx context.Context) (models.Device, error)

	// Login performs the challenge-response round trip: request a
	// challenge, sign its SHA-256 digest with the device private key, and
	// exchange the signature for a bearer token. The token is stored in the
	// server adapter for subsequent requests.
	Login(ctx context.Context) (models.Token, error)
}

// AgentBackupService defines the agent-side contract for producing,
// restoring and synchronising encrypted backups. All encryption happens
// here, on the device: the server only ever sees sealed envelopes.
type AgentBackupService interface {
	// CreateBackup derives the device keys from the user master key, seals
	// payload under the BEK and metadata under the MEK, signs the payload
	// ciphertext digest, and uploads the record. Returns the record with
	// server-assigned fields filled in.
	CreateBackup(ctx context.Context, payload []byte, metadata string) (models.BackupRecord, error)

	// UpdateBackup re-seals and re-uploads an existing backup under its
	// current version, so the server's optimistic-locking check can detect
	// concurrent writers.
	UpdateBackup(ctx context.Context, backupID string, version int64, payload []byte, metadata string) (models.BackupRecord, error)

	// RestoreBackup downloads one backup, checks the ciphertext hash, and
	// opens both envelopes with keys re-derived from the user master key.
	RestoreBackup(ctx context.Context, backupID string) (payload []byte, metadata string, err error)

	// DeleteBackup soft-deletes one backup on the server and mirrors the
	// tombstone into the local cache.
	DeleteBackup(ctx context.Context, backupID string) error

	// FullSync fetches the server-side state of every backup and mirrors it
	// into the local cache, recording the sync time.
	FullSync(ctx context.Context) error
}
