package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-zkeb/internal/logger"
	"github.com/MKhiriev/go-zkeb/internal/signing"
	"github.com/MKhiriev/go-zkeb/internal/store"
	"github.com/MKhiriev/go-zkeb/models"
)

// backupService is the concrete implementation of BackupService. It never
// touches plaintext: envelopes pass through opaquely, and the only
// cryptographic work on the server side is hash recomputation and RSA-PSS
// signature verification against the device's registered public key.
type backupService struct {
	backupRepository store.BackupRepository
	deviceRepository store.DeviceRepository

	logger *logger.Logger
}

// NewBackupService constructs a BackupService wired to the given
// repositories.
func NewBackupService(backupRepository store.BackupRepository, deviceRepository store.DeviceRepository, logger *logger.Logger) BackupService {
	return &backupService{
		backupRepository: backupRepository,
		deviceRepository: deviceRepository,
		logger:           logger,
	}
}

// UploadBackup verifies and persists one backup record.
//
// Verification gates, in order:
//  1. The record's DeviceID must match the authenticated device
//     (ErrDeviceMismatch).
//  2. The envelopes must carry ciphertext, nonce and tag
//     (ErrInvalidDataProvided).
//  3. PayloadHash must equal the hex SHA-256 of the payload ciphertext
//     (ErrHashMismatch).
//  4. Signature must be a valid RSA-PSS signature over the raw digest bytes
//     by the device's registered key (ErrSignatureVerification).
//
// Only then is the record handed to the repository, which enforces the
// version discipline (see store.ErrVersionConflict).
func (b *backupService) UploadBackup(ctx context.Context, deviceID string, backup models.BackupRecord) (models.BackupRecord, error) {
	log := logger.FromContext(ctx)

	if backup.DeviceID == "" {
		backup.DeviceID = deviceID
	}
	if backup.DeviceID != deviceID {
		log.Error().
			Str("device_id", deviceID).
			Str("backup_device_id", backup.DeviceID).
			Msg("backup does not belong to authenticated device")
		return models.BackupRecord{}, ErrDeviceMismatch
	}

	if strings.TrimSpace(backup.ID) == "" {
		log.Error().Str("device_id", deviceID).Msg("blank backup id provided")
		return models.BackupRecord{}, ErrInvalidDataProvided
	}
	if !envelopeComplete(backup.Payload) || !envelopeComplete(backup.Metadata) {
		log.Error().
			Str("device_id", deviceID).
			Str("backup_id", backup.ID).
			Msg("incomplete encryption envelope provided")
		return models.BackupRecord{}, ErrInvalidDataProvided
	}

	digest := sha256.Sum256(backup.Payload.Ciphertext)
	if hex.EncodeToString(digest[:]) != backup.PayloadHash {
		log.Error().
			Str("device_id", deviceID).
			Str("backup_id", backup.ID).
			Msg("payload hash does not match ciphertext")
		return models.BackupRecord{}, ErrHashMismatch
	}

	device, err := b.deviceRepository.FindDeviceByID(ctx, deviceID)
	if err != nil {
		log.Err(err).Str("device_id", deviceID).Msg("device lookup failed")
		return models.BackupRecord{}, fmt.Errorf("device lookup failed: %w", err)
	}

	publicKey, err := signing.DecodePublicKey(device.PublicKeyPEM)
	if err != nil {
		log.Err(err).Str("device_id", deviceID).Msg("stored public key is invalid")
		return models.BackupRecord{}, fmt.Errorf("stored public key is invalid: %w", err)
	}

	if err = signing.VerifyDigest(publicKey, digest[:], backup.Signature); err != nil {
		log.Err(err).
			Str("device_id", deviceID).
			Str("backup_id", backup.ID).
			Msg("backup signature verification failed")
		return models.BackupRecord{}, fmt.Errorf("%w: %w", ErrSignatureVerification, err)
	}

	saved, err := b.backupRepository.SaveBackup(ctx, backup)
	if err != nil {
		log.Err(err).
			Str("device_id", deviceID).
			Str("backup_id", backup.ID).
			Msg("backup save failed")
		return models.BackupRecord{}, fmt.Errorf("backup save failed: %w", err)
	}

	return saved, nil
}

// DownloadBackup returns one backup record, tombstones included, so a
// client can distinguish "deleted" from "never existed".
func (b *backupService) DownloadBackup(ctx context.Context, deviceID, backupID string) (models.BackupRecord, error) {
	log := logger.FromContext(ctx)

	backup, err := b.backupRepository.GetBackup(ctx, deviceID, backupID)
	if err != nil {
		log.Err(err).
			Str("device_id", deviceID).
			Str("backup_id", backupID).
			Msg("backup lookup failed")
		return models.BackupRecord{}, fmt.Errorf("backup lookup failed: %w", err)
	}

	return backup, nil
}

// DownloadBackups returns the device's backup records, optionally narrowed
// to backupIDs.
func (b *backupService) DownloadBackups(ctx context.Context, deviceID string, backupIDs []string) ([]models.BackupRecord, error) {
	log := logger.FromContext(ctx)

	backups, err := b.backupRepository.GetBackups(ctx, deviceID, backupIDs)
	if err != nil {
		log.Err(err).
			Str("device_id", deviceID).
			Msg("backups lookup failed")
		return nil, fmt.Errorf("backups lookup failed: %w", err)
	}

	return backups, nil
}

// SyncStates returns the state descriptors for every backup the device owns.
func (b *backupService) SyncStates(ctx context.Context, deviceID string) (models.SyncResponse, error) {
	log := logger.FromContext(ctx)

	states, err := b.backupRepository.GetAllStates(ctx, deviceID)
	if err != nil {
		log.Err(err).
			Str("device_id", deviceID).
			Msg("backup states lookup failed")
		return models.SyncResponse{}, fmt.Errorf("backup states lookup failed: %w", err)
	}

	return models.SyncResponse{BackupStates: states, Length: len(states)}, nil
}

// DeleteBackup soft-deletes one backup, leaving a tombstone.
func (b *backupService) DeleteBackup(ctx context.Context, deviceID, backupID string) error {
	log := logger.FromContext(ctx)

	if err := b.backupRepository.DeleteBackup(ctx, deviceID, backupID); err != nil {
		log.Err(err).
			Str("device_id", deviceID).
			Str("backup_id", backupID).
			Msg("backup delete failed")
		return fmt.Errorf("backup delete failed: %w", err)
	}

	return nil
}

// envelopeComplete reports whether an envelope carries the three fields
// every sealed record must have. Associated data is optional.
func envelopeComplete(env models.EncryptionEnvelope) bool {
	return len(env.Ciphertext) > 0 && len(env.Nonce) > 0 && len(env.Tag) > 0
}
