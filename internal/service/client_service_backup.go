package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/MKhiriev/go-zkeb/internal/adapter"
	"github.com/MKhiriev/go-zkeb/internal/crypto"
	"github.com/MKhiriev/go-zkeb/internal/logger"
	"github.com/MKhiriev/go-zkeb/internal/signing"
	"github.com/MKhiriev/go-zkeb/internal/store"
	"github.com/MKhiriev/go-zkeb/internal/utils"
	"github.com/MKhiriev/go-zkeb/models"
)

// agentBackupService implements AgentBackupService. Keys are re-derived from
// the user master key on every operation and never cached; only envelopes,
// hashes and signatures leave the device.
type agentBackupService struct {
	identity *AgentIdentity
	server   adapter.ServerAdapter
	cache    store.AgentCache

	keychain crypto.KeyChainService
	cipher   crypto.EnvelopeCipher

	logger *logger.Logger
}

// NewAgentBackupService constructs an AgentBackupService for the given
// identity.
func NewAgentBackupService(identity *AgentIdentity, server adapter.ServerAdapter, cache store.AgentCache, keychain crypto.KeyChainService, cipher crypto.EnvelopeCipher, logger *logger.Logger) AgentBackupService {
	return &agentBackupService{
		identity: identity,
		server:   server,
		cache:    cache,
		keychain: keychain,
		cipher:   cipher,
		logger:   logger,
	}
}

// CreateBackup seals and uploads a new backup snapshot.
func (b *agentBackupService) CreateBackup(ctx context.Context, payload []byte, metadata string) (models.BackupRecord, error) {
	return b.sealAndUpload(ctx, utils.NewUUID(), 0, payload, metadata)
}

// UpdateBackup re-seals an existing backup and uploads it under the version
// the caller last saw.
func (b *agentBackupService) UpdateBackup(ctx context.Context, backupID string, version int64, payload []byte, metadata string) (models.BackupRecord, error) {
	return b.sealAndUpload(ctx, backupID, version, payload, metadata)
}

// RestoreBackup downloads, verifies and opens one backup.
//
// The ciphertext hash is checked before any decryption; the envelopes are
// then opened with keys re-derived from the user master key, so the GCM tags
// provide the authenticity guarantee.
func (b *agentBackupService) RestoreBackup(ctx context.Context, backupID string) ([]byte, string, error) {
	log := logger.FromContext(ctx)

	backup, err := b.server.DownloadBackup(ctx, backupID)
	if err != nil {
		log.Err(err).Str("backup_id", backupID).Msg("backup download failed")
		return nil, "", fmt.Errorf("backup download failed: %w", err)
	}

	digest := sha256.Sum256(backup.Payload.Ciphertext)
	if hex.EncodeToString(digest[:]) != backup.PayloadHash {
		log.Error().Str("backup_id", backupID).Msg("payload hash does not match ciphertext")
		return nil, "", ErrHashMismatch
	}

	_, keys, err := b.keychain.DeriveKeysFromUMK(b.identity.UMK, b.identity.DeviceID)
	if err != nil {
		log.Err(err).Msg("key derivation failed")
		return nil, "", fmt.Errorf("key derivation failed: %w", err)
	}

	payload, err := b.cipher.Decrypt(backup.Payload.ToEnvelope(), keys.BEK)
	if err != nil {
		log.Err(err).Str("backup_id", backupID).Msg("payload decryption failed")
		return nil, "", fmt.Errorf("payload decryption failed: %w", err)
	}

	metadata, err := b.cipher.DecryptString(backup.Metadata.ToEnvelope(), keys.MEK)
	if err != nil {
		log.Err(err).Str("backup_id", backupID).Msg("metadata decryption failed")
		return nil, "", fmt.Errorf("metadata decryption failed: %w", err)
	}

	return payload, metadata, nil
}

// DeleteBackup removes one backup on the server and mirrors the tombstone
// into the local cache.
func (b *agentBackupService) DeleteBackup(ctx context.Context, backupID string) error {
	log := logger.FromContext(ctx)

	if err := b.server.DeleteBackup(ctx, backupID); err != nil {
		log.Err(err).Str("backup_id", backupID).Msg("backup delete failed")
		return fmt.Errorf("backup delete failed: %w", err)
	}

	tombstone := models.BackupState{ID: backupID, Deleted: true, UpdatedAt: time.Now()}
	if err := b.cache.UpsertState(ctx, tombstone); err != nil {
		log.Err(err).Str("backup_id", backupID).Msg("cache tombstone write failed")
		return fmt.Errorf("cache tombstone write failed: %w", err)
	}

	return nil
}

// FullSync mirrors the server-side state of every backup into the local
// cache.
func (b *agentBackupService) FullSync(ctx context.Context) error {
	log := logger.FromContext(ctx)

	resp, err := b.server.SyncStates(ctx)
	if err != nil {
		log.Err(err).Msg("sync states request failed")
		return fmt.Errorf("sync states request failed: %w", err)
	}

	for _, state := range resp.BackupStates {
		if err = b.cache.UpsertState(ctx, state); err != nil {
			log.Err(err).Str("backup_id", state.ID).Msg("cache state write failed")
			return fmt.Errorf("cache state write failed: %w", err)
		}
	}

	if err = b.cache.SetLastSync(ctx, time.Now()); err != nil {
		log.Err(err).Msg("cache last sync write failed")
		return fmt.Errorf("cache last sync write failed: %w", err)
	}

	log.Info().Int("states", resp.Length).Msg("full sync completed")

	return nil
}

// sealAndUpload is the shared create/update path: derive keys, seal both
// envelopes with the backup id as associated data, hash, sign, upload, and
// mirror the resulting state into the cache.
func (b *agentBackupService) sealAndUpload(ctx context.Context, backupID string, version int64, payload []byte, metadata string) (models.BackupRecord, error) {
	log := logger.FromContext(ctx)

	_, keys, err := b.keychain.DeriveKeysFromUMK(b.identity.UMK, b.identity.DeviceID)
	if err != nil {
		log.Err(err).Msg("key derivation failed")
		return models.BackupRecord{}, fmt.Errorf("key derivation failed: %w", err)
	}

	// the backup id rides along as associated data, binding each envelope
	// to the record it belongs to
	aad := []byte(backupID)

	payloadEnv, err := b.cipher.Encrypt(payload, keys.BEK, aad)
	if err != nil {
		log.Err(err).Str("backup_id", backupID).Msg("payload encryption failed")
		return models.BackupRecord{}, fmt.Errorf("payload encryption failed: %w", err)
	}

	metadataEnv, err := b.cipher.EncryptString(metadata, keys.MEK, aad)
	if err != nil {
		log.Err(err).Str("backup_id", backupID).Msg("metadata encryption failed")
		return models.BackupRecord{}, fmt.Errorf("metadata encryption failed: %w", err)
	}

	digest := sha256.Sum256(payloadEnv.Ciphertext)
	signature, err := signing.SignDigest(b.identity.PrivateKey, digest[:])
	if err != nil {
		log.Err(err).Str("backup_id", backupID).Msg("payload signing failed")
		return models.BackupRecord{}, fmt.Errorf("payload signing failed: %w", err)
	}

	record := models.BackupRecord{
		ID:          backupID,
		DeviceID:    b.identity.DeviceID,
		Payload:     models.NewEncryptionEnvelope(payloadEnv),
		Metadata:    models.NewEncryptionEnvelope(metadataEnv),
		PayloadHash: hex.EncodeToString(digest[:]),
		Signature:   signature,
		Version:     version,
	}

	saved, err := b.server.UploadBackup(ctx, record)
	if err != nil {
		log.Err(err).Str("backup_id", backupID).Msg("backup upload failed")
		return models.BackupRecord{}, fmt.Errorf("backup upload failed: %w", err)
	}

	state := models.BackupState{
		ID:          saved.ID,
		Version:     saved.Version,
		PayloadHash: saved.PayloadHash,
		Deleted:     saved.Deleted,
		UpdatedAt:   saved.UpdatedAt,
	}
	if err = b.cache.UpsertState(ctx, state); err != nil {
		log.Err(err).Str("backup_id", saved.ID).Msg("cache state write failed")
		return models.BackupRecord{}, fmt.Errorf("cache state write failed: %w", err)
	}

	return saved, nil
}
