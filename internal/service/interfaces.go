package service

import (
	"context"

	"github.com/MKhiriev/go-zkeb/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService handles device enrollment and challenge-response login. The
// server never stores a password: a device proves its identity by signing a
// single-use challenge with the private key whose public half was registered
// at enrollment.
type AuthService interface {
	// RegisterDevice creates a device record from the request. The public
	// key must be a valid PKIX PEM RSA key.
	RegisterDevice(ctx context.Context, req models.RegisterDeviceRequest) (models.Device, error)

	// IssueChallenge hands out a fresh single-use random challenge for the
	// device. Challenges expire after a short interval.
	IssueChallenge(ctx context.Context, deviceID string) (models.DeviceChallenge, error)

	// Login verifies the RSA-PSS signature over the issued challenge and, on
	// success, returns a signed JWT for the device. The challenge is
	// consumed whether or not verification succeeds.
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)

	// ParseToken validates a JWT string and returns the token with the
	// device identifier extracted from the subject claim.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// BackupService handles encrypted backup storage for authenticated devices.
// Every record passes an integrity gate before it is persisted: the payload
// hash must match the ciphertext, and the signature must verify against the
// device's registered public key.
type BackupService interface {
	// UploadBackup verifies and persists one backup record on behalf of
	// deviceID. A record with Version 0 is a first upload; any other version
	// is an optimistic-locking overwrite.
	UploadBackup(ctx context.Context, deviceID string, backup models.BackupRecord) (models.BackupRecord, error)

	// DownloadBackup returns one backup record, tombstones included.
	DownloadBackup(ctx context.Context, deviceID, backupID string) (models.BackupRecord, error)

	// DownloadBackups returns the device's backup records, optionally
	// narrowed to the given identifiers.
	DownloadBackups(ctx context.Context, deviceID string, backupIDs []string) ([]models.BackupRecord, error)

	// SyncStates returns lightweight state descriptors for every backup the
	// device owns.
	SyncStates(ctx context.Context, deviceID string) (models.SyncResponse, error)

	// DeleteBackup soft-deletes one backup, leaving a tombstone for sync.
	DeleteBackup(ctx context.Context, deviceID, backupID string) error
}
