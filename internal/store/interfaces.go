package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-zkeb/models"
)

// DeviceRepository persists device registrations: the device identifier, a
// human-readable name and the RSA public key used to verify login challenges
// and backup signatures.
type DeviceRepository interface {
	CreateDevice(ctx context.Context, device models.Device) (models.Device, error)
	FindDeviceByID(ctx context.Context, deviceID string) (models.Device, error)
}

// BackupRepository persists encrypted backup records. The server stores the
// envelopes opaquely; it never holds a key that could open them.
type BackupRepository interface {
	SaveBackup(ctx context.Context, backup models.BackupRecord) (models.BackupRecord, error)
	GetBackup(ctx context.Context, deviceID, backupID string) (models.BackupRecord, error)
	GetBackups(ctx context.Context, deviceID string, backupIDs []string) ([]models.BackupRecord, error)
	GetAllStates(ctx context.Context, deviceID string) ([]models.BackupState, error)
	DeleteBackup(ctx context.Context, deviceID, backupID string) error
}

// AgentCache is the agent's local mirror of the server-side backup state.
// The worker consults it between sync cycles to decide whether an upload is
// due without a network round-trip.
type AgentCache interface {
	UpsertState(ctx context.Context, state models.BackupState) error
	AllStates(ctx context.Context) ([]models.BackupState, error)
	SetLastSync(ctx context.Context, at time.Time) error
	LastSync(ctx context.Context) (time.Time, error)
	Close() error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
