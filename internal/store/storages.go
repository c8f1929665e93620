package store

import "github.com/MKhiriev/go-zkeb/internal/logger"

// Storages bundles the server-side repositories behind one constructor so
// the service layer receives a single dependency.
type Storages struct {
	DeviceRepository DeviceRepository
	BackupRepository BackupRepository
}

// NewStorages wires every repository to the shared database connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		DeviceRepository: NewDeviceRepository(db, log),
		BackupRepository: NewBackupRepository(db, log),
	}
}
