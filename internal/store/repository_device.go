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

// deviceRepository is the PostgreSQL-backed implementation of
// [DeviceRepository]. It handles device registration and lookup against the
// "devices" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type deviceRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDeviceRepository constructs a [DeviceRepository] backed by the provided
// database connection and logger.
func NewDeviceRepository(db *DB, logger *logger.Logger) DeviceRepository {
	logger.Debug().Msg("creating device repository")
	return &deviceRepository{
		db:     db,
		logger: logger,
	}
}

// CreateDevice persists a new device record and returns the fully populated
// [models.Device] with the server-assigned RegisteredAt timestamp.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrDeviceAlreadyRegistered].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *deviceRepository) CreateDevice(ctx context.Context, device models.Device) (models.Device, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createDevice, device.DeviceID, device.Name, device.PublicKeyPEM)

	// create device in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*deviceRepository.CreateDevice").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Device{}, ErrDeviceAlreadyRegistered
		default:
			return models.Device{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved device from db
	if err := row.Scan(&device.DeviceID, &device.Name, &device.PublicKeyPEM, &device.RegisteredAt); err != nil {
		log.Err(err).Str("func", "*deviceRepository.CreateDevice").Msg("error: scanning error")
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Device{}, ErrDeviceAlreadyRegistered
		}
		return models.Device{}, err
	}

	return device, nil
}

// FindDeviceByID retrieves the device record whose identifier matches
// deviceID.
//
// Error handling:
//   - No matching row → [ErrDeviceNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *deviceRepository) FindDeviceByID(ctx context.Context, deviceID string) (models.Device, error) {
	log := logger.FromContext(ctx)

	var foundDevice models.Device
	row := r.db.QueryRowContext(ctx, findDeviceByID, deviceID)

	// find device by id
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*deviceRepository.FindDeviceByID").Msg("error: row is nil")
		return models.Device{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan found device from db
	if err := row.Scan(&foundDevice.DeviceID, &foundDevice.Name, &foundDevice.PublicKeyPEM, &foundDevice.RegisteredAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Device{}, ErrDeviceNotFound
		}
		log.Err(err).Str("func", "*deviceRepository.FindDeviceByID").Msg("error: scanning error")
		return models.Device{}, err
	}

	return foundDevice, nil
}
