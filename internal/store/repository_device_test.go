package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-zkeb/internal/logger"
	"github.com/MKhiriev/go-zkeb/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

var deviceColumns = []string{"device_id", "name", "public_key_pem", "registered_at"}

func TestCreateDevice(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewDeviceRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO devices")).
			WithArgs("device-1", "work laptop", "-----BEGIN PUBLIC KEY-----").
			WillReturnRows(sqlmock.NewRows(deviceColumns).
				AddRow("device-1", "work laptop", "-----BEGIN PUBLIC KEY-----", now))

		got, err := repo.CreateDevice(testContext(), models.Device{
			DeviceID:     "device-1",
			Name:         "work laptop",
			PublicKeyPEM: "-----BEGIN PUBLIC KEY-----",
		})
		require.NoError(t, err)
		assert.Equal(t, "device-1", got.DeviceID)
		assert.Equal(t, now, got.RegisteredAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate device id", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewDeviceRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO devices")).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		_, err := repo.CreateDevice(testContext(), models.Device{DeviceID: "device-1"})
		assert.ErrorIs(t, err, ErrDeviceAlreadyRegistered)
	})

	t.Run("unexpected db error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewDeviceRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO devices")).
			WillReturnError(errors.New("boom"))

		_, err := repo.CreateDevice(testContext(), models.Device{DeviceID: "device-1"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrDeviceAlreadyRegistered)
	})
}

func TestFindDeviceByID(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewDeviceRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta("SELECT device_id, name, public_key_pem, registered_at")).
			WithArgs("device-1").
			WillReturnRows(sqlmock.NewRows(deviceColumns).
				AddRow("device-1", "work laptop", "pem", now))

		got, err := repo.FindDeviceByID(testContext(), "device-1")
		require.NoError(t, err)
		assert.Equal(t, "work laptop", got.Name)
		assert.Equal(t, "pem", got.PublicKeyPEM)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewDeviceRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta("SELECT device_id, name, public_key_pem, registered_at")).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(deviceColumns))

		_, err := repo.FindDeviceByID(testContext(), "missing")
		assert.ErrorIs(t, err, ErrDeviceNotFound)
	})
}
