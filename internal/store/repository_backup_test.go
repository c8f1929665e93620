package store

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-zkeb/internal/logger"
	"github.com/MKhiriev/go-zkeb/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBackup() models.BackupRecord {
	return models.BackupRecord{
		ID:       "backup-1",
		DeviceID: "device-1",
		Payload: models.EncryptionEnvelope{
			Ciphertext:     []byte("payload-ct"),
			Nonce:          []byte("payload-nonce"),
			Tag:            []byte("payload-tag"),
			AssociatedData: []byte("backup-1"),
		},
		Metadata: models.EncryptionEnvelope{
			Ciphertext: []byte("meta-ct"),
			Nonce:      []byte("meta-nonce"),
			Tag:        []byte("meta-tag"),
		},
		PayloadHash: "deadbeef",
		Signature:   []byte("signature"),
	}
}

func backupRowArgs(b models.BackupRecord, createdAt, updatedAt time.Time) []driver.Value {
	return []driver.Value{
		b.ID, b.DeviceID,
		b.Payload.Ciphertext, b.Payload.Nonce, b.Payload.Tag, b.Payload.AssociatedData,
		b.Metadata.Ciphertext, b.Metadata.Nonce, b.Metadata.Tag, b.Metadata.AssociatedData,
		b.PayloadHash, b.Signature,
		b.Version, b.Deleted, createdAt, updatedAt,
	}
}

func TestSaveBackup_Insert(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)

	t.Run("first upload inserts at version 1", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewBackupRepository(newDBFromSQL(db), logger.Nop())

		backup := testBackup()

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO backups")).
			WillReturnRows(sqlmock.NewRows([]string{"version", "created_at", "updated_at"}).
				AddRow(int64(1), now, now))

		saved, err := repo.SaveBackup(testContext(), backup)
		require.NoError(t, err)
		assert.Equal(t, int64(1), saved.Version)
		assert.Equal(t, now, saved.CreatedAt)
		assert.False(t, saved.Deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate id maps to version conflict", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewBackupRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO backups")).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		_, err := repo.SaveBackup(testContext(), testBackup())
		assert.ErrorIs(t, err, ErrVersionConflict)
	})

	t.Run("driver error is wrapped", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewBackupRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO backups")).
			WillReturnError(errors.New("boom"))

		_, err := repo.SaveBackup(testContext(), testBackup())
		assert.ErrorIs(t, err, ErrExecutingStatement)
	})
}

func TestSaveBackup_Update(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)

	t.Run("overwrite bumps version", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewBackupRepository(newDBFromSQL(db), logger.Nop())

		backup := testBackup()
		backup.Version = 3

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE backups SET")).
			WillReturnRows(sqlmock.NewRows([]string{"version", "created_at", "updated_at"}).
				AddRow(int64(4), now.Add(-time.Hour), now))

		saved, err := repo.SaveBackup(testContext(), backup)
		require.NoError(t, err)
		assert.Equal(t, int64(4), saved.Version)
		assert.Equal(t, now, saved.UpdatedAt)
	})

	t.Run("stale version maps to version conflict", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewBackupRepository(newDBFromSQL(db), logger.Nop())

		backup := testBackup()
		backup.Version = 2

		// the optimistic-lock predicate matches no row
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE backups SET")).
			WillReturnRows(sqlmock.NewRows([]string{"version", "created_at", "updated_at"}))

		_, err := repo.SaveBackup(testContext(), backup)
		assert.ErrorIs(t, err, ErrVersionConflict)
	})
}

func TestGetBackup(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewBackupRepository(newDBFromSQL(db), logger.Nop())

		backup := testBackup()
		backup.Version = 2

		mock.ExpectQuery("SELECT .+ FROM backups").
			WithArgs("device-1", "backup-1").
			WillReturnRows(sqlmock.NewRows(backupColumns).
				AddRow(backupRowArgs(backup, now, now)...))

		got, err := repo.GetBackup(testContext(), "device-1", "backup-1")
		require.NoError(t, err)
		assert.Equal(t, backup.ID, got.ID)
		assert.Equal(t, backup.Payload.Ciphertext, got.Payload.Ciphertext)
		assert.Equal(t, backup.Metadata.Tag, got.Metadata.Tag)
		assert.Equal(t, int64(2), got.Version)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewBackupRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery("SELECT .+ FROM backups").
			WithArgs("device-1", "missing").
			WillReturnRows(sqlmock.NewRows(backupColumns))

		_, err := repo.GetBackup(testContext(), "device-1", "missing")
		assert.ErrorIs(t, err, ErrBackupNotFound)
	})
}

func TestGetBackups(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)

	t.Run("all records for device", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewBackupRepository(newDBFromSQL(db), logger.Nop())

		first := testBackup()
		second := testBackup()
		second.ID = "backup-2"
		second.Deleted = true

		mock.ExpectQuery("SELECT .+ FROM backups").
			WithArgs("device-1").
			WillReturnRows(sqlmock.NewRows(backupColumns).
				AddRow(backupRowArgs(first, now, now)...).
				AddRow(backupRowArgs(second, now, now)...))

		got, err := repo.GetBackups(testContext(), "device-1", nil)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "backup-2", got[1].ID)
		assert.True(t, got[1].Deleted)
	})

	t.Run("query error is wrapped", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewBackupRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery("SELECT .+ FROM backups").
			WillReturnError(errors.New("boom"))

		_, err := repo.GetBackups(testContext(), "device-1", nil)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestGetAllStates(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)

	db, mock := newTestDB(t)
	repo := NewBackupRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery("SELECT .+ FROM backups").
		WithArgs("device-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "version", "payload_hash", "deleted", "updated_at"}).
			AddRow("backup-1", int64(1), "deadbeef", false, now).
			AddRow("backup-2", int64(5), "", true, now))

	states, err := repo.GetAllStates(testContext(), "device-1")
	require.NoError(t, err)
	require.Len(t, states, 2)
	assert.Equal(t, int64(5), states[1].Version)
	assert.True(t, states[1].Deleted)
}

func TestDeleteBackup(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewBackupRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectExec(regexp.QuoteMeta("UPDATE backups SET")).
			WithArgs("backup-1", "device-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeleteBackup(testContext(), "device-1", "backup-1")
		require.NoError(t, err)
	})

	t.Run("missing record", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewBackupRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectExec(regexp.QuoteMeta("UPDATE backups SET")).
			WithArgs("missing", "device-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteBackup(testContext(), "device-1", "missing")
		assert.ErrorIs(t, err, ErrBackupNotFound)
	})
}
