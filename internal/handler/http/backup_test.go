package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-zkeb/internal/mock"
	"github.com/MKhiriev/go-zkeb/internal/store"
	"github.com/MKhiriev/go-zkeb/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// expectAuthenticated registers a ParseToken expectation resolving the test
// bearer token to device-1.
func expectAuthenticated(auth *mock.MockAuthService) {
	auth.EXPECT().
		ParseToken(gomock.Any(), "valid-token").
		Return(models.Token{DeviceID: "device-1", SignedString: "valid-token"}, nil)
}

func authedRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", "Bearer valid-token")
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestUploadEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, auth, backup := newTestRouter(t)
		expectAuthenticated(auth)

		record := models.BackupRecord{ID: "backup-1", DeviceID: "device-1", PayloadHash: "aa"}
		backup.EXPECT().
			UploadBackup(gomock.Any(), "device-1", record).
			DoAndReturn(func(_ context.Context, _ string, b models.BackupRecord) (models.BackupRecord, error) {
				b.Version = 1
				b.UpdatedAt = time.Now()
				return b, nil
			})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, authedRequest(t, http.MethodPost, "/api/backup/", models.UploadBackupRequest{Backup: record}))

		assert.Equal(t, http.StatusCreated, rec.Code)

		var saved models.BackupRecord
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
		assert.Equal(t, int64(1), saved.Version)
	})

	t.Run("version conflict", func(t *testing.T) {
		router, auth, backup := newTestRouter(t)
		expectAuthenticated(auth)

		backup.EXPECT().
			UploadBackup(gomock.Any(), "device-1", gomock.Any()).
			Return(models.BackupRecord{}, store.ErrVersionConflict)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, authedRequest(t, http.MethodPost, "/api/backup/", models.UploadBackupRequest{
			Backup: models.BackupRecord{ID: "backup-1", Version: 2},
		}))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("no authorization header", func(t *testing.T) {
		router, _, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/api/backup/", bytes.NewReader(nil))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestDownloadEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, auth, backup := newTestRouter(t)
		expectAuthenticated(auth)

		backup.EXPECT().
			DownloadBackup(gomock.Any(), "device-1", "backup-1").
			Return(models.BackupRecord{ID: "backup-1", DeviceID: "device-1", Version: 3}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, authedRequest(t, http.MethodGet, "/api/backup/backup-1", nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var got models.BackupRecord
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, int64(3), got.Version)
	})

	t.Run("not found", func(t *testing.T) {
		router, auth, backup := newTestRouter(t)
		expectAuthenticated(auth)

		backup.EXPECT().
			DownloadBackup(gomock.Any(), "device-1", "missing").
			Return(models.BackupRecord{}, store.ErrBackupNotFound)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, authedRequest(t, http.MethodGet, "/api/backup/missing", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListEndpoint(t *testing.T) {
	t.Run("all backups", func(t *testing.T) {
		router, auth, backup := newTestRouter(t)
		expectAuthenticated(auth)

		backup.EXPECT().
			DownloadBackups(gomock.Any(), "device-1", nil).
			Return([]models.BackupRecord{
				{ID: "backup-1", DeviceID: "device-1", Version: 1},
				{ID: "backup-2", DeviceID: "device-1", Version: 4},
			}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, authedRequest(t, http.MethodGet, "/api/backup/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var got []models.BackupRecord
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, int64(4), got[1].Version)
	})

	t.Run("narrowed by ids", func(t *testing.T) {
		router, auth, backup := newTestRouter(t)
		expectAuthenticated(auth)

		backup.EXPECT().
			DownloadBackups(gomock.Any(), "device-1", []string{"backup-1", "backup-3"}).
			Return([]models.BackupRecord{{ID: "backup-1"}, {ID: "backup-3"}}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, authedRequest(t, http.MethodGet, "/api/backup/?ids=backup-1,backup-3", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestSyncEndpoint(t *testing.T) {
	router, auth, backup := newTestRouter(t)
	expectAuthenticated(auth)

	states := []models.BackupState{
		{ID: "backup-1", Version: 2, PayloadHash: "aa"},
		{ID: "backup-2", Version: 1, Deleted: true},
	}
	backup.EXPECT().
		SyncStates(gomock.Any(), "device-1").
		Return(models.SyncResponse{BackupStates: states, Length: len(states)}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, http.MethodGet, "/api/backup/sync", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.SyncResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Length)
	assert.True(t, resp.BackupStates[1].Deleted)
}

func TestDeleteEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, auth, backup := newTestRouter(t)
		expectAuthenticated(auth)

		backup.EXPECT().DeleteBackup(gomock.Any(), "device-1", "backup-1").Return(nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, authedRequest(t, http.MethodDelete, "/api/backup/backup-1", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		router, auth, backup := newTestRouter(t)
		expectAuthenticated(auth)

		backup.EXPECT().
			DeleteBackup(gomock.Any(), "device-1", "missing").
			Return(store.ErrBackupNotFound)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, authedRequest(t, http.MethodDelete, "/api/backup/missing", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
