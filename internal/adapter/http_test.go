package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-zkeb/internal/utils"
	"github.com/MKhiriev/go-zkeb/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, handler http.Handler) ServerAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPServerAdapter(HTTPClientConfig{BaseURL: srv.URL, Timeout: 5 * time.Second})
}

func TestRegisterDevice(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/device/register", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var req models.RegisterDeviceRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "device-1", req.DeviceID)

		device := models.Device{
			DeviceID:     req.DeviceID,
			Name:         req.Name,
			PublicKeyPEM: req.PublicKeyPEM,
			RegisteredAt: time.Now(),
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(device)
	})

	a := newTestAdapter(t, mux)

	device, err := a.RegisterDevice(context.Background(), models.RegisterDeviceRequest{
		DeviceID:     "device-1",
		Name:         "work laptop",
		PublicKeyPEM: "pem",
	})
	require.NoError(t, err)
	assert.Equal(t, "device-1", device.DeviceID)
	assert.Equal(t, "work laptop", device.Name)
}

func TestRegisterDevice_Conflict(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/device/register", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "device already registered", http.StatusConflict)
	})

	a := newTestAdapter(t, mux)

	_, err := a.RegisterDevice(context.Background(), models.RegisterDeviceRequest{DeviceID: "device-1"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestLogin_StoresToken(t *testing.T) {
	token, err := utils.GenerateJWTToken("go-zkeb", "device-1", time.Hour, "secret")
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/device/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Authorization", "Bearer "+token.SignedString)
		w.WriteHeader(http.StatusOK)
	})

	a := newTestAdapter(t, mux)

	got, err := a.Login(context.Background(), models.LoginRequest{DeviceID: "device-1"})
	require.NoError(t, err)
	assert.Equal(t, "device-1", got.DeviceID)
	assert.Equal(t, token.SignedString, a.Token())
}

func TestUploadBackup_SendsBearerToken(t *testing.T) {
	var gotAuth string

	mux := http.NewServeMux()
	mux.HandleFunc("/api/backup/", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		var req models.UploadBackupRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		saved := req.Backup
		saved.Version = 1
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(saved)
	})

	a := newTestAdapter(t, mux)
	a.SetToken("test-token")

	saved, err := a.UploadBackup(context.Background(), models.BackupRecord{ID: "backup-1", DeviceID: "device-1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.Version)
	assert.Equal(t, "Bearer test-token", gotAuth)
}

func TestUploadBackup_VersionConflict(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/backup/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backup version conflict occurred", http.StatusConflict)
	})

	a := newTestAdapter(t, mux)

	_, err := a.UploadBackup(context.Background(), models.BackupRecord{ID: "backup-1"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestDownloadBackup(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/backup/backup-1", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)

		backup := models.BackupRecord{
			ID:       "backup-1",
			DeviceID: "device-1",
			Payload:  models.EncryptionEnvelope{Ciphertext: []byte("ct"), Nonce: []byte("nonce"), Tag: []byte("tag")},
			Version:  3,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(backup)
	})

	a := newTestAdapter(t, mux)

	backup, err := a.DownloadBackup(context.Background(), "backup-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), backup.Version)
	assert.Equal(t, []byte("ct"), backup.Payload.Ciphertext)
}

func TestSyncStates(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/backup/sync", func(w http.ResponseWriter, r *http.Request) {
		resp := models.SyncResponse{
			BackupStates: []models.BackupState{
				{ID: "backup-1", Version: 1, PayloadHash: "deadbeef"},
				{ID: "backup-2", Version: 4, Deleted: true},
			},
			Length: 2,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	})

	a := newTestAdapter(t, mux)

	states, err := a.SyncStates(context.Background())
	require.NoError(t, err)
	require.Len(t, states.BackupStates, 2)
	assert.Equal(t, 2, states.Length)
	assert.True(t, states.BackupStates[1].Deleted)
}

func TestDeleteBackup_NotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/backup/missing", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backup was not found", http.StatusNotFound)
	})

	a := newTestAdapter(t, mux)

	err := a.DeleteBackup(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
