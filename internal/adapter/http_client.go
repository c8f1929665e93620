package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-zkeb/internal/utils"
	"github.com/MKhiriev/go-zkeb/models"
	"github.com/go-resty/resty/v2"
)

// HTTPClientConfig carries the settings for the REST server adapter.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter builds a [ServerAdapter] speaking the server's REST
// API over resty.
func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) RegisterDevice(ctx context.Context, req models.RegisterDeviceRequest) (models.Device, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/device/register")
	if err != nil {
		return models.Device{}, fmt.Errorf("register device request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Device{}, err
	}

	var device models.Device
	if err = json.Unmarshal(resp.Body(), &device); err != nil {
		return models.Device{}, fmt.Errorf("decode register device response: %w", err)
	}

	return device, nil
}

func (h *httpServerAdapter) RequestChallenge(ctx context.Context, deviceID string) (models.DeviceChallenge, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ChallengeRequest{DeviceID: deviceID}).
		Post("/api/device/challenge")
	if err != nil {
		return models.DeviceChallenge{}, fmt.Errorf("challenge request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DeviceChallenge{}, err
	}

	var challenge models.DeviceChallenge
	if err = json.Unmarshal(resp.Body(), &challenge); err != nil {
		return models.DeviceChallenge{}, fmt.Errorf("decode challenge response: %w", err)
	}

	return challenge, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/device/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	deviceID, err := utils.ParseDeviceIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse device id: %w", err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, DeviceID: deviceID}, nil
}

func (h *httpServerAdapter) UploadBackup(ctx context.Context, backup models.BackupRecord) (models.BackupRecord, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.UploadBackupRequest{Backup: backup}).
		Post("/api/backup/")
	if err != nil {
		return models.BackupRecord{}, fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BackupRecord{}, err
	}

	var saved models.BackupRecord
	if err = json.Unmarshal(resp.Body(), &saved); err != nil {
		return models.BackupRecord{}, fmt.Errorf("decode upload response: %w", err)
	}

	return saved, nil
}

func (h *httpServerAdapter) DownloadBackup(ctx context.Context, backupID string) (models.BackupRecord, error) {
	resp, err := h.authedRequest(ctx).
		Get("/api/backup/" + backupID)
	if err != nil {
		return models.BackupRecord{}, fmt.Errorf("download request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BackupRecord{}, err
	}

	var backup models.BackupRecord
	if err = json.Unmarshal(resp.Body(), &backup); err != nil {
		return models.BackupRecord{}, fmt.Errorf("decode download response: %w", err)
	}

	return backup, nil
}

func (h *httpServerAdapter) SyncStates(ctx context.Context) (models.SyncResponse, error) {
	resp, err := h.authedRequest(ctx).
		Get("/api/backup/sync")
	if err != nil {
		return models.SyncResponse{}, fmt.Errorf("sync request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncResponse{}, err
	}

	var states models.SyncResponse
	if err = json.Unmarshal(resp.Body(), &states); err != nil {
		return models.SyncResponse{}, fmt.Errorf("decode sync response: %w", err)
	}

	return states, nil
}

func (h *httpServerAdapter) DeleteBackup(ctx context.Context, backupID string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/backup/" + backupID)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
