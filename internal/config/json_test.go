package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_FullConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	payload := `{
		"app": {"token_sign_key": "sign-key", "token_issuer": "go-zkeb", "token_duration": "1h"},
		"storage": {"db": {"dsn": "postgres://localhost/zkeb"}},
		"server": {"http_address": "localhost:8080", "request_timeout": "30s"},
		"adapter": {"http_address": "https://backup.example.com", "request_timeout": "15s"},
		"agent": {"device_id": "device-123", "device_name": "work laptop", "cache_dsn": "zkeb.db"},
		"workers": {"backup_interval": "10m"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "sign-key", cfg.App.TokenSignKey)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "postgres://localhost/zkeb", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "https://backup.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "device-123", cfg.Agent.DeviceID)
	assert.Equal(t, "work laptop", cfg.Agent.DeviceName)
	assert.Equal(t, 10*time.Minute, cfg.Workers.BackupInterval)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("does-not-exist.json")
	assert.Error(t, err)
}

func TestParseJSON_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_UnmarshalString(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"90s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))
}

func TestDuration_UnmarshalNumber(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	d := Duration(5 * time.Minute)
	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"5m0s"`, string(raw))
}
