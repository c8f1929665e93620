package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesNestedFields(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "sign-key")
	t.Setenv("APP_TOKEN_ISSUER", "go-zkeb")
	t.Setenv("APP_TOKEN_DURATION", "45m")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost:5432/zkeb")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:8080")
	t.Setenv("AGENT_DEVICE_ID", "device-123")
	t.Setenv("WORKERS_BACKUP_INTERVAL", "5m")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "sign-key", cfg.App.TokenSignKey)
	assert.Equal(t, "go-zkeb", cfg.App.TokenIssuer)
	assert.Equal(t, 45*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "postgres://localhost:5432/zkeb", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "device-123", cfg.Agent.DeviceID)
	assert.Equal(t, 5*time.Minute, cfg.Workers.BackupInterval)
}

func TestParseEnv_EmptyEnvironmentIsValid(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Empty(t, cfg.App.TokenSignKey)
	assert.Empty(t, cfg.Storage.DB.DSN)
}
