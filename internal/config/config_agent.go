package config

import (
	"fmt"
	"time"
)

// AgentAdapter holds network settings used by the agent transport layer.
type AgentAdapter struct {
	// HTTPAddress is the backup server base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// AgentStorage groups agent storage backend settings.
type AgentStorage struct {
	// CacheDSN is the SQLite file backing the local state cache.
	CacheDSN string
	// IdentityPath is the JSON file holding the device identity.
	IdentityPath string
}

// AgentWorkers contains agent background worker settings.
type AgentWorkers struct {
	// BackupInterval defines how often the backup worker runs.
	BackupInterval time.Duration
}

// AgentConfig is the top-level agent configuration assembled from
// [StructuredConfig].
type AgentConfig struct {
	// DeviceID is the stable identifier that salts the device-master-key
	// derivation. Empty means "generate and persist one on first run".
	DeviceID string
	// DeviceName is a human-readable label sent at registration.
	DeviceName string
	// Adapter contains transport addresses and timeouts.
	Adapter AgentAdapter
	// Storage contains local storage settings.
	Storage AgentStorage
	// Workers contains background job settings.
	Workers AgentWorkers
}

// GetAgentConfig builds and validates an agent-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the agent runtime, and validates the resulting [AgentConfig].
func GetAgentConfig() (*AgentConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	agentCfg := &AgentConfig{
		DeviceID:   cfg.Agent.DeviceID,
		DeviceName: cfg.Agent.DeviceName,
		Adapter: AgentAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: AgentStorage{
			CacheDSN:     cfg.Agent.CacheDSN,
			IdentityPath: cfg.Agent.IdentityPath,
		},
		Workers: AgentWorkers{BackupInterval: cfg.Workers.BackupInterval},
	}
	if agentCfg.Storage.IdentityPath == "" {
		agentCfg.Storage.IdentityPath = "identity.json"
	}

	return agentCfg, agentCfg.validate()
}
