package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_MergePriority(t *testing.T) {
	// mergo keeps the first non-zero value, so earlier sources win for
	// fields they set and later sources fill in the gaps.
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenIssuer: "from-env"}},
		&StructuredConfig{
			App:    App{TokenIssuer: "from-flags", TokenSignKey: "flag-key"},
			Server: Server{HTTPAddress: "localhost:8080"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.App.TokenIssuer)
	assert.Equal(t, "flag-key", cfg.App.TokenSignKey)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
}

func TestConfigBuilder_PropagatesError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	_, err := b.build()
	assert.Error(t, err)
}

func TestAgentConfigValidate(t *testing.T) {
	valid := AgentConfig{
		Adapter: AgentAdapter{HTTPAddress: "https://backup.example.com", RequestTimeout: 1},
		Storage: AgentStorage{CacheDSN: "zkeb.db"},
		Workers: AgentWorkers{BackupInterval: 1},
	}
	require.NoError(t, valid.validate())

	noStorage := valid
	noStorage.Storage.CacheDSN = ""
	assert.ErrorIs(t, noStorage.validate(), ErrInvalidStorageConfigs)

	noAdapter := valid
	noAdapter.Adapter.HTTPAddress = ""
	assert.ErrorIs(t, noAdapter.validate(), ErrInvalidAdapterConfigs)

	noWorkers := valid
	noWorkers.Workers.BackupInterval = 0
	assert.ErrorIs(t, noWorkers.validate(), ErrInvalidWorkerConfigs)
}
