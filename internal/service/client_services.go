package service

import (
	"crypto/rsa"

	"github.com/MKhiriev/go-zkeb/internal/adapter"
	"github.com/MKhiriev/go-zkeb/internal/crypto"
	"github.com/MKhiriev/go-zkeb/internal/logger"
	"github.com/MKhiriev/go-zkeb/internal/recovery"
	"github.com/MKhiriev/go-zkeb/internal/store"
)

// AgentIdentity is everything the agent holds that must never reach the
// server in the clear: the user master key at the root of the key hierarchy
// and the device private key used for signatures. DeviceID is public but
// lives here because it salts the key derivation.
type AgentIdentity struct {
	DeviceID   string
	DeviceName string
	UMK        []byte
	PrivateKey *rsa.PrivateKey
}

// AgentServices bundles the agent-side services behind one constructor.
type AgentServices struct {
	AuthService   AgentAuthService
	BackupService AgentBackupService
	Recovery      *recovery.Service
}

// NewAgentServices wires the agent services to the server adapter and the
// local cache. One keychain and one cipher instance are shared; both are
// stateless.
func NewAgentServices(identity *AgentIdentity, server adapter.ServerAdapter, cache store.AgentCache, logger *logger.Logger) *AgentServices {
	keychain := crypto.NewKeyChainService()
	cipher := crypto.NewEnvelopeCipher()

	return &AgentServices{
		AuthService:   NewAgentAuthService(identity, server, logger),
		BackupService: NewAgentBackupService(identity, server, cache, keychain, cipher, logger),
		Recovery:      recovery.NewService(cipher),
	}
}
