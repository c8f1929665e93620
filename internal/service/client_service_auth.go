package service

import (
	"context"
	"crypto/sha256"
	"fmt"

	"github.com/MKhiriev/go-zkeb/internal/adapter"
	"github.com/MKhiriev/go-zkeb/internal/logger"
	"github.com/MKhiriev/go-zkeb/internal/signing"
	"github.com/MKhiriev/go-zkeb/models"
)

// agentAuthService implements AgentAuthService on top of the server adapter.
// The device private key never leaves this process; only signatures and the
// PEM public key travel.
type agentAuthService struct {
	identity *AgentIdentity
	server   adapter.ServerAdapter

	logger *logger.Logger
}

// NewAgentAuthService constructs an AgentAuthService for the given identity.
func NewAgentAuthService(identity *AgentIdentity, server adapter.ServerAdapter, logger *logger.Logger) AgentAuthService {
	return &agentAuthService{
		identity: identity,
		server:   server,
		logger:   logger,
	}
}

// Enroll registers the device with the server.
func (a *agentAuthService) Enroll(ctx context.Context) (models.Device, error) {
	log := logger.FromContext(ctx)

	publicKeyPEM, err := signing.EncodePublicKey(&a.identity.PrivateKey.PublicKey)
	if err != nil {
		log.Err(err).Msg("public key encoding failed")
		return models.Device{}, fmt.Errorf("public key encoding failed: %w", err)
	}

	device, err := a.server.RegisterDevice(ctx, models.RegisterDeviceRequest{
		DeviceID:     a.identity.DeviceID,
		Name:         a.identity.DeviceName,
		PublicKeyPEM: publicKeyPEM,
	})
	if err != nil {
		log.Err(err).Str("device_id", a.identity.DeviceID).Msg("device registration failed")
		return models.Device{}, fmt.Errorf("device registration failed: %w", err)
	}

	log.Info().Str("device_id", device.DeviceID).Msg("device enrolled")

	return device, nil
}

// Login runs the challenge-response exchange and stores the bearer token in
// the adapter.
func (a *agentAuthService) Login(ctx context.Context) (models.Token, error) {
	log := logger.FromContext(ctx)

	challenge, err := a.server.RequestChallenge(ctx, a.identity.DeviceID)
	if err != nil {
		log.Err(err).Str("device_id", a.identity.DeviceID).Msg("challenge request failed")
		return models.Token{}, fmt.Errorf("challenge request failed: %w", err)
	}

	digest := sha256.Sum256(challenge.Challenge)
	signature, err := signing.SignDigest(a.identity.PrivateKey, digest[:])
	if err != nil {
		log.Err(err).Str("device_id", a.identity.DeviceID).Msg("challenge signing failed")
		return models.Token{}, fmt.Errorf("challenge signing failed: %w", err)
	}

	token, err := a.server.Login(ctx, models.LoginRequest{
		DeviceID:  a.identity.DeviceID,
		Challenge: challenge.Challenge,
		Signature: signature,
	})
	if err != nil {
		log.Err(err).Str("device_id", a.identity.DeviceID).Msg("login failed")
		return models.Token{}, fmt.Errorf("login failed: %w", err)
	}

	log.Info().Str("device_id", a.identity.DeviceID).Msg("device logged in")

	return token, nil
}
