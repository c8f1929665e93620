package service

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-zkeb/internal/config"
	"github.com/MKhiriev/go-zkeb/internal/logger"
	"github.com/MKhiriev/go-zkeb/internal/signing"
	"github.com/MKhiriev/go-zkeb/internal/store"
	"github.com/MKhiriev/go-zkeb/internal/utils"
	"github.com/MKhiriev/go-zkeb/models"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// challengeSize is the byte length of a login challenge.
	challengeSize = 32

	// challengeTTL bounds the window between issuing a challenge and the
	// signed login attempt.
	challengeTTL = 2 * time.Minute
)

// authService is the concrete implementation of AuthService.
// It handles device enrollment, challenge-response authentication, and JWT
// token lifecycle using a DeviceRepository for persistence and RSA-PSS for
// signature verification.
type authService struct {
	// deviceRepository is the data-access layer used to create and look up
	// devices.
	deviceRepository store.DeviceRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// challenges holds the outstanding login challenges keyed by device ID.
	// One outstanding challenge per device; issuing a new one replaces it.
	mu         sync.Mutex
	challenges map[string]models.DeviceChallenge

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// DeviceRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use.
func NewAuthService(deviceRepository store.DeviceRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		deviceRepository: deviceRepository,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		challenges:       make(map[string]models.DeviceChallenge),
		logger:           logger,
	}
}

// RegisterDevice creates a new device record.
//
// It validates that the device identifier is non-blank and that the public
// key parses as a PKIX PEM RSA key, then delegates persistence to the
// DeviceRepository.
//
// Returns the persisted device (with a server-assigned RegisteredAt) or:
//   - ErrInvalidDataProvided if the device ID is blank or the key is not a
//     valid RSA public key.
//   - A wrapped storage error if the repository call fails (e.g. device ID
//     already taken — see store.ErrDeviceAlreadyRegistered).
func (a *authService) RegisterDevice(ctx context.Context, req models.RegisterDeviceRequest) (models.Device, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(req.DeviceID) == "" {
		log.Error().Msg("blank device id provided")
		return models.Device{}, ErrInvalidDataProvided
	}
	if _, err := signing.DecodePublicKey(req.PublicKeyPEM); err != nil {
		log.Err(err).Str("device_id", req.DeviceID).Msg("invalid public key provided")
		return models.Device{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	registeredDevice, err := a.deviceRepository.CreateDevice(ctx, models.Device{
		DeviceID:     req.DeviceID,
		Name:         req.Name,
		PublicKeyPEM: req.PublicKeyPEM,
	})
	if err != nil {
		log.Err(err).Str("device_id", req.DeviceID).Msg("device creation ended with error")
		return models.Device{}, fmt.Errorf("device creation ended with error: %w", err)
	}

	return registeredDevice, nil
}

// IssueChallenge draws a fresh random challenge for the device and records
// it with a short expiry. Only the latest challenge per device is valid.
//
// Returns ErrInvalidDataProvided for a blank device ID, or a wrapped storage
// error when the device is unknown (see store.ErrDeviceNotFound).
func (a *authService) IssueChallenge(ctx context.Context, deviceID string) (models.DeviceChallenge, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(deviceID) == "" {
		log.Error().Msg("blank device id provided")
		return models.DeviceChallenge{}, ErrInvalidDataProvided
	}

	if _, err := a.deviceRepository.FindDeviceByID(ctx, deviceID); err != nil {
		log.Err(err).Str("device_id", deviceID).Msg("device lookup failed")
		return models.DeviceChallenge{}, fmt.Errorf("device lookup failed: %w", err)
	}

	challengeBytes := make([]byte, challengeSize)
	if _, err := io.ReadFull(rand.Reader, challengeBytes); err != nil {
		log.Err(err).Str("device_id", deviceID).Msg("challenge generation failed")
		return models.DeviceChallenge{}, fmt.Errorf("challenge generation failed: %w", err)
	}

	challenge := models.DeviceChallenge{
		DeviceID:  deviceID,
		Challenge: challengeBytes,
		ExpiresAt: time.Now().Add(challengeTTL),
	}

	a.mu.Lock()
	a.challenges[deviceID] = challenge
	a.mu.Unlock()

	return challenge, nil
}

// Login verifies that req.Signature is a valid RSA-PSS signature by the
// registered device key over the SHA-256 digest of the issued challenge.
//
// The stored challenge is consumed on every attempt, successful or not, so a
// failed login requires requesting a new challenge.
//
// Returns the signed JWT or:
//   - ErrChallengeNotFound when no challenge is outstanding for the device.
//   - ErrChallengeExpired when the challenge TTL has passed.
//   - ErrChallengeMismatch when the echoed challenge differs from the issued one.
//   - ErrSignatureVerification when PSS verification fails.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	a.mu.Lock()
	issued, ok := a.challenges[req.DeviceID]
	delete(a.challenges, req.DeviceID)
	a.mu.Unlock()

	if !ok {
		log.Error().Str("device_id", req.DeviceID).Msg("no challenge issued for device")
		return models.Token{}, ErrChallengeNotFound
	}
	if time.Now().After(issued.ExpiresAt) {
		log.Error().Str("device_id", req.DeviceID).Msg("challenge is expired")
		return models.Token{}, ErrChallengeExpired
	}
	if !bytes.Equal(issued.Challenge, req.Challenge) {
		log.Error().Str("device_id", req.DeviceID).Msg("challenge mismatch")
		return models.Token{}, ErrChallengeMismatch
	}

	device, err := a.deviceRepository.FindDeviceByID(ctx, req.DeviceID)
	if err != nil {
		log.Err(err).Str("device_id", req.DeviceID).Msg("device lookup failed")
		return models.Token{}, fmt.Errorf("device lookup failed: %w", err)
	}

	publicKey, err := signing.DecodePublicKey(device.PublicKeyPEM)
	if err != nil {
		log.Err(err).Str("device_id", req.DeviceID).Msg("stored public key is invalid")
		return models.Token{}, fmt.Errorf("stored public key is invalid: %w", err)
	}

	digest := sha256.Sum256(issued.Challenge)
	if err = signing.VerifyDigest(publicKey, digest[:], req.Signature); err != nil {
		log.Err(err).Str("device_id", req.DeviceID).Msg("challenge signature verification failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrSignatureVerification, err)
	}

	return a.createToken(ctx, device.DeviceID)
}

// ParseToken validates the given JWT string and extracts its claims.
//
// Returns ErrTokenIsExpired for expired tokens; any other validation failure
// is returned wrapped.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		log.Err(err).Msg("token validation failed")
		return models.Token{}, fmt.Errorf("token validation failed: %w", err)
	}

	return token, nil
}

// createToken issues a signed JWT for the given device.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) createToken(ctx context.Context, deviceID string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, deviceID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}
