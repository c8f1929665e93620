// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package recovery implements password-based recovery of the user master
// key. It is glue around two vetted pieces: PBKDF2-HMAC-SHA256 from
// golang.org/x/crypto turns a passphrase into a 32-byte recovery key, and
// the core envelope cipher seals the UMK under it. The resulting bundle is
// safe to store anywhere — without the passphrase it is opaque.
package recovery

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"github.com/MKhiriev/go-zkeb/internal/crypto"
	"github.com/MKhiriev/go-zkeb/models"
)

// DefaultIterations is the PBKDF2 iteration count for new bundles
// (OWASP 2023 recommendation for PBKDF2-HMAC-SHA256).
const DefaultIterations = 600_000

const saltSize = 16

var (
	// ErrEmptyPassphrase is returned when the recovery passphrase is empty.
	ErrEmptyPassphrase = errors.New("recovery passphrase must not be empty")
	// ErrInvalidIterations is returned when a bundle carries a non-positive
	// iteration count.
	ErrInvalidIterations = errors.New("invalid pbkdf2 iteration count")
)

// Service wraps a user master key with a passphrase-derived key and unwraps
// it again. Stateless; safe for concurrent use.
type Service struct {
	cipher     crypto.EnvelopeCipher
	iterations int
}

// NewService constructs a recovery Service with DefaultIterations.
func NewService(cipher crypto.EnvelopeCipher) *Service {
	return &Service{cipher: cipher, iterations: DefaultIterations}
}

// DeriveRecoveryKey derives the 32-byte recovery key from the passphrase,
// salt, and iteration count. Deterministic; usable anywhere the core expects
// a 32-byte key.
func DeriveRecoveryKey(passphrase string, salt []byte, iterations int) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}
	if iterations <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIterations, iterations)
	}

	return pbkdf2.Key([]byte(passphrase), salt, iterations, crypto.EnvelopeKeySize, sha256.New), nil
}

// WrapUMK seals umk under a key derived from passphrase with a fresh random
// salt. The returned bundle pins the iteration count it was created with.
func (s *Service) WrapUMK(umk []byte, passphrase string) (models.RecoveryBundle, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return models.RecoveryBundle{}, fmt.Errorf("read system randomness: %w", err)
	}

	key, err := DeriveRecoveryKey(passphrase, salt, s.iterations)
	if err != nil {
		return models.RecoveryBundle{}, err
	}

	env, err := s.cipher.Encrypt(umk, key, nil)
	if err != nil {
		return models.RecoveryBundle{}, fmt.Errorf("wrap user master key: %w", err)
	}

	return models.RecoveryBundle{
		Salt:       salt,
		Iterations: s.iterations,
		WrappedUMK: models.NewEncryptionEnvelope(env),
	}, nil
}

// UnwrapUMK recovers the user master key from a bundle. A wrong passphrase
// surfaces as crypto.ErrAuthenticationFailed from the envelope open.
func (s *Service) UnwrapUMK(bundle models.RecoveryBundle, passphrase string) ([]byte, error) {
	key, err := DeriveRecoveryKey(passphrase, bundle.Salt, bundle.Iterations)
	if err != nil {
		return nil, err
	}

	umk, err := s.cipher.Decrypt(bundle.WrappedUMK.ToEnvelope(), key)
	if err != nil {
		return nil, fmt.Errorf("unwrap user master key: %w", err)
	}

	return umk, nil
}
