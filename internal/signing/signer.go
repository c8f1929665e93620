// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package signing implements device authentication signatures: RSA-4096
// with PSS padding over SHA-256 digests. Devices sign the ciphertext hash
// of every backup they upload and the login challenge the server issues;
// the server verifies both against the public key registered for the
// device. Key pairs are generated independently of the key hierarchy — no
// derived key ever touches this package.
package signing

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
)

// KeyBits is the RSA modulus size for device key pairs.
const KeyBits = 4096

var (
	// ErrInvalidPublicKey is returned when a PEM blob does not contain an
	// RSA public key.
	ErrInvalidPublicKey = errors.New("invalid rsa public key")
	// ErrInvalidPrivateKey is returned when a PEM blob does not contain an
	// RSA private key.
	ErrInvalidPrivateKey = errors.New("invalid rsa private key")
	// ErrSignatureInvalid is returned when PSS verification fails.
	ErrSignatureInvalid = errors.New("signature verification failed")
)

// GenerateKeyPair creates a fresh RSA-4096 device key pair from the OS
// CSPRNG. Slow by design; called once per device enrollment.
func GenerateKeyPair() (*rsa.PrivateKey, error) {
	key, err := rsa.GenerateKey(rand.Reader, KeyBits)
	if err != nil {
		return nil, fmt.Errorf("generate rsa key pair: %w", err)
	}
	return key, nil
}

// SignDigest signs a SHA-256 digest with RSA-PSS.
func SignDigest(key *rsa.PrivateKey, digest []byte) ([]byte, error) {
	sig, err := rsa.SignPSS(rand.Reader, key, crypto.SHA256, digest, nil)
	if err != nil {
		return nil, fmt.Errorf("sign digest: %w", err)
	}
	return sig, nil
}

// SignCiphertext hashes ciphertext with SHA-256 and signs the digest. This
// is the backup-integrity signature: it covers the sealed bytes, so the
// server can verify it without any ability to decrypt.
func SignCiphertext(key *rsa.PrivateKey, ciphertext []byte) ([]byte, error) {
	digest := sha256.Sum256(ciphertext)
	return SignDigest(key, digest[:])
}

// VerifyCiphertext checks an RSA-PSS signature over SHA-256(ciphertext).
// Returns ErrSignatureInvalid on mismatch.
func VerifyCiphertext(pub *rsa.PublicKey, ciphertext, signature []byte) error {
	digest := sha256.Sum256(ciphertext)
	return VerifyDigest(pub, digest[:], signature)
}

// VerifyDigest checks an RSA-PSS signature over a SHA-256 digest.
func VerifyDigest(pub *rsa.PublicKey, digest, signature []byte) error {
	if err := rsa.VerifyPSS(pub, crypto.SHA256, digest, signature, nil); err != nil {
		return fmt.Errorf("%w: %w", ErrSignatureInvalid, err)
	}
	return nil
}

// EncodePublicKey renders an RSA public key as a PKIX PEM block, the form
// devices send during registration.
func EncodePublicKey(pub *rsa.PublicKey) (string, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return "", fmt.Errorf("marshal public key: %w", err)
	}

	block := pem.Block{Type: "PUBLIC KEY", Bytes: der}
	return string(pem.EncodeToMemory(&block)), nil
}

// EncodePrivateKey renders an RSA private key as a PKCS#8 PEM block, the
// form the agent persists in its identity file.
func EncodePrivateKey(key *rsa.PrivateKey) (string, error) {
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return "", fmt.Errorf("marshal private key: %w", err)
	}

	block := pem.Block{Type: "PRIVATE KEY", Bytes: der}
	return string(pem.EncodeToMemory(&block)), nil
}

// DecodePrivateKey parses a PKCS#8 PEM block back into an RSA private key.
func DecodePrivateKey(pemData string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(pemData))
	if block == nil {
		return nil, fmt.Errorf("%w: no pem block found", ErrInvalidPrivateKey)
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}

	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an rsa key", ErrInvalidPrivateKey)
	}

	return key, nil
}

// DecodePublicKey parses a PKIX PEM block back into an RSA public key.
func DecodePublicKey(pemData string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(pemData))
	if block == nil {
		return nil, fmt.Errorf("%w: no pem block found", ErrInvalidPublicKey)
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}

	pub, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an rsa key", ErrInvalidPublicKey)
	}

	return pub, nil
}
