// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
	"unicode/utf8"
)

// Envelope byte sizes. The nonce and tag lengths are the AES-256-GCM
// defaults and part of the cross-platform byte contract.
const (
	EnvelopeKeySize   = 32
	EnvelopeNonceSize = 12
	EnvelopeTagSize   = 16
)

// Envelope is the in-memory result of one authenticated encryption:
// ciphertext, the nonce it was sealed under, the GCM tag, and the optional
// associated data. The core keeps ciphertext and tag as separate fields and
// chooses no wire encoding; serialisation for storage or transport belongs
// to the models/transport layer.
type Envelope struct {
	Ciphertext []byte
	Nonce      []byte
	Tag        []byte
	// AssociatedData is carried unencrypted but authenticated by Tag.
	// nil means "no associated data" and must also be nil at decrypt time.
	AssociatedData []byte
}

// envelopeCipher is the private implementation of [EnvelopeCipher].
type envelopeCipher struct{}

// NewEnvelopeCipher constructs the stateless [EnvelopeCipher].
func NewEnvelopeCipher() EnvelopeCipher {
	return &envelopeCipher{}
}

// GenerateKey implements [EnvelopeCipher]. 32 random bytes from the OS
// CSPRNG; a read failure is fatal to the caller.
func (e *envelopeCipher) GenerateKey() ([]byte, error) {
	key := make([]byte, EnvelopeKeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("read system randomness: %w", err)
	}
	return key, nil
}

// GenerateNonce implements [EnvelopeCipher]. 12 random bytes, drawn fresh on
// every call.
func (e *envelopeCipher) GenerateNonce() ([]byte, error) {
	nonce := make([]byte, EnvelopeNonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("read system randomness: %w", err)
	}
	return nonce, nil
}

// Encrypt implements [EnvelopeCipher]. Key validation happens before any
// cryptographic work; the nonce is freshly random per call. GCM appends the
// tag to its output, so the last EnvelopeTagSize bytes are split off into
// the Tag field to keep the envelope explicit about its parts.
func (e *envelopeCipher) Encrypt(plaintext, key, aad []byte) (Envelope, error) {
	if len(key) != EnvelopeKeySize {
		return Envelope{}, fmt.Errorf("%w: got %d", ErrInvalidKeyLength, len(key))
	}

	gcm, err := newGCM(key)
	if err != nil {
		return Envelope{}, err
	}

	nonce, err := e.GenerateNonce()
	if err != nil {
		return Envelope{}, err
	}

	sealed := gcm.Seal(nil, nonce, plaintext, aad)
	split := len(sealed) - EnvelopeTagSize

	return Envelope{
		Ciphertext:     sealed[:split:split],
		Nonce:          nonce,
		Tag:            sealed[split:],
		AssociatedData: aad,
	}, nil
}

// Decrypt implements [EnvelopeCipher]. Input validation first, then a single
// gcm.Open over ciphertext||tag with the envelope's associated data. Tag
// comparison is done inside GCM in constant time; any failure — wrong key,
// tampered ciphertext or tag, wrong nonce, mismatched associated data — maps
// to ErrAuthenticationFailed.
func (e *envelopeCipher) Decrypt(env Envelope, key []byte) ([]byte, error) {
	if len(key) != EnvelopeKeySize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidKeyLength, len(key))
	}
	if len(env.Nonce) != EnvelopeNonceSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidNonceLength, len(env.Nonce))
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	sealed := make([]byte, 0, len(env.Ciphertext)+len(env.Tag))
	sealed = append(sealed, env.Ciphertext...)
	sealed = append(sealed, env.Tag...)

	plaintext, err := gcm.Open(nil, env.Nonce, sealed, env.AssociatedData)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}

	return plaintext, nil
}

// EncryptString implements [EnvelopeCipher].
func (e *envelopeCipher) EncryptString(value string, key, aad []byte) (Envelope, error) {
	return e.Encrypt([]byte(value), key, aad)
}

// DecryptString implements [EnvelopeCipher]. Fails with ErrInvalidUTF8 when
// the decrypted bytes do not form a valid UTF-8 string.
func (e *envelopeCipher) DecryptString(env Envelope, key []byte) (string, error) {
	plaintext, err := e.Decrypt(env, key)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plaintext) {
		return "", ErrInvalidUTF8
	}
	return string(plaintext), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
