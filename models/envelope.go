// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/MKhiriev/go-zkeb/internal/crypto"

// EncryptionEnvelope is the transport and storage representation of one
// authenticated encryption: ciphertext, the nonce it was sealed under, the
// 16-byte GCM tag, and optional associated data. The crypto core works on
// raw byte buffers and deliberately picks no wire encoding; this model is
// where the encoding decision lives — []byte fields marshal to standard
// base64 in JSON.
type EncryptionEnvelope struct {
	// Ciphertext is the encrypted payload, same length as the plaintext.
	Ciphertext []byte `json:"ciphertext"`

	// Nonce is the 12-byte value the envelope was sealed under. Fresh per
	// encryption; never reused for the same key.
	Nonce []byte `json:"nonce"`

	// Tag is the 16-byte authentication tag over ciphertext and associated
	// data jointly.
	Tag []byte `json:"tag"`

	// AssociatedData is carried in the clear but covered by Tag.
	// Omitted from JSON when absent; absence is part of what the tag binds.
	AssociatedData []byte `json:"associated_data,omitempty"`
}

// NewEncryptionEnvelope adapts a core envelope into its transport model.
func NewEncryptionEnvelope(env crypto.Envelope) EncryptionEnvelope {
	return EncryptionEnvelope{
		Ciphertext:     env.Ciphertext,
		Nonce:          env.Nonce,
		Tag:            env.Tag,
		AssociatedData: env.AssociatedData,
	}
}

// ToEnvelope converts the transport model back into the core envelope type.
func (e EncryptionEnvelope) ToEnvelope() crypto.Envelope {
	return crypto.Envelope{
		Ciphertext:     e.Ciphertext,
		Nonce:          e.Nonce,
		Tag:            e.Tag,
		AssociatedData: e.AssociatedData,
	}
}
