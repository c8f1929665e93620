// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Device is a registered backup client. The DeviceID is the same opaque
// identifier the client feeds into its key hierarchy; the server never sees
// any key derived from it — only the RSA public key used to verify backup
// signatures and login challenges.
type Device struct {
	// DeviceID is the caller-supplied opaque identifier (UUID by
	// convention, but any non-blank string is accepted).
	DeviceID string `json:"device_id"`

	// Name is a human-readable label ("work laptop").
	Name string `json:"name"`

	// PublicKeyPEM is the PKIX/PEM encoding of the device's RSA-4096 public
	// key. The matching private key never leaves the device.
	PublicKeyPEM string `json:"public_key_pem"`

	// RegisteredAt is set by the server when the device record is created.
	RegisteredAt time.Time `json:"registered_at"`
}

// DeviceChallenge is a single-use random value the server hands out for
// login. The device proves possession of its private key by returning an
// RSA-PSS signature over the challenge bytes.
type DeviceChallenge struct {
	DeviceID  string    `json:"device_id"`
	Challenge []byte    `json:"challenge"`
	ExpiresAt time.Time `json:"expires_at"`
}
