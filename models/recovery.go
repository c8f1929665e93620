// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RecoveryBundle is everything needed to recover a user master key with
// nothing but the recovery passphrase: the PBKDF2 salt and iteration count
// in the clear, and the UMK sealed inside an authenticated envelope under
// the passphrase-derived key. Safe to store server-side — without the
// passphrase it is opaque.
type RecoveryBundle struct {
	// Salt is the random 16-byte PBKDF2 salt. Not a secret.
	Salt []byte `json:"salt"`

	// Iterations is the PBKDF2 iteration count the bundle was created with,
	// pinned per bundle so parameter upgrades do not break old bundles.
	Iterations int `json:"iterations"`

	// WrappedUMK is the user master key sealed under the recovery key.
	WrappedUMK EncryptionEnvelope `json:"wrapped_umk"`
}
