package crypto

import "errors"

var (
	// ErrInvalidOutputLength is returned by Expand and Derive when the
	// requested output length is outside 1..MaxOutputLength.
	ErrInvalidOutputLength = errors.New("hkdf output length out of range")

	// ErrInvalidUMK is returned when a user master key is not exactly 32 bytes.
	ErrInvalidUMK = errors.New("user master key must be 32 bytes")
	// ErrInvalidDeviceID is returned when a device identifier is empty after
	// trimming surrounding whitespace.
	ErrInvalidDeviceID = errors.New("device id must not be empty")
	// ErrInvalidDMK is returned when a device master key is not exactly 32 bytes.
	ErrInvalidDMK = errors.New("device master key must be 32 bytes")

	// ErrInvalidKeyLength is returned when an envelope key is not exactly 32 bytes.
	ErrInvalidKeyLength = errors.New("encryption key must be 32 bytes")
	// ErrInvalidNonceLength is returned when an envelope nonce is not exactly 12 bytes.
	ErrInvalidNonceLength = errors.New("nonce must be 12 bytes")
	// ErrAuthenticationFailed is returned when AEAD tag verification fails:
	// wrong key, tampered ciphertext, tampered tag, wrong nonce, or mismatched
	// associated data. Callers must treat it as an integrity incident, never
	// as a transient condition.
	ErrAuthenticationFailed = errors.New("envelope authentication failed")
	// ErrInvalidUTF8 is returned by DecryptString when the decrypted bytes are
	// not valid UTF-8.
	ErrInvalidUTF8 = errors.New("decrypted data is not valid UTF-8")
)
