package crypto

// DeviceKeySet holds the two purpose-specific keys derived from one device
// master key. BEK and MEK are always distinct: they are expanded under
// different salts and context strings.
type DeviceKeySet struct {
	// BEK encrypts backup payloads (32 bytes).
	BEK []byte
	// MEK encrypts backup metadata (32 bytes).
	MEK []byte
}

// KeyChainService is the deterministic key hierarchy of the zero-knowledge
// backup scheme. One root secret per user; everything below it is recomputed
// on demand:
//
//	UMK  = GenerateUserMasterKey()                  (random, once, client-only)
//	DMK  = DeriveDeviceMasterKey(UMK, deviceID)     (per device)
//	Keys = DeriveDeviceKeys(DMK)                    (BEK + MEK)
//
// Implementations hold no state and cache nothing: every derived key is value
// data owned by the caller, and identical inputs always produce identical
// output. The UMK never leaves the client that generated it.
type KeyChainService interface {
	// GenerateUserMasterKey returns 32 bytes from the OS CSPRNG — the root of
	// the user's key hierarchy. A failing randomness source is returned as an
	// error and must never be retried against a weaker source.
	GenerateUserMasterKey() ([]byte, error)

	// DeriveDeviceMasterKey derives the 32-byte device master key for
	// deviceID from the user master key. Deterministic; distinct device IDs
	// yield independent DMKs. Returns ErrInvalidUMK or ErrInvalidDeviceID on
	// bad input.
	DeriveDeviceMasterKey(umk []byte, deviceID string) ([]byte, error)

	// DeriveDeviceKeys expands a device master key into its backup and
	// metadata encryption keys. Deterministic. Returns ErrInvalidDMK on bad
	// input.
	DeriveDeviceKeys(dmk []byte) (DeviceKeySet, error)

	// DeriveKeysFromUMK runs the full chain UMK -> DMK -> {BEK, MEK} and
	// returns both the intermediate DMK and the key set.
	DeriveKeysFromUMK(umk []byte, deviceID string) ([]byte, DeviceKeySet, error)
}

// EnvelopeCipher seals and opens authenticated-encryption envelopes with
// AES-256-GCM. It works with any 32-byte key — typically a BEK or MEK from
// the KeyChainService, but also a PBKDF2-derived recovery key. Stateless;
// safe for concurrent use.
type EnvelopeCipher interface {
	// GenerateKey returns a fresh random 32-byte AES-256 key.
	GenerateKey() ([]byte, error)

	// GenerateNonce returns a fresh random 12-byte GCM nonce. A new nonce is
	// drawn for every encryption; reuse under one key breaks GCM.
	GenerateNonce() ([]byte, error)

	// Encrypt seals plaintext under key with a fresh nonce. aad, when
	// non-nil, is carried in the envelope unencrypted but authenticated by
	// the tag. Returns ErrInvalidKeyLength before any cryptographic work if
	// the key is not 32 bytes.
	Encrypt(plaintext, key, aad []byte) (Envelope, error)

	// Decrypt opens an envelope, authenticating ciphertext and associated
	// data jointly. Any mismatch — wrong key, flipped ciphertext/tag/nonce
	// bit, altered or missing aad — returns ErrAuthenticationFailed.
	Decrypt(env Envelope, key []byte) ([]byte, error)

	// EncryptString is Encrypt over the UTF-8 bytes of value.
	EncryptString(value string, key, aad []byte) (Envelope, error)

	// DecryptString is Decrypt plus a UTF-8 validity check on the result.
	DecryptString(env Envelope, key []byte) (string, error)
}
