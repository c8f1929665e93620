package models

// RegisterDeviceRequest creates a device record. The public key is the only
// credential the server ever stores for a device.
type RegisterDeviceRequest struct {
	DeviceID     string `json:"device_id"`
	Name         string `json:"name"`
	PublicKeyPEM string `json:"public_key_pem"`
}

// ChallengeRequest asks the server for a fresh single-use login challenge.
type ChallengeRequest struct {
	DeviceID string `json:"device_id"`
}

// LoginRequest proves possession of the device private key: Signature is an
// RSA-PSS signature over the challenge previously issued for DeviceID.
type LoginRequest struct {
	DeviceID  string `json:"device_id"`
	Challenge []byte `json:"challenge"`
	Signature []byte `json:"signature"`
}

// UploadBackupRequest stores (or overwrites) one backup snapshot.
type UploadBackupRequest struct {
	Backup BackupRecord `json:"backup"`
}

// SyncResponse lists the server-side state of every backup that belongs to
// the authenticated device.
type SyncResponse struct {
	// BackupStates carries one descriptor per backup; hash, version and
	// deletion flag are enough for the client to plan its next move.
	BackupStates []BackupState `json:"backup_states"`

	// Length is the number of entries in BackupStates.
	Length int `json:"length"`
}
