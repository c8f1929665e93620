package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-zkeb/internal/crypto"
	"github.com/MKhiriev/go-zkeb/internal/signing"
	"github.com/MKhiriev/go-zkeb/internal/utils"
)

// identityFile is the persisted form of [AgentIdentity]. The user master key
// and the private key never leave this file; it must live on the device only.
type identityFile struct {
	DeviceID      string `json:"device_id"`
	DeviceName    string `json:"device_name"`
	UMK           []byte `json:"umk"`
	PrivateKeyPEM string `json:"private_key_pem"`
}

// LoadOrCreateIdentity reads the agent identity from path, or bootstraps a
// fresh one when the file does not exist yet: a random 32-byte user master
// key, an RSA-4096 key pair, and a generated device ID unless deviceID is
// given. The file is written with 0600 permissions.
//
// deviceID and deviceName override the stored values only on first creation;
// an existing identity always wins so the key hierarchy stays stable.
func LoadOrCreateIdentity(path, deviceID, deviceName string) (*AgentIdentity, error) {
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		return parseIdentity(raw)
	case errors.Is(err, os.ErrNotExist):
		return createIdentity(path, deviceID, deviceName)
	default:
		return nil, fmt.Errorf("read identity file: %w", err)
	}
}

func parseIdentity(raw []byte) (*AgentIdentity, error) {
	var file identityFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse identity file: %w", err)
	}

	privateKey, err := signing.DecodePrivateKey(file.PrivateKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("decode identity private key: %w", err)
	}

	return &AgentIdentity{
		DeviceID:   file.DeviceID,
		DeviceName: file.DeviceName,
		UMK:        file.UMK,
		PrivateKey: privateKey,
	}, nil
}

func createIdentity(path, deviceID, deviceName string) (*AgentIdentity, error) {
	if deviceID == "" {
		deviceID = utils.NewUUID()
	}

	umk, err := crypto.NewKeyChainService().GenerateUserMasterKey()
	if err != nil {
		return nil, fmt.Errorf("generate user master key: %w", err)
	}

	privateKey, err := signing.GenerateKeyPair()
	if err != nil {
		return nil, fmt.Errorf("generate device key pair: %w", err)
	}

	privateKeyPEM, err := signing.EncodePrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("encode device private key: %w", err)
	}

	raw, err := json.MarshalIndent(identityFile{
		DeviceID:      deviceID,
		DeviceName:    deviceName,
		UMK:           umk,
		PrivateKeyPEM: privateKeyPEM,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal identity file: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create identity directory: %w", err)
		}
	}
	if err = os.WriteFile(path, raw, 0o600); err != nil {
		return nil, fmt.Errorf("write identity file: %w", err)
	}

	return &AgentIdentity{
		DeviceID:   deviceID,
		DeviceName: deviceName,
		UMK:        umk,
		PrivateKey: privateKey,
	}, nil
}
