// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
)

// Key sizes of the hierarchy. Every key in the chain is 256 bits.
const (
	UserMasterKeySize   = 32
	DeviceMasterKeySize = 32
	DerivedKeySize      = 32
)

// Domain-separation context strings. These are part of the cross-platform
// byte contract: every client implementation must use the exact same UTF-8
// literals or derived keys will not match across platforms.
const (
	dmkContext = "ZKEB-DMK-v1"
	bekContext = "ZKEB-BEK-v1"
	mekContext = "ZKEB-MEK-v1"
)

// Fixed salts for the purpose-key expansion. Together with the context
// strings above they guarantee BEK != MEK for any DMK.
const (
	bekSalt = "backup"
	mekSalt = "metadata"
)

// keyChainService is the private implementation of [KeyChainService].
// It carries no fields: the hierarchy is a set of pure functions, and the
// absence of cached key material is deliberate (nothing inside the service
// can outlive a call).
type keyChainService struct{}

// NewKeyChainService constructs the stateless [KeyChainService].
func NewKeyChainService() KeyChainService {
	return &keyChainService{}
}

// GenerateUserMasterKey implements [KeyChainService]. It reads 32 random
// bytes from the OS CSPRNG. A read failure is returned as-is: the caller
// must treat it as fatal rather than fall back to a weaker source.
func (k *keyChainService) GenerateUserMasterKey() ([]byte, error) {
	umk := make([]byte, UserMasterKeySize)
	if _, err := io.ReadFull(rand.Reader, umk); err != nil {
		return nil, fmt.Errorf("read system randomness: %w", err)
	}
	return umk, nil
}

// DeriveDeviceMasterKey implements [KeyChainService]. The device identifier
// acts as the HKDF salt, so every device under the same UMK ends up with an
// independent DMK:
//
//	DMK = HKDF(salt = deviceID, ikm = UMK, info = "ZKEB-DMK-v1", L = 32)
//
// Validation happens before any cryptographic work.
func (k *keyChainService) DeriveDeviceMasterKey(umk []byte, deviceID string) ([]byte, error) {
	if len(umk) != UserMasterKeySize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidUMK, len(umk))
	}
	if strings.TrimSpace(deviceID) == "" {
		return nil, ErrInvalidDeviceID
	}

	dmk, err := Derive([]byte(deviceID), umk, []byte(dmkContext), DeviceMasterKeySize)
	if err != nil {
		return nil, fmt.Errorf("derive device master key: %w", err)
	}
	return dmk, nil
}

// DeriveDeviceKeys implements [KeyChainService]. BEK and MEK are expanded
// independently from the DMK under distinct salts and context strings:
//
//	BEK = HKDF(salt = "backup",   ikm = DMK, info = "ZKEB-BEK-v1", L = 32)
//	MEK = HKDF(salt = "metadata", ikm = DMK, info = "ZKEB-MEK-v1", L = 32)
func (k *keyChainService) DeriveDeviceKeys(dmk []byte) (DeviceKeySet, error) {
	if len(dmk) != DeviceMasterKeySize {
		return DeviceKeySet{}, fmt.Errorf("%w: got %d", ErrInvalidDMK, len(dmk))
	}

	bek, err := Derive([]byte(bekSalt), dmk, []byte(bekContext), DerivedKeySize)
	if err != nil {
		return DeviceKeySet{}, fmt.Errorf("derive backup encryption key: %w", err)
	}

	mek, err := Derive([]byte(mekSalt), dmk, []byte(mekContext), DerivedKeySize)
	if err != nil {
		return DeviceKeySet{}, fmt.Errorf("derive metadata encryption key: %w", err)
	}

	return DeviceKeySet{BEK: bek, MEK: mek}, nil
}

// DeriveKeysFromUMK implements [KeyChainService]. Full chain in one call.
func (k *keyChainService) DeriveKeysFromUMK(umk []byte, deviceID string) ([]byte, DeviceKeySet, error) {
	dmk, err := k.DeriveDeviceMasterKey(umk, deviceID)
	if err != nil {
		return nil, DeviceKeySet{}, err
	}

	keys, err := k.DeriveDeviceKeys(dmk)
	if err != nil {
		return nil, DeviceKeySet{}, err
	}

	return dmk, keys, nil
}
