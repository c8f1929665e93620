// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the go-zkeb backup server.
//
// The primary abstraction is [ServerAdapter], which decouples the agent's
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-zkeb/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the go-zkeb
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// RegisterDevice enrolls this device with the server: its identifier, a
	// human-readable name, and the PEM public key the server will use to
	// verify challenges and backup signatures. Returns the persisted device
	// record.
	RegisterDevice(ctx context.Context, req models.RegisterDeviceRequest) (models.Device, error)

	// RequestChallenge asks the server for a fresh single-use login
	// challenge for the given device.
	RequestChallenge(ctx context.Context, deviceID string) (models.DeviceChallenge, error)

	// Login exchanges a signed challenge for a bearer token. On success the
	// token is stored via SetToken and returned.
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)

	// UploadBackup sends one encrypted backup record to the server and
	// returns it with server-assigned fields (version, timestamps) filled
	// in. Returns [ErrConflict] (wrapped) on an optimistic-locking conflict.
	UploadBackup(ctx context.Context, backup models.BackupRecord) (models.BackupRecord, error)

	// DownloadBackup retrieves one backup record, ciphertext included.
	DownloadBackup(ctx context.Context, backupID string) (models.BackupRecord, error)

	// SyncStates fetches lightweight state descriptors (ID, PayloadHash,
	// Version, Deleted, UpdatedAt) for every backup this device owns. Used
	// by the sync worker to compare server and local state without moving
	// ciphertext.
	SyncStates(ctx context.Context) (models.SyncResponse, error)

	// DeleteBackup soft-deletes one backup on the server.
	DeleteBackup(ctx context.Context, backupID string) error
}
