package utils

import (
	"context"
	"errors"
)

// ctxKey is a private type for context keys defined in this package, so that
// no other package can collide with them.
type ctxKey string

// DeviceIDCtxKey is the context key under which the authentication
// middleware stores the authenticated device identifier.
const DeviceIDCtxKey ctxKey = "device_id"

// ErrNoDeviceIDInContext is returned when a handler expects an
// authenticated device ID in the context and none is present.
var ErrNoDeviceIDInContext = errors.New("no device id in context")

// DeviceIDFromContext extracts the authenticated device identifier stored by
// the auth middleware. Returns ErrNoDeviceIDInContext when the request was
// not authenticated.
func DeviceIDFromContext(ctx context.Context) (string, error) {
	deviceID, ok := ctx.Value(DeviceIDCtxKey).(string)
	if !ok || deviceID == "" {
		return "", ErrNoDeviceIDInContext
	}
	return deviceID, nil
}
