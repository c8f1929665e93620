package utils

import "github.com/google/uuid"

// NewUUID returns a random (version 4) UUID string. Used for backup IDs and
// for generating a device ID on the agent's first run.
func NewUUID() string {
	return uuid.NewString()
}

// IsValidUUID reports whether s parses as a UUID of any version.
func IsValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
