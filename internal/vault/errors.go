package vault

import "errors"

var (
	// ErrStorageUnavailable wraps any failure of the underlying secret store.
	ErrStorageUnavailable = errors.New("secure storage unavailable")
	// ErrSensorUnavailable is returned when no biometric hardware is present
	// or nothing is enrolled.
	ErrSensorUnavailable = errors.New("biometric sensor unavailable")
	// ErrCorruptedKey is returned when a stored key is not 32 hex-encoded
	// bytes.
	ErrCorruptedKey = errors.New("stored encryption key is corrupted")
)
