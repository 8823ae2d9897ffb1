package vault

import (
	"context"

	"github.com/MKhiriev/go-secure-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_mock.go -package=mock

// Secret names used in the secret store.
const (
	PinSecretName     = "secure_notes_pin"
	ContentKeyName    = "secure_notes_content_key"
	DatabaseKeyName   = "secure_notes_db_key" // reserved, nothing reads it yet
	BiometricPrefName = "biometricEnabled"
)

// CredentialVault manages the PIN, the encryption keys and the biometric
// gate. A wrong PIN is reported as false, never as an error.
type CredentialVault interface {
	// HasPin reports whether a PIN is stored.
	HasPin(ctx context.Context) (bool, error)
	// SetPin stores pin, replacing any previous one.
	SetPin(ctx context.Context, pin string) error
	// VerifyPin compares candidate with the stored PIN. Without a stored PIN
	// it returns false.
	VerifyPin(ctx context.Context, candidate string) (bool, error)
	// GetOrCreateEncryptionKey returns the 32-byte key stored under name,
	// creating and persisting one on first use. Concurrent first calls for
	// the same name all receive the same key.
	GetOrCreateEncryptionKey(ctx context.Context, name string) ([]byte, error)
	// AuthenticateBiometric runs the platform prompt.
	AuthenticateBiometric(ctx context.Context) (bool, error)
	// AuthMode derives the current unlock mode from the stored PIN and the
	// biometric preference.
	AuthMode(ctx context.Context) (models.AuthMode, error)
	// SetBiometricPreferred persists the biometric preference.
	SetBiometricPreferred(ctx context.Context, enabled bool) error
}

// BiometricSensor is the platform biometric prompt.
type BiometricSensor interface {
	// IsSensorAvailable reports whether hardware is present and enrolled.
	IsSensorAvailable(ctx context.Context) (bool, error)
	// Prompt shows message and returns true when the user authenticated.
	Prompt(ctx context.Context, message string) (bool, error)
}
