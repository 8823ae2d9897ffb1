package secrets

import "errors"

var (
	// ErrSecretNotFound is returned by [Store.Get] when nothing is stored
	// under the requested name.
	ErrSecretNotFound = errors.New("secret not found")

	// ErrUnknownBackend is returned by [New] for an unsupported backend name.
	ErrUnknownBackend = errors.New("unknown secrets backend")

	// ErrWrongPassphrase is returned when an existing secret file cannot be
	// opened with the configured passphrase.
	ErrWrongPassphrase = errors.New("wrong secrets passphrase")

	// ErrCorruptedFile is returned when the secret file exists but cannot be
	// parsed.
	ErrCorruptedFile = errors.New("corrupted secrets file")
)
