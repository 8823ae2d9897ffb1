package crypto

import "github.com/MKhiriev/go-secure-notes/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// FieldCipher encrypts and decrypts single note fields. It knows nothing
// about the database, the secret store or where keys come from: callers pass
// the 256-bit key on every call.
//
// Encoding of an [models.EncryptedField]:
//
//	Salt   = hex(16 random bytes)     informational, not used to derive keys
//	IV     = hex(16 random bytes)     fresh for every Encrypt call
//	Cipher = base64(AES-256-CBC(PKCS#7(plaintext), key, IV))
type FieldCipher interface {
	// GenerateKey returns 32 random bytes suitable as a note encryption key.
	GenerateKey() ([]byte, error)

	// Encrypt encrypts plaintext with key. Every call draws a new IV and a
	// new salt, so encrypting the same plaintext twice yields different
	// fields.
	Encrypt(plaintext string, key []byte) (models.EncryptedField, error)

	// Decrypt reverses Encrypt using the stored IV and key. The salt is
	// ignored. Returns an error when the field is malformed, the padding is
	// invalid or the plaintext is not valid UTF-8 (typically a wrong key).
	Decrypt(field models.EncryptedField, key []byte) (string, error)
}

// Sealer wraps opaque blobs under a key-encryption key derived from a
// passphrase. It backs the passphrase-protected secret file.
//
// Scheme:
//
//	Salt = GenerateSalt()              (stored in clear next to the blob)
//	KEK  = DeriveKEK(passphrase, Salt) (Argon2id)
//	Blob = Seal(plaintext, KEK)        (AES-256-GCM, nonce || ciphertext)
type Sealer interface {
	// GenerateSalt returns 16 random bytes for [Sealer.DeriveKEK].
	GenerateSalt() ([]byte, error)

	// DeriveKEK derives a 256-bit key from passphrase and salt with Argon2id.
	DeriveKEK(passphrase string, salt []byte) []byte

	// Seal encrypts plaintext with kek and returns nonce || ciphertext.
	Seal(plaintext, kek []byte) ([]byte, error)

	// Open reverses Seal. An authentication failure almost always means a
	// wrong passphrase and is reported as [ErrAuthenticationFailed].
	Open(blob, kek []byte) ([]byte, error)
}
