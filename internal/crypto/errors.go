package crypto

import "errors"

var (
	// ErrInvalidKeyLength is returned when a key is not exactly 32 bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrMalformedCiphertext is returned when a stored field cannot be
	// decoded or has the wrong shape (bad Base64/hex, wrong IV length,
	// ciphertext not a multiple of the block size).
	ErrMalformedCiphertext = errors.New("malformed ciphertext")

	// ErrInvalidPadding is returned when the decrypted block does not end in
	// valid PKCS#7 padding or the plaintext is not valid UTF-8. With CBC this
	// usually means a wrong key or a tampered ciphertext.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrAuthenticationFailed is returned by [Sealer.Open] when the GCM tag
	// does not verify.
	ErrAuthenticationFailed = errors.New("authentication failed")
)
