package secrets

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secure-notes/internal/crypto"
)

const sealedEnvelopeVersion = 1

// sealedEnvelope is the on-disk layout of the "file" backend. Salt and Blob
// are base64 in JSON.
type sealedEnvelope struct {
	Version int    `json:"version"`
	Salt    []byte `json:"salt"`
	Blob    []byte `json:"blob"`
}

// sealedCodec encrypts the document with a KEK derived from the passphrase.
// The KEK is derived once per salt and reused for later writes; every write
// still gets a fresh GCM nonce.
type sealedCodec struct {
	sealer     crypto.Sealer
	passphrase string

	salt []byte
	kek  []byte
}

func newSealedCodec(sealer crypto.Sealer, passphrase string) *sealedCodec {
	return &sealedCodec{sealer: sealer, passphrase: passphrase}
}

func (c *sealedCodec) seal(plaintext []byte) ([]byte, error) {
	if c.kek == nil {
		salt, err := c.sealer.GenerateSalt()
		if err != nil {
			return nil, fmt.Errorf("error generating salt: %w", err)
		}
		c.salt = salt
		c.kek = c.sealer.DeriveKEK(c.passphrase, salt)
	}

	blob, err := c.sealer.Seal(plaintext, c.kek)
	if err != nil {
		return nil, err
	}

	return json.Marshal(sealedEnvelope{
		Version: sealedEnvelopeVersion,
		Salt:    c.salt,
		Blob:    blob,
	})
}

func (c *sealedCodec) open(data []byte) ([]byte, error) {
	var env sealedEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptedFile, err)
	}
	if env.Version != sealedEnvelopeVersion || len(env.Salt) == 0 {
		return nil, fmt.Errorf("%w: unsupported envelope version %d", ErrCorruptedFile, env.Version)
	}

	kek := c.kek
	if kek == nil || !bytes.Equal(env.Salt, c.salt) {
		kek = c.sealer.DeriveKEK(c.passphrase, env.Salt)
	}

	plaintext, err := c.sealer.Open(env.Blob, kek)
	if errors.Is(err, crypto.ErrAuthenticationFailed) {
		return nil, ErrWrongPassphrase
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptedFile, err)
	}

	c.salt, c.kek = env.Salt, kek
	return plaintext, nil
}
