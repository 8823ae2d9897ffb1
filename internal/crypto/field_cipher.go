// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/MKhiriev/go-secure-notes/models"
)

const (
	// KeySize is the note encryption key length (AES-256).
	KeySize = 32
	// IVSize is the CBC initialisation vector length.
	IVSize = aes.BlockSize
	// SaltSize is the length of the per-field salt.
	SaltSize = 16
)

// fieldCipher is the private implementation of [FieldCipher].
type fieldCipher struct {
	random io.Reader
}

// NewFieldCipher constructs a [FieldCipher] that reads randomness from the
// OS CSPRNG.
func NewFieldCipher() FieldCipher {
	return &fieldCipher{random: rand.Reader}
}

// GenerateKey implements [FieldCipher].
func (c *fieldCipher) GenerateKey() ([]byte, error) {
	return c.randomBytes(KeySize)
}

// Encrypt implements [FieldCipher]. The plaintext is PKCS#7-padded to the AES
// block size and encrypted in CBC mode with a fresh IV.
func (c *fieldCipher) Encrypt(plaintext string, key []byte) (models.EncryptedField, error) {
	block, err := newBlock(key)
	if err != nil {
		return models.EncryptedField{}, err
	}

	salt, err := c.randomBytes(SaltSize)
	if err != nil {
		return models.EncryptedField{}, fmt.Errorf("generate salt: %w", err)
	}
	iv, err := c.randomBytes(IVSize)
	if err != nil {
		return models.EncryptedField{}, fmt.Errorf("generate iv: %w", err)
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return models.EncryptedField{
		Cipher: base64.StdEncoding.EncodeToString(ciphertext),
		IV:     hex.EncodeToString(iv),
		Salt:   hex.EncodeToString(salt),
	}, nil
}

// Decrypt implements [FieldCipher].
func (c *fieldCipher) Decrypt(field models.EncryptedField, key []byte) (string, error) {
	block, err := newBlock(key)
	if err != nil {
		return "", err
	}

	iv, err := hex.DecodeString(field.IV)
	if err != nil {
		return "", fmt.Errorf("%w: decode iv: %v", ErrMalformedCiphertext, err)
	}
	if len(iv) != IVSize {
		return "", fmt.Errorf("%w: iv length %d", ErrMalformedCiphertext, len(iv))
	}

	ciphertext, err := base64.StdEncoding.DecodeString(field.Cipher)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %v", ErrMalformedCiphertext, err)
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: ciphertext length %d", ErrMalformedCiphertext, len(ciphertext))
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	plaintext, err = pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("%w: plaintext is not valid utf-8", ErrInvalidPadding)
	}

	return string(plaintext), nil
}

func (c *fieldCipher) randomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(c.random, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func newBlock(key []byte) (cipher.Block, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKeyLength, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	return block, nil
}

// pkcs7Pad always appends between 1 and blockSize bytes.
func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(append(make([]byte, 0, len(data)+n), data...), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrInvalidPadding
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, ErrInvalidPadding
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrInvalidPadding
		}
	}

	return data[:len(data)-n], nil
}
