// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/MKhiriev/go-secure-notes/models"
)

func testKey(b byte) []byte {
	return bytes.Repeat([]byte{b}, KeySize)
}

func TestFieldCipher_GenerateKey_LengthAndRandomness(t *testing.T) {
	svc := NewFieldCipher()

	k1, err := svc.GenerateKey()
	require.NoError(t, err)
	k2, err := svc.GenerateKey()
	require.NoError(t, err)

	assert.Len(t, k1, 32)
	assert.Len(t, k2, 32)
	assert.NotEqual(t, k1, k2)
}

func TestFieldCipher_EncryptDecrypt_RoundTrip(t *testing.T) {
	svc := NewFieldCipher()
	key := testKey(0x2A)

	tests := []struct {
		name  string
		plain string
	}{
		{name: "ascii", plain: "Milk, eggs"},
		{name: "empty", plain: ""},
		{name: "exact block", plain: "0123456789abcdef"},
		{name: "unicode", plain: "секретная заметка ✓ 日本語"},
		{name: "multiline", plain: "line one\nline two\n\ttabbed"},
		{name: "long", plain: strings.Repeat("lorem ipsum ", 500)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, err := svc.Encrypt(tt.plain, key)
			require.NoError(t, err)

			if tt.plain != "" {
				assert.NotContains(t, field.Cipher, tt.plain)
			}

			got, err := svc.Decrypt(field, key)
			require.NoError(t, err)
			assert.Equal(t, tt.plain, got)
		})
	}
}

func TestFieldCipher_Encrypt_Encoding(t *testing.T) {
	svc := NewFieldCipher()

	field, err := svc.Encrypt("Groceries", testKey(0x01))
	require.NoError(t, err)

	iv, err := hex.DecodeString(field.IV)
	require.NoError(t, err)
	assert.Len(t, iv, IVSize)
	assert.Equal(t, strings.ToLower(field.IV), field.IV)

	salt, err := hex.DecodeString(field.Salt)
	require.NoError(t, err)
	assert.Len(t, salt, SaltSize)

	ct, err := base64.StdEncoding.DecodeString(field.Cipher)
	require.NoError(t, err)
	// "Groceries" is 9 bytes, padded to a single block.
	assert.Len(t, ct, 16)
}

func TestFieldCipher_Encrypt_FreshIVAndSaltPerCall(t *testing.T) {
	svc := NewFieldCipher()
	key := testKey(0x07)

	seenIV := make(map[string]struct{})
	seenCipher := make(map[string]struct{})

	for i := 0; i < 64; i++ {
		field, err := svc.Encrypt("same plaintext", key)
		require.NoError(t, err)

		_, dupIV := seenIV[field.IV]
		assert.False(t, dupIV, "iv reused on call %d", i)
		seenIV[field.IV] = struct{}{}

		_, dupCipher := seenCipher[field.Cipher]
		assert.False(t, dupCipher, "cipher repeated on call %d", i)
		seenCipher[field.Cipher] = struct{}{}
	}
}

func TestFieldCipher_Decrypt_IgnoresSalt(t *testing.T) {
	svc := NewFieldCipher()
	key := testKey(0x03)

	field, err := svc.Encrypt("salt is informational", key)
	require.NoError(t, err)

	field.Salt = ""
	got, err := svc.Decrypt(field, key)
	require.NoError(t, err)
	assert.Equal(t, "salt is informational", got)
}

func TestFieldCipher_InvalidKeyLength(t *testing.T) {
	svc := NewFieldCipher()

	_, err := svc.Encrypt("x", []byte("short"))
	assert.ErrorIs(t, err, ErrInvalidKeyLength)

	_, err = svc.Decrypt(models.EncryptedField{}, make([]byte, 16))
	assert.ErrorIs(t, err, ErrInvalidKeyLength)
}

func TestFieldCipher_Decrypt_Malformed(t *testing.T) {
	svc := NewFieldCipher()
	key := testKey(0x05)

	valid, err := svc.Encrypt("valid", key)
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(f models.EncryptedField) models.EncryptedField
	}{
		{
			name: "cipher not base64",
			mutate: func(f models.EncryptedField) models.EncryptedField {
				f.Cipher = "not-base64!!"
				return f
			},
		},
		{
			name: "cipher not block aligned",
			mutate: func(f models.EncryptedField) models.EncryptedField {
				f.Cipher = base64.StdEncoding.EncodeToString([]byte("fifteen bytes!!"))
				return f
			},
		},
		{
			name: "empty cipher",
			mutate: func(f models.EncryptedField) models.EncryptedField {
				f.Cipher = ""
				return f
			},
		},
		{
			name: "iv not hex",
			mutate: func(f models.EncryptedField) models.EncryptedField {
				f.IV = "zz"
				return f
			},
		},
		{
			name: "iv wrong length",
			mutate: func(f models.EncryptedField) models.EncryptedField {
				f.IV = "00ff"
				return f
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Decrypt(tt.mutate(valid), key)
			assert.ErrorIs(t, err, ErrMalformedCiphertext)
		})
	}
}

func TestFieldCipher_Decrypt_WrongKey(t *testing.T) {
	svc := NewFieldCipher()

	field, err := svc.Encrypt("only for the right key", testKey(0x11))
	require.NoError(t, err)

	_, err = svc.Decrypt(field, testKey(0x22))
	assert.Error(t, err)
}

func TestPKCS7(t *testing.T) {
	padded := pkcs7Pad([]byte("abc"), 16)
	assert.Len(t, padded, 16)
	assert.Equal(t, byte(13), padded[15])

	full := pkcs7Pad(bytes.Repeat([]byte{'a'}, 16), 16)
	assert.Len(t, full, 32)
	assert.Equal(t, bytes.Repeat([]byte{16}, 16), full[16:])

	out, err := pkcs7Unpad(padded, 16)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), out)

	bad := append(bytes.Repeat([]byte{'a'}, 15), 0)
	_, err = pkcs7Unpad(bad, 16)
	assert.ErrorIs(t, err, ErrInvalidPadding)

	inconsistent := append(bytes.Repeat([]byte{'a'}, 14), 3, 2)
	_, err = pkcs7Unpad(inconsistent, 16)
	assert.ErrorIs(t, err, ErrInvalidPadding)
}

func TestFieldCipher_RoundTrip_Property(t *testing.T) {
	svc := NewFieldCipher()

	rapid.Check(t, func(t *rapid.T) {
		key := rapid.SliceOfN(rapid.Byte(), KeySize, KeySize).Draw(t, "key")
		plain := rapid.String().Draw(t, "plain")

		field, err := svc.Encrypt(plain, key)
		if err != nil {
			t.Fatalf("encrypt: %v", err)
		}

		got, err := svc.Decrypt(field, key)
		if err != nil {
			t.Fatalf("decrypt: %v", err)
		}
		if got != plain {
			t.Fatalf("round trip mismatch: got %q, want %q", got, plain)
		}
	})
}
