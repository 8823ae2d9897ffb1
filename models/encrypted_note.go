// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EncryptedField is the persisted encoding of one plaintext field.
//
// Cipher is the Base64 (standard encoding) AES-256-CBC ciphertext, IV and
// Salt are lowercase hex. IV must be freshly random for every encryption.
// Salt is stored for format compatibility only and takes no part in key
// derivation.
type EncryptedField struct {
	Cipher string
	IV     string
	Salt   string
}

// EncryptedNote is the on-disk representation of a [Note]: one row of the
// notes table.
type EncryptedNote struct {
	ID        int64
	Title     EncryptedField
	Content   EncryptedField
	CreatedAt time.Time
	UpdatedAt time.Time
}
