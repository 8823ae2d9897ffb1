// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Note is a decrypted note. It lives only in memory and is never persisted
// in this form.
type Note struct {
	// ID is the row identifier assigned by the notes table.
	// Zero until the note has been persisted.
	ID int64

	// Title is the plaintext note title.
	Title string

	// Content is the plaintext note body.
	Content string

	// CreatedAt is set once when the note is added and never changes.
	CreatedAt time.Time

	// UpdatedAt is refreshed on every mutation. Always >= CreatedAt.
	UpdatedAt time.Time
}

// NoteListing is the result of a bulk read of the notes table.
type NoteListing struct {
	// Notes holds every note that decrypted successfully, newest first.
	Notes []Note

	// SkippedIDs lists the identifiers of rows that could not be decrypted
	// (corrupted ciphertext, key mismatch) and were left out of Notes.
	SkippedIDs []int64
}

// HasSkipped reports whether any row was left out of the listing.
func (l NoteListing) HasSkipped() bool {
	return len(l.SkippedIDs) > 0
}
