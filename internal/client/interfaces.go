// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "github.com/MKhiriev/go-secure-notes/internal/service"

// Client is what a single CLI command works with: the note store, the
// authentication flow and a way to release both.
type Client interface {
	// Notes returns the encrypted note store.
	Notes() service.NoteStore
	// Auth returns the PIN and biometric authentication service.
	Auth() service.AuthService
	// Close closes the notes database. Safe to call more than once.
	Close() error
}
