// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package secrets provides the secure key/value store that holds the PIN,
// the note encryption key and the biometric preference.
//
// Three backends are available, selected by [config.Secrets.Backend]:
//   - "memory": process-local map, nothing survives a restart
//   - "file":   JSON document sealed with Argon2id + AES-256-GCM
//   - "age":    JSON document encrypted to an age scrypt recipient
package secrets

import "context"

//go:generate mockgen -source=store.go -destination=../mock/secrets_mock.go -package=mock

// Store is a named secret store. Values are opaque bytes; callers own the
// encoding. All implementations are safe for concurrent use.
type Store interface {
	// Get returns the value stored under name, or [ErrSecretNotFound].
	Get(ctx context.Context, name string) ([]byte, error)
	// Set stores value under name, replacing any previous value.
	Set(ctx context.Context, name string, value []byte) error
	// Delete removes name. Deleting a missing name is not an error.
	Delete(ctx context.Context, name string) error
}
