// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks plaintext input before it reaches the cipher.
//
// A Validator accepts a model value and, optionally, the names of the fields
// to check. With no field names every known field is checked. The note
// store uses [NoteValidator] so that nothing is written that could not be
// decrypted back to the same text.
package validators

import "context"

// Validator validates obj, restricted to fields when any are given.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
