// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-secure-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNoteValidator(t *testing.T) {
	v := NewNoteValidator()
	require.NotNil(t, v)
}

func TestNoteValidator_Validate(t *testing.T) {
	invalid := string([]byte{0xff, 0xfe})

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{name: "valid note", obj: models.Note{Title: "Groceries", Content: "Milk, eggs"}},
		{name: "empty note", obj: models.Note{}},
		{name: "unicode", obj: &models.Note{Title: "Ünïcödé ✓", Content: "日本語 🔐"}},
		{name: "invalid title", obj: models.Note{Title: invalid, Content: "ok"}, wantErr: ErrInvalidTitle},
		{name: "invalid content", obj: &models.Note{Title: "ok", Content: "a" + invalid}, wantErr: ErrInvalidContent},
		{name: "title only skips content", obj: models.Note{Title: "ok", Content: invalid}, fields: []string{FieldTitle}},
		{name: "unknown field", obj: models.Note{}, fields: []string{"body"}, wantErr: ErrUnknownField},
		{name: "unsupported type", obj: "note", wantErr: ErrUnsupportedType},
		{name: "nil", obj: nil, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewNoteValidator().Validate(context.Background(), tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
