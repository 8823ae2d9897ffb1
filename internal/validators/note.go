package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/go-secure-notes/models"
)

const (
	FieldTitle   = "title"
	FieldContent = "content"
)

// NoteValidator checks plaintext notes before they are encrypted. Decryption
// rejects anything that is not UTF-8, so such text is refused up front.
type NoteValidator struct {
}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(ctx, value, fields...)
	case *models.Note:
		return v.validateNote(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNote(_ context.Context, note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if !utf8.ValidString(note.Title) {
				return ErrInvalidTitle
			}
		case FieldContent:
			if !utf8.ValidString(note.Content) {
				return ErrInvalidContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
