package store

import (
	"context"

	"github.com/MKhiriev/go-secure-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// NoteRepository persists encrypted notes. It never sees plaintext.
type NoteRepository interface {
	// InsertNote stores note and returns the new row ID. note.ID is ignored.
	InsertNote(ctx context.Context, note models.EncryptedNote) (int64, error)
	// GetNote returns the row with id, or [ErrNoteNotFound].
	GetNote(ctx context.Context, id int64) (models.EncryptedNote, error)
	// ListNotes returns every row, newest first.
	ListNotes(ctx context.Context) ([]models.EncryptedNote, error)
	// UpdateNote replaces the encrypted columns and updated_at of note.ID and
	// returns the number of rows affected.
	UpdateNote(ctx context.Context, note models.EncryptedNote) (int64, error)
	// DeleteNote removes id. Deleting a missing row is not an error.
	DeleteNote(ctx context.Context, id int64) error
}

// ErrorClassificator inspects driver errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsConstraintViolation(err error) bool
}
