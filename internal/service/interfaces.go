package service

import (
	"context"

	"github.com/MKhiriev/go-secure-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// NoteStore is the encrypted note store. Titles and contents are encrypted
// before they reach the database and decrypted on the way out. Every method
// initialises the store lazily.
type NoteStore interface {
	// Initialize opens the database and installs the schema. Concurrent
	// callers share one attempt; a failed attempt may be retried.
	Initialize(ctx context.Context) error
	// AddNote encrypts and stores a new note and returns it with its ID.
	AddNote(ctx context.Context, title, content string) (models.Note, error)
	// GetNotes returns all readable notes, newest first. Rows that cannot be
	// decrypted are left out and listed in SkippedIDs.
	GetNotes(ctx context.Context) (models.NoteListing, error)
	// GetNote returns one note.
	GetNote(ctx context.Context, id int64) (models.Note, error)
	// UpdateNote replaces title and content of id and refreshes UpdatedAt.
	UpdateNote(ctx context.Context, id int64, title, content string) error
	// DeleteNote removes id. Missing IDs are not an error.
	DeleteNote(ctx context.Context, id int64) error
	// Close releases the database. It is safe to call more than once.
	Close() error
}

// AuthService drives PIN setup, the biometric preference and unlocking.
type AuthService interface {
	Mode(ctx context.Context) (models.AuthMode, error)
	SetupPin(ctx context.Context, pin, confirm string) error
	EnableBiometric(ctx context.Context) error
	DisableBiometric(ctx context.Context) error
	// Unlock reports whether req opens the store. A wrong PIN is false, not
	// an error.
	Unlock(ctx context.Context, req models.UnlockRequest) (bool, error)
}
