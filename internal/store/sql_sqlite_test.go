package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-secure-notes/internal/config"
	"github.com/MKhiriev/go-secure-notes/internal/logger"
	"github.com/MKhiriev/go-secure-notes/models"
)

func TestNewStorages_CreatesFileAndSchema(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "dir", "notes.db")

	storages, err := NewStorages(ctx, config.DB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	info, err := os.Stat(dsn)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	notes, err := storages.NoteRepository.ListNotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestNoteRepository_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()

	storages, err := NewStorages(ctx, config.DB{DSN: filepath.Join(t.TempDir(), "notes.db")}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })
	repo := storages.NoteRepository

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	older := testEncryptedNote()
	older.CreatedAt, older.UpdatedAt = base, base
	newer := testEncryptedNote()
	newer.CreatedAt, newer.UpdatedAt = base.Add(time.Millisecond), base.Add(time.Millisecond)
	tie := testEncryptedNote()
	tie.CreatedAt, tie.UpdatedAt = base, base

	olderID, err := repo.InsertNote(ctx, older)
	require.NoError(t, err)
	newerID, err := repo.InsertNote(ctx, newer)
	require.NoError(t, err)
	tieID, err := repo.InsertNote(ctx, tie)
	require.NoError(t, err)

	notes, err := repo.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	// newest first, equal timestamps by id descending
	assert.Equal(t, []int64{newerID, tieID, olderID}, []int64{notes[0].ID, notes[1].ID, notes[2].ID})

	updated := older
	updated.ID = olderID
	updated.Title = models.EncryptedField{Cipher: "new", IV: "new-iv", Salt: "new-salt"}
	updated.UpdatedAt = base.Add(time.Hour)
	updated.CreatedAt = base.Add(24 * time.Hour) // must be ignored

	affected, err := repo.UpdateNote(ctx, updated)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	got, err := repo.GetNote(ctx, olderID)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Title.Cipher)
	assert.Equal(t, base, got.CreatedAt)
	assert.Equal(t, base.Add(time.Hour), got.UpdatedAt)

	// a clock running behind never moves updated_at below created_at
	newer.ID = newerID
	newer.UpdatedAt = base.Add(-time.Hour)
	affected, err = repo.UpdateNote(ctx, newer)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	got, err = repo.GetNote(ctx, newerID)
	require.NoError(t, err)
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)

	affected, err = repo.UpdateNote(ctx, models.EncryptedNote{ID: 999, UpdatedAt: base})
	require.NoError(t, err)
	assert.Zero(t, affected)

	require.NoError(t, repo.DeleteNote(ctx, olderID))
	require.NoError(t, repo.DeleteNote(ctx, olderID))
	_, err = repo.GetNote(ctx, olderID)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestDB_wrapError_SQLiteConstraint(t *testing.T) {
	ctx := context.Background()

	storages, err := NewStorages(ctx, config.DB{DSN: filepath.Join(t.TempDir(), "notes.db")}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	_, err = storages.db.ExecContext(ctx, "INSERT INTO notes (title_cipher) VALUES (NULL)")
	require.Error(t, err)

	wrapped := storages.db.wrapError(err)
	assert.ErrorIs(t, wrapped, ErrConstraintViolation)
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	tests := []struct {
		name       string
		err        error
		want       ErrorClassification
		constraint bool
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "busy", err: sqlite3.Error{Code: sqlite3.ErrBusy}, want: Retryable},
		{name: "locked", err: sqlite3.Error{Code: sqlite3.ErrLocked}, want: Retryable},
		{name: "constraint", err: sqlite3.Error{Code: sqlite3.ErrConstraint}, want: NonRetryable, constraint: true},
		{name: "wrapped constraint", err: errors.Join(errors.New("ctx"), sqlite3.Error{Code: sqlite3.ErrConstraint}), want: NonRetryable, constraint: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
			assert.Equal(t, tt.constraint, c.IsConstraintViolation(tt.err))
		})
	}
}

func Test_sqliteDSN(t *testing.T) {
	assert.Equal(t, "notes.db?"+sqliteConnParams, sqliteDSN("notes.db"))
	assert.Equal(t, "file:notes.db?mode=ro", sqliteDSN("file:notes.db?mode=ro"))
	assert.Equal(t, "notes.db", sqlitePath("file:notes.db?mode=ro"))
	assert.Equal(t, "/tmp/x.db", sqlitePath("/tmp/x.db"))
}
