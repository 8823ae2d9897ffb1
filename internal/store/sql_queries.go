// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-secure-notes/models"
)

const notesTable = "notes"

// timeLayout is RFC 3339 with a fixed nine-digit fraction. Fixed width keeps
// lexical order of the TEXT columns equal to chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

var noteColumns = []string{
	"id",
	"title_cipher",
	"title_iv",
	"title_salt",
	"content_cipher",
	"content_iv",
	"content_salt",
	"created_at",
	"updated_at",
}

// statements is the statement builder for SQLite ("?" placeholders).
var statements = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		// rows written by other tools may carry a shorter fraction
		t, err = time.Parse(time.RFC3339Nano, s)
	}
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func buildInsertNoteQuery(note models.EncryptedNote) (string, []any, error) {
	query, args, err := statements.
		Insert(notesTable).
		Columns(noteColumns[1:]...).
		Values(
			note.Title.Cipher,
			note.Title.IV,
			note.Title.Salt,
			note.Content.Cipher,
			note.Content.IV,
			note.Content.Salt,
			formatTime(note.CreatedAt),
			formatTime(note.UpdatedAt),
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectNoteByIDQuery(id int64) (string, []any, error) {
	query, args, err := statements.
		Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectAllNotesQuery() (string, []any, error) {
	query, args, err := statements.
		Select(noteColumns...).
		From(notesTable).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateNoteQuery rewrites every encrypted column and updated_at in one
// statement. created_at is never touched, and updated_at never drops below it.
func buildUpdateNoteQuery(note models.EncryptedNote) (string, []any, error) {
	query, args, err := statements.
		Update(notesTable).
		Set("title_cipher", note.Title.Cipher).
		Set("title_iv", note.Title.IV).
		Set("title_salt", note.Title.Salt).
		Set("content_cipher", note.Content.Cipher).
		Set("content_iv", note.Content.IV).
		Set("content_salt", note.Content.Salt).
		Set("updated_at", sq.Expr("MAX(?, created_at)", formatTime(note.UpdatedAt))).
		Where(sq.Eq{"id": note.ID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteNoteQuery(id int64) (string, []any, error) {
	query, args, err := statements.
		Delete(notesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
