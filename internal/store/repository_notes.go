package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secure-notes/internal/logger"
	"github.com/MKhiriev/go-secure-notes/models"
)

type noteRepository struct {
	*DB
	logger *logger.Logger
}

func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.EncryptedNote, error) {
	var (
		note                 models.EncryptedNote
		createdAt, updatedAt string
	)

	err := row.Scan(
		&note.ID,
		&note.Title.Cipher,
		&note.Title.IV,
		&note.Title.Salt,
		&note.Content.Cipher,
		&note.Content.IV,
		&note.Content.Salt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return models.EncryptedNote{}, err
	}

	if note.CreatedAt, err = parseTime(createdAt); err != nil {
		return models.EncryptedNote{}, fmt.Errorf("created_at: %w", err)
	}
	if note.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return models.EncryptedNote{}, fmt.Errorf("updated_at: %w", err)
	}

	return note, nil
}

func (r *noteRepository) InsertNote(ctx context.Context, note models.EncryptedNote) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertNoteQuery(note)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.InsertNote").Msg("failed to build insert query")
		return 0, err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.InsertNote").Msg("failed to insert note")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, r.wrapError(err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "noteRepository.InsertNote").Msg("failed to read last insert id")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

func (r *noteRepository) GetNote(ctx context.Context, id int64) (models.EncryptedNote, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNoteByIDQuery(id)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.GetNote").Msg("failed to build select query")
		return models.EncryptedNote{}, err
	}

	note, err := scanNote(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.EncryptedNote{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "noteRepository.GetNote").Int64("id", id).Msg("failed to scan note row")
		return models.EncryptedNote{}, fmt.Errorf("%w: %w", ErrScanningRow, r.wrapError(err))
	}

	return note, nil
}

func (r *noteRepository) ListNotes(ctx context.Context) ([]models.EncryptedNote, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllNotesQuery()
	if err != nil {
		log.Err(err).Str("func", "noteRepository.ListNotes").Msg("failed to build select query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.ListNotes").Msg("failed to execute query for listing notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.wrapError(err))
	}
	defer rows.Close()

	notes := make([]models.EncryptedNote, 0)
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "noteRepository.ListNotes").Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "noteRepository.ListNotes").Msg("error iterating note rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

func (r *noteRepository) UpdateNote(ctx context.Context, note models.EncryptedNote) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(note)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.UpdateNote").Msg("failed to build update query")
		return 0, err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.UpdateNote").Int64("id", note.ID).Msg("failed to update note")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, r.wrapError(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "noteRepository.UpdateNote").Int64("id", note.ID).Msg("failed to read rows affected")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

func (r *noteRepository) DeleteNote(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(id)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.DeleteNote").Msg("failed to build delete query")
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "noteRepository.DeleteNote").Int64("id", id).Msg("failed to delete note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.wrapError(err))
	}

	return nil
}
