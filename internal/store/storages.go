package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secure-notes/internal/config"
	"github.com/MKhiriev/go-secure-notes/internal/logger"
)

// Storages groups the storage layer handed to the service layer. It owns the
// database handle; Close releases it.
type Storages struct {
	NoteRepository NoteRepository

	db *DB
}

// NewStorages opens the SQLite database at cfg.DSN, creating the file if
// needed, installs the schema and wires a [NoteRepository] to it.
func NewStorages(ctx context.Context, cfg config.DB, logger *logger.Logger) (*Storages, error) {
	logger.Debug().Str("func", "NewStorages").Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		NoteRepository: NewNoteRepository(db, logger),
		db:             db,
	}, nil
}

// Close releases the database handle.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
