// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-secure-notes/internal/config"
	"github.com/MKhiriev/go-secure-notes/internal/crypto"
	"github.com/MKhiriev/go-secure-notes/internal/logger"
	"github.com/MKhiriev/go-secure-notes/internal/store"
	"github.com/MKhiriev/go-secure-notes/internal/validators"
	"github.com/MKhiriev/go-secure-notes/internal/vault"
	"github.com/MKhiriev/go-secure-notes/models"
)

// storageOpener opens the storage layer. Tests swap it to count or fail
// initialisation attempts.
type storageOpener func(ctx context.Context, cfg config.DB, log *logger.Logger) (*store.Storages, error)

type noteStore struct {
	cfg       config.DB
	vault     vault.CredentialVault
	cipher    crypto.FieldCipher
	validator validators.Validator
	clock     Clock
	logger    *logger.Logger

	open storageOpener
	init singleflight.Group

	// mu guards storages. Operations hold it for reading while they use the
	// repository, so Close waits for them.
	mu       sync.RWMutex
	storages *store.Storages
}

// NewNoteStore returns a [NoteStore] over the SQLite database described by
// cfg. Nothing is opened until the first call.
func NewNoteStore(cfg config.DB, v vault.CredentialVault, cipher crypto.FieldCipher, clock Clock, log *logger.Logger) NoteStore {
	if clock == nil {
		clock = RealClock{}
	}

	return &noteStore{
		cfg:       cfg,
		vault:     v,
		cipher:    cipher,
		validator: validators.NewNoteValidator(),
		clock:     clock,
		logger:    log,
		open:      store.NewStorages,
	}
}

func (s *noteStore) Initialize(ctx context.Context) error {
	s.mu.RLock()
	ready := s.storages != nil
	s.mu.RUnlock()
	if ready {
		return nil
	}

	// the flight is shared by every waiting caller, so it must outlive the
	// context of the one that started it
	flightCtx := context.WithoutCancel(ctx)
	_, err, _ := s.init.Do("init", func() (any, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		if s.storages != nil {
			return nil, nil
		}

		storages, err := s.open(flightCtx, s.cfg, s.logger)
		if err != nil {
			s.logger.Err(err).Str("func", "noteStore.Initialize").Msg("error opening note database")
			return nil, fmt.Errorf("%w: %w", ErrInitializationFailed, err)
		}
		s.storages = storages
		s.logger.Debug().Str("func", "noteStore.Initialize").Msg("note database ready")

		return nil, nil
	})

	return err
}

// withRepository runs fn against an initialised repository while holding the
// read lock.
func (s *noteStore) withRepository(ctx context.Context, fn func(repo store.NoteRepository) error) error {
	for {
		if err := s.Initialize(ctx); err != nil {
			return err
		}

		s.mu.RLock()
		if s.storages == nil {
			// closed between Initialize and RLock
			s.mu.RUnlock()
			continue
		}
		err := fn(s.storages.NoteRepository)
		s.mu.RUnlock()

		return err
	}
}

// contentKey fetches the note key. Callers must clear it when done.
func (s *noteStore) contentKey(ctx context.Context) ([]byte, error) {
	key, err := s.vault.GetOrCreateEncryptionKey(ctx, vault.ContentKeyName)
	if err != nil {
		return nil, fmt.Errorf("error getting encryption key: %w", err)
	}
	return key, nil
}

func (s *noteStore) validate(ctx context.Context, title, content string) error {
	if err := s.validator.Validate(ctx, models.Note{Title: title, Content: content}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidNote, err)
	}
	return nil
}

func (s *noteStore) encryptNote(title, content string, key []byte) (models.EncryptedField, models.EncryptedField, error) {
	encTitle, err := s.cipher.Encrypt(title, key)
	if err != nil {
		return models.EncryptedField{}, models.EncryptedField{}, fmt.Errorf("%w: title: %w", ErrEncryptionFailed, err)
	}
	encContent, err := s.cipher.Encrypt(content, key)
	if err != nil {
		return models.EncryptedField{}, models.EncryptedField{}, fmt.Errorf("%w: content: %w", ErrEncryptionFailed, err)
	}
	return encTitle, encContent, nil
}

func (s *noteStore) decryptNote(enc models.EncryptedNote, key []byte) (models.Note, error) {
	title, err := s.cipher.Decrypt(enc.Title, key)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: title of note %d: %w", ErrDecryptionFailed, enc.ID, err)
	}
	content, err := s.cipher.Decrypt(enc.Content, key)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: content of note %d: %w", ErrDecryptionFailed, enc.ID, err)
	}

	return models.Note{
		ID:        enc.ID,
		Title:     title,
		Content:   content,
		CreatedAt: enc.CreatedAt,
		UpdatedAt: enc.UpdatedAt,
	}, nil
}

func (s *noteStore) AddNote(ctx context.Context, title, content string) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := s.validate(ctx, title, content); err != nil {
		return models.Note{}, err
	}

	key, err := s.contentKey(ctx)
	if err != nil {
		return models.Note{}, err
	}
	defer clear(key)

	encTitle, encContent, err := s.encryptNote(title, content, key)
	if err != nil {
		log.Err(err).Str("func", "noteStore.AddNote").Msg("error encrypting note")
		return models.Note{}, err
	}

	now := s.clock.Now().UTC()
	note := models.Note{
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.withRepository(ctx, func(repo store.NoteRepository) error {
		id, err := repo.InsertNote(ctx, models.EncryptedNote{
			Title:     encTitle,
			Content:   encContent,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return mapRepositoryError(err)
		}
		note.ID = id
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "noteStore.AddNote").Msg("error saving note")
		return models.Note{}, err
	}

	log.Debug().Str("func", "noteStore.AddNote").Int64("id", note.ID).Msg("note added")
	return note, nil
}

func (s *noteStore) GetNotes(ctx context.Context) (models.NoteListing, error) {
	log := logger.FromContext(ctx)

	var rows []models.EncryptedNote
	err := s.withRepository(ctx, func(repo store.NoteRepository) error {
		var err error
		rows, err = repo.ListNotes(ctx)
		return mapRepositoryError(err)
	})
	if err != nil {
		log.Err(err).Str("func", "noteStore.GetNotes").Msg("error listing notes")
		return models.NoteListing{}, err
	}

	listing := models.NoteListing{Notes: make([]models.Note, 0, len(rows))}
	if len(rows) == 0 {
		return listing, nil
	}

	key, err := s.contentKey(ctx)
	if err != nil {
		return models.NoteListing{}, err
	}
	defer clear(key)

	for _, row := range rows {
		note, err := s.decryptNote(row, key)
		if err != nil {
			log.Warn().Err(err).Str("func", "noteStore.GetNotes").Int64("id", row.ID).Msg("skipping note that cannot be decrypted")
			listing.SkippedIDs = append(listing.SkippedIDs, row.ID)
			continue
		}
		listing.Notes = append(listing.Notes, note)
	}

	return listing, nil
}

func (s *noteStore) GetNote(ctx context.Context, id int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	var row models.EncryptedNote
	err := s.withRepository(ctx, func(repo store.NoteRepository) error {
		var err error
		row, err = repo.GetNote(ctx, id)
		return mapRepositoryError(err)
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).Str("func", "noteStore.GetNote").Int64("id", id).Msg("error reading note")
		}
		return models.Note{}, err
	}

	key, err := s.contentKey(ctx)
	if err != nil {
		return models.Note{}, err
	}
	defer clear(key)

	note, err := s.decryptNote(row, key)
	if err != nil {
		log.Err(err).Str("func", "noteStore.GetNote").Int64("id", id).Msg("error decrypting note")
		return models.Note{}, err
	}
	return note, nil
}

func (s *noteStore) UpdateNote(ctx context.Context, id int64, title, content string) error {
	log := logger.FromContext(ctx)

	if err := s.validate(ctx, title, content); err != nil {
		return err
	}

	key, err := s.contentKey(ctx)
	if err != nil {
		return err
	}
	defer clear(key)

	encTitle, encContent, err := s.encryptNote(title, content, key)
	if err != nil {
		log.Err(err).Str("func", "noteStore.UpdateNote").Int64("id", id).Msg("error encrypting note")
		return err
	}

	err = s.withRepository(ctx, func(repo store.NoteRepository) error {
		affected, err := repo.UpdateNote(ctx, models.EncryptedNote{
			ID:        id,
			Title:     encTitle,
			Content:   encContent,
			UpdatedAt: s.clock.Now().UTC(),
		})
		if err != nil {
			return mapRepositoryError(err)
		}
		if affected == 0 {
			return fmt.Errorf("%w: id %d", ErrNotFound, id)
		}
		return nil
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		log.Err(err).Str("func", "noteStore.UpdateNote").Int64("id", id).Msg("error updating note")
	}
	return err
}

func (s *noteStore) DeleteNote(ctx context.Context, id int64) error {
	err := s.withRepository(ctx, func(repo store.NoteRepository) error {
		return mapRepositoryError(repo.DeleteNote(ctx, id))
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "noteStore.DeleteNote").Int64("id", id).Msg("error deleting note")
	}
	return err
}

func (s *noteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.storages == nil {
		return nil
	}

	err := s.storages.Close()
	s.storages = nil
	if err != nil {
		s.logger.Err(err).Str("func", "noteStore.Close").Msg("error closing note database")
		return fmt.Errorf("error closing note database: %w", err)
	}
	return nil
}

// mapRepositoryError translates storage sentinels into service errors.
func mapRepositoryError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNoteNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, store.ErrConstraintViolation):
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	default:
		return err
	}
}
