// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secrets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-secure-notes/internal/logger"
)

// codec turns the plaintext secret document into the bytes written to disk
// and back.
type codec interface {
	seal(plaintext []byte) ([]byte, error)
	open(data []byte) ([]byte, error)
}

// fileStore keeps every secret in one encrypted file. The whole document is
// loaded on open and rewritten on every change.
type fileStore struct {
	path  string
	codec codec

	mu      sync.RWMutex
	entries map[string][]byte

	logger *logger.Logger
}

// openFileStore reads path through c. A missing file yields an empty store;
// the file is created on the first Set.
func openFileStore(path string, c codec, log *logger.Logger) (*fileStore, error) {
	s := &fileStore{
		path:    path,
		codec:   c,
		entries: make(map[string][]byte),
		logger:  log,
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Debug().Str("func", "openFileStore").Str("path", path).Msg("secrets file does not exist yet")
		return s, nil
	}
	if err != nil {
		log.Err(err).Str("func", "openFileStore").Str("path", path).Msg("error reading secrets file")
		return nil, fmt.Errorf("error reading secrets file: %w", err)
	}

	plaintext, err := c.open(data)
	if err != nil {
		log.Err(err).Str("func", "openFileStore").Str("path", path).Msg("error opening secrets file")
		return nil, err
	}

	if err := json.Unmarshal(plaintext, &s.entries); err != nil {
		log.Err(err).Str("func", "openFileStore").Str("path", path).Msg("error decoding secrets document")
		return nil, fmt.Errorf("%w: %v", ErrCorruptedFile, err)
	}
	if s.entries == nil {
		s.entries = make(map[string][]byte)
	}

	return s, nil
}

func (s *fileStore) Get(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[name]
	if !ok {
		return nil, ErrSecretNotFound
	}
	return bytes.Clone(value), nil
}

func (s *fileStore) Set(ctx context.Context, name string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.entries[name]
	s.entries[name] = bytes.Clone(value)

	if err := s.flush(); err != nil {
		// roll back so memory matches disk
		if existed {
			s.entries[name] = prev
		} else {
			delete(s.entries, name)
		}
		s.logger.Err(err).Str("func", "fileStore.Set").Str("name", name).Msg("error writing secrets file")
		return err
	}

	return nil
}

func (s *fileStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.entries[name]
	if !existed {
		return nil
	}
	delete(s.entries, name)

	if err := s.flush(); err != nil {
		s.entries[name] = prev
		s.logger.Err(err).Str("func", "fileStore.Delete").Str("name", name).Msg("error writing secrets file")
		return err
	}

	return nil
}

// flush seals the current document and replaces the file atomically.
// Callers must hold s.mu.
func (s *fileStore) flush() error {
	plaintext, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("error encoding secrets document: %w", err)
	}

	data, err := s.codec.seal(plaintext)
	if err != nil {
		return fmt.Errorf("error sealing secrets document: %w", err)
	}

	return writeFileAtomic(s.path, data)
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it over path. The result is readable by the owner only.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("error creating secrets directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("error creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("error setting file mode: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("error syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error closing temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("error replacing secrets file: %w", err)
	}
	return nil
}
