package service

import (
	"github.com/MKhiriev/go-secure-notes/internal/config"
	"github.com/MKhiriev/go-secure-notes/internal/crypto"
	"github.com/MKhiriev/go-secure-notes/internal/logger"
	"github.com/MKhiriev/go-secure-notes/internal/vault"
)

type Services struct {
	NoteStore   NoteStore
	AuthService AuthService
}

func NewServices(cfg config.DB, v vault.CredentialVault, cipher crypto.FieldCipher, log *logger.Logger) *Services {
	return &Services{
		NoteStore:   NewNoteStore(cfg, v, cipher, RealClock{}, log),
		AuthService: NewAuthService(v, log),
	}
}

// Close releases everything the services hold open.
func (s *Services) Close() error {
	return s.NoteStore.Close()
}
