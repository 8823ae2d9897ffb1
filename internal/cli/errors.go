package cli

import (
	"errors"

	"github.com/MKhiriev/go-secure-notes/internal/app"
	"github.com/MKhiriev/go-secure-notes/internal/secrets"
	"github.com/MKhiriev/go-secure-notes/internal/service"
	"github.com/MKhiriev/go-secure-notes/internal/vault"
)

var (
	errWrongPin        = errors.New(app.MsgWrongPin)
	errInvalidNoteID   = errors.New(app.MsgInvalidNoteID)
	errNothingToUpdate = errors.New(app.MsgNothingToUpdate)
	errNoInput         = errors.New("unexpected end of input")
)

// userMessage turns err into the line printed to the user.
func userMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrPinNotConfigured):
		return app.MsgNotConfigured
	case errors.Is(err, service.ErrPinAlreadyConfigured):
		return app.MsgAlreadyConfigured
	case errors.Is(err, service.ErrEmptyPin):
		return app.MsgEmptyPin
	case errors.Is(err, service.ErrPinMismatch):
		return app.MsgPinMismatch
	case errors.Is(err, service.ErrBiometricRejected):
		return app.MsgBiometricRejected
	case errors.Is(err, vault.ErrSensorUnavailable):
		return app.MsgSensorUnavailable
	case errors.Is(err, service.ErrNotFound):
		return app.MsgNoteNotFound
	case errors.Is(err, secrets.ErrWrongPassphrase):
		return app.MsgWrongPassphrase
	default:
		return err.Error()
	}
}
