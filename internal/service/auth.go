package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secure-notes/internal/logger"
	"github.com/MKhiriev/go-secure-notes/internal/vault"
	"github.com/MKhiriev/go-secure-notes/models"
)

type authService struct {
	vault  vault.CredentialVault
	logger *logger.Logger
}

func NewAuthService(v vault.CredentialVault, log *logger.Logger) AuthService {
	return &authService{vault: v, logger: log}
}

func (a *authService) Mode(ctx context.Context) (models.AuthMode, error) {
	return a.vault.AuthMode(ctx)
}

func (a *authService) SetupPin(ctx context.Context, pin, confirm string) error {
	log := logger.FromContext(ctx)

	if pin == "" {
		return ErrEmptyPin
	}
	if pin != confirm {
		return ErrPinMismatch
	}

	hasPin, err := a.vault.HasPin(ctx)
	if err != nil {
		return err
	}
	if hasPin {
		return ErrPinAlreadyConfigured
	}

	if err := a.vault.SetPin(ctx, pin); err != nil {
		log.Err(err).Str("func", "authService.SetupPin").Msg("error storing pin")
		return err
	}
	log.Info().Str("func", "authService.SetupPin").Msg("pin configured")

	return nil
}

// EnableBiometric prompts once and stores the preference only when the
// prompt succeeds.
func (a *authService) EnableBiometric(ctx context.Context) error {
	log := logger.FromContext(ctx)

	hasPin, err := a.vault.HasPin(ctx)
	if err != nil {
		return err
	}
	if !hasPin {
		return ErrPinNotConfigured
	}

	ok, err := a.vault.AuthenticateBiometric(ctx)
	if err != nil {
		log.Warn().Err(err).Str("func", "authService.EnableBiometric").Msg("biometric prompt failed")
		return err
	}
	if !ok {
		return ErrBiometricRejected
	}

	if err := a.vault.SetBiometricPreferred(ctx, true); err != nil {
		log.Err(err).Str("func", "authService.EnableBiometric").Msg("error storing biometric preference")
		return err
	}
	return nil
}

func (a *authService) DisableBiometric(ctx context.Context) error {
	return a.vault.SetBiometricPreferred(ctx, false)
}

func (a *authService) Unlock(ctx context.Context, req models.UnlockRequest) (bool, error) {
	log := logger.FromContext(ctx)

	mode, err := a.vault.AuthMode(ctx)
	if err != nil {
		return false, err
	}

	switch mode {
	case models.AuthModeUnconfigured:
		return false, ErrPinNotConfigured

	case models.AuthModeBiometricPreferred:
		if req.UseBiometric {
			ok, err := a.vault.AuthenticateBiometric(ctx)
			switch {
			case err == nil && ok:
				log.Debug().Str("func", "authService.Unlock").Msg("unlocked with biometrics")
				return true, nil
			case err != nil && !errors.Is(err, vault.ErrSensorUnavailable):
				log.Warn().Err(err).Str("func", "authService.Unlock").Msg("biometric prompt failed, falling back to pin")
			default:
				log.Debug().Str("func", "authService.Unlock").Msg("biometric not confirmed, falling back to pin")
			}
		}
		fallthrough

	case models.AuthModePinOnly:
		if req.PIN == "" {
			return false, nil
		}
		ok, err := a.vault.VerifyPin(ctx, req.PIN)
		if err != nil {
			return false, err
		}
		if !ok {
			log.Info().Str("func", "authService.Unlock").Msg("wrong pin")
		}
		return ok, nil

	default:
		return false, fmt.Errorf("unknown auth mode %d", mode)
	}
}
