// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"bytes"
	"context"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-secure-notes/internal/crypto"
	"github.com/MKhiriev/go-secure-notes/internal/logger"
	"github.com/MKhiriev/go-secure-notes/internal/secrets"
	"github.com/MKhiriev/go-secure-notes/models"
)

const biometricPromptMessage = "Authenticate to access your secure notes"

type credentialVault struct {
	store  secrets.Store
	cipher crypto.FieldCipher
	sensor BiometricSensor

	keys  *keyCache
	group singleflight.Group
	locks sync.Map // key name -> *sync.Mutex

	logger *logger.Logger
}

// NewCredentialVault builds a [CredentialVault] on top of store. cipher is
// used only to generate new keys. A nil sensor is replaced with [NoSensor].
func NewCredentialVault(store secrets.Store, cipher crypto.FieldCipher, sensor BiometricSensor, log *logger.Logger) CredentialVault {
	if sensor == nil {
		sensor = NoSensor{}
	}

	return &credentialVault{
		store:  store,
		cipher: cipher,
		sensor: sensor,
		keys:   newKeyCache(),
		logger: log,
	}
}

func (v *credentialVault) HasPin(ctx context.Context) (bool, error) {
	_, err := v.store.Get(ctx, PinSecretName)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, secrets.ErrSecretNotFound):
		return false, nil
	default:
		v.logger.Err(err).Str("func", "credentialVault.HasPin").Msg("error reading pin")
		return false, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
}

func (v *credentialVault) SetPin(ctx context.Context, pin string) error {
	if err := v.store.Set(ctx, PinSecretName, []byte(pin)); err != nil {
		v.logger.Err(err).Str("func", "credentialVault.SetPin").Msg("error storing pin")
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

func (v *credentialVault) VerifyPin(ctx context.Context, candidate string) (bool, error) {
	stored, err := v.store.Get(ctx, PinSecretName)
	if errors.Is(err, secrets.ErrSecretNotFound) {
		return false, nil
	}
	if err != nil {
		v.logger.Err(err).Str("func", "credentialVault.VerifyPin").Msg("error reading pin")
		return false, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	return subtle.ConstantTimeCompare(stored, []byte(candidate)) == 1, nil
}

func (v *credentialVault) GetOrCreateEncryptionKey(ctx context.Context, name string) ([]byte, error) {
	if key, ok := v.keys.get(name); ok {
		return key, nil
	}

	// singleflight collapses concurrent callers in this process; the mutex
	// also serializes callers that arrive after a flight has finished but
	// before the cache is filled. The flight is shared, so one caller
	// cancelling must not fail the others.
	flightCtx := context.WithoutCancel(ctx)
	result, err, _ := v.group.Do(name, func() (any, error) {
		mu := v.lockFor(name)
		mu.Lock()
		defer mu.Unlock()

		if key, ok := v.keys.get(name); ok {
			return key, nil
		}

		key, err := v.loadOrCreateKey(flightCtx, name)
		if err != nil {
			return nil, err
		}
		v.keys.put(name, key)
		return key, nil
	})
	if err != nil {
		return nil, err
	}

	return bytes.Clone(result.([]byte)), nil
}

func (v *credentialVault) loadOrCreateKey(ctx context.Context, name string) ([]byte, error) {
	stored, err := v.store.Get(ctx, name)
	if err == nil {
		key, decodeErr := hex.DecodeString(string(stored))
		if decodeErr != nil || len(key) != crypto.KeySize {
			v.logger.Error().Str("func", "credentialVault.loadOrCreateKey").Str("name", name).Msg("stored key is corrupted")
			return nil, fmt.Errorf("%w: %s", ErrCorruptedKey, name)
		}
		return key, nil
	}
	if !errors.Is(err, secrets.ErrSecretNotFound) {
		v.logger.Err(err).Str("func", "credentialVault.loadOrCreateKey").Str("name", name).Msg("error reading key")
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	key, err := v.cipher.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("error generating key: %w", err)
	}

	if err := v.store.Set(ctx, name, []byte(hex.EncodeToString(key))); err != nil {
		v.logger.Err(err).Str("func", "credentialVault.loadOrCreateKey").Str("name", name).Msg("error storing new key")
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	v.logger.Info().Str("func", "credentialVault.loadOrCreateKey").Str("name", name).Msg("created new encryption key")

	return key, nil
}

func (v *credentialVault) lockFor(name string) *sync.Mutex {
	mu, _ := v.locks.LoadOrStore(name, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func (v *credentialVault) AuthenticateBiometric(ctx context.Context) (bool, error) {
	available, err := v.sensor.IsSensorAvailable(ctx)
	if err != nil {
		v.logger.Err(err).Str("func", "credentialVault.AuthenticateBiometric").Msg("error querying sensor")
		return false, fmt.Errorf("%w: %v", ErrSensorUnavailable, err)
	}
	if !available {
		return false, ErrSensorUnavailable
	}

	ok, err := v.sensor.Prompt(ctx, biometricPromptMessage)
	if err != nil {
		v.logger.Err(err).Str("func", "credentialVault.AuthenticateBiometric").Msg("biometric prompt failed")
		return false, err
	}
	return ok, nil
}

func (v *credentialVault) AuthMode(ctx context.Context) (models.AuthMode, error) {
	hasPin, err := v.HasPin(ctx)
	if err != nil {
		return models.AuthModeUnconfigured, err
	}
	if !hasPin {
		return models.AuthModeUnconfigured, nil
	}

	pref, err := v.store.Get(ctx, BiometricPrefName)
	switch {
	case errors.Is(err, secrets.ErrSecretNotFound):
		return models.AuthModePinOnly, nil
	case err != nil:
		v.logger.Err(err).Str("func", "credentialVault.AuthMode").Msg("error reading biometric preference")
		return models.AuthModeUnconfigured, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	case string(pref) == "true":
		return models.AuthModeBiometricPreferred, nil
	default:
		return models.AuthModePinOnly, nil
	}
}

func (v *credentialVault) SetBiometricPreferred(ctx context.Context, enabled bool) error {
	value := "false"
	if enabled {
		value = "true"
	}

	if err := v.store.Set(ctx, BiometricPrefName, []byte(value)); err != nil {
		v.logger.Err(err).Str("func", "credentialVault.SetBiometricPreferred").Msg("error storing biometric preference")
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}
