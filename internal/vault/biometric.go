package vault

import "context"

// NoSensor is a [BiometricSensor] for platforms without biometric hardware.
type NoSensor struct{}

// IsSensorAvailable always reports false.
func (NoSensor) IsSensorAvailable(context.Context) (bool, error) { return false, nil }

// Prompt always fails with [ErrSensorUnavailable].
func (NoSensor) Prompt(context.Context, string) (bool, error) { return false, ErrSensorUnavailable }
