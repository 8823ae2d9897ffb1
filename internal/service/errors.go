package service

import "errors"

// Note store errors.
var (
	ErrInitializationFailed = errors.New("note store initialization failed")
	ErrNotFound             = errors.New("note not found")
	ErrEncryptionFailed     = errors.New("note encryption failed")
	ErrDecryptionFailed     = errors.New("note decryption failed")
	ErrConstraintViolation  = errors.New("note violates a storage constraint")
	ErrInvalidNote          = errors.New("invalid note")
)

// Auth errors.
var (
	ErrEmptyPin             = errors.New("pin must not be empty")
	ErrPinMismatch          = errors.New("pins do not match")
	ErrPinAlreadyConfigured = errors.New("pin is already configured")
	ErrPinNotConfigured     = errors.New("pin is not configured")
	ErrBiometricRejected    = errors.New("biometric authentication was not confirmed")
)
