package models

// AuthMode describes how the user unlocks the application.
type AuthMode int

const (
	// AuthModeUnconfigured means no PIN has been set yet; first-run setup
	// must happen before any note can be read.
	AuthModeUnconfigured AuthMode = iota

	// AuthModePinOnly means the user unlocks with the PIN.
	AuthModePinOnly

	// AuthModeBiometricPreferred means the user chose biometrics; the PIN
	// remains available as a fallback.
	AuthModeBiometricPreferred
)

// String returns a short human-readable name of the mode.
func (m AuthMode) String() string {
	switch m {
	case AuthModeUnconfigured:
		return "unconfigured"
	case AuthModePinOnly:
		return "pin"
	case AuthModeBiometricPreferred:
		return "biometric"
	default:
		return "unknown"
	}
}

// UnlockRequest carries the credentials offered by the presentation layer.
type UnlockRequest struct {
	// PIN is the candidate PIN. May be empty when only biometrics are tried.
	PIN string

	// UseBiometric asks for a biometric challenge first when the user
	// prefers biometrics.
	UseBiometric bool
}
