// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// go-secure-notes command-line interface.
//
// All Msg* constants are human-readable strings printed to the terminal to
// describe the outcome of a command. Keeping them in one place keeps the
// wording consistent across commands.
package app

const (
	// MsgNotConfigured is printed when a command needs an unlocked vault but
	// no PIN has been set up yet.
	MsgNotConfigured = "no PIN configured, run \"notes setup\" first"

	// MsgAlreadyConfigured is printed when setup runs a second time.
	MsgAlreadyConfigured = "a PIN is already configured"

	// MsgWrongPin is printed when the supplied PIN does not match.
	MsgWrongPin = "wrong PIN"

	// MsgEmptyPin is printed when the user enters an empty PIN during setup.
	MsgEmptyPin = "PIN must not be empty"

	// MsgPinMismatch is printed when the PIN and its confirmation differ.
	MsgPinMismatch = "PINs do not match"

	// MsgPinConfigured confirms a successful first-run setup.
	MsgPinConfigured = "PIN configured"

	// MsgUnlocked confirms that the supplied credentials are valid.
	MsgUnlocked = "unlocked"

	// MsgBiometricEnabled confirms that biometric unlock is now preferred.
	MsgBiometricEnabled = "biometric unlock enabled"

	// MsgBiometricDisabled confirms that the PIN is the only unlock method.
	MsgBiometricDisabled = "biometric unlock disabled"

	// MsgBiometricRejected is printed when the biometric prompt was declined.
	MsgBiometricRejected = "biometric check was not confirmed"

	// MsgSensorUnavailable is printed when no biometric sensor is present.
	MsgSensorUnavailable = "no biometric sensor available"

	// MsgNoteNotFound is printed when a command targets a missing note.
	MsgNoteNotFound = "note not found"

	// MsgInvalidNoteID is printed when a note ID argument is not a positive
	// integer.
	MsgInvalidNoteID = "invalid note ID"

	// MsgNothingToUpdate is printed when edit is called without --title or
	// --content.
	MsgNothingToUpdate = "nothing to update, pass --title and/or --content"

	// MsgNoNotes is printed by list when the notes table is empty.
	MsgNoNotes = "no notes yet"

	// MsgNotesSkipped warns that some rows could not be decrypted.
	MsgNotesSkipped = "some notes could not be decrypted and were skipped"

	// MsgNoteAdded confirms a new note.
	MsgNoteAdded = "note added"

	// MsgNoteDeleted confirms a delete.
	MsgNoteDeleted = "note deleted"

	// MsgNoteUpdated confirms an edit.
	MsgNoteUpdated = "note updated"

	// MsgNoteCopied confirms that a note body was put on the clipboard.
	MsgNoteCopied = "note content copied to clipboard"

	// MsgStorageUnavailable is printed when the secret store or the notes
	// database cannot be opened.
	MsgStorageUnavailable = "secure storage unavailable"

	// MsgWrongPassphrase is printed when the secret file cannot be decrypted
	// with the configured passphrase.
	MsgWrongPassphrase = "wrong secret store passphrase"
)
