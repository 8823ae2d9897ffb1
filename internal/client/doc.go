// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client wires the application runtime for one CLI invocation.
//
// It opens the secret store selected by the configuration, builds the
// credential vault on top of it and hands out the note store and the
// authentication service.
package client
