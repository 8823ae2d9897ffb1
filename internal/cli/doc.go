// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the "notes" command line.
//
// Every command loads the configuration, opens a [client.Client] through a
// [Connector], unlocks it when the command touches notes and closes it
// before returning. PINs are read without echo when stdin is a terminal and
// as one line of stdin otherwise, so commands can be scripted.
package cli
