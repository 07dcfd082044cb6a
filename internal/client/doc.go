// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the runtime of the go-lightpack terminal
// clients.
//
// It picks the device adapter (the Prismatik socket or a remote daemon),
// runs the background status refresh and hands control to a frontend: the
// dashboard or the shell.
package client
