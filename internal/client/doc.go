// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the device application runtime.
//
// It wires the push channel session, the event router and the reconnection
// controller into a [Device], binds the service handlers, and runs
// everything as one process lifecycle until the context is cancelled.
package client
