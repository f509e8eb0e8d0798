// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Dubrovin

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the profile reconciler, and the background
// refresh job into a single process lifecycle.
package client
