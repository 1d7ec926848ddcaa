// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 matu-sky

// Package client implements the interactive client application runtime.
//
// It wraps the terminal UI in a single process lifecycle with a clean exit
// path for deliberate quits.
package client
