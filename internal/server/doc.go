// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the stub profile server: HTTP startup, signal
// handling, and graceful shutdown.
package server
