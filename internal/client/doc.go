// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the profile client: configuration, session store,
// server adapter, services, bridge, and terminal UI, and runs them as one
// process.
package client
