// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the profile client.
//
// One bubbletea screen shows the profile card and the login, profile edit,
// and avatar forms. The screen owns a set of [presentation.Cell] targets;
// controller calls run inside tea.Cmds and write to those cells, and the
// model re-reads them when the call has settled.
package tui
