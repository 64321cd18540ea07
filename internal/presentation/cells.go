// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package presentation

import "sync"

// Cell is a concurrency-safe string target. It satisfies [TextSink],
// [InputSink], [ImageSink] and [ErrorSink], so a front end can point any
// Surface field at one and read the value back when it redraws.
type Cell struct {
	mu      sync.RWMutex
	value   string
	version uint64
}

func (c *Cell) set(v string) {
	c.mu.Lock()
	c.value = v
	c.version++
	c.mu.Unlock()
}

func (c *Cell) SetText(text string) { c.set(text) }
func (c *Cell) SetValue(value string) { c.set(value) }
func (c *Cell) SetSource(src string) { c.set(src) }
func (c *Cell) ShowError(message string) { c.set(message) }

// Get returns the current value.
func (c *Cell) Get() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Version counts writes. A reader can compare versions to tell whether the
// cell was written since it last looked, even when the value is unchanged.
func (c *Cell) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// BusyCell is a concurrency-safe [SubmitSink].
type BusyCell struct {
	mu   sync.RWMutex
	busy bool
}

func (b *BusyCell) SetBusy(busy bool) {
	b.mu.Lock()
	b.busy = busy
	b.mu.Unlock()
}

// Busy reports whether the control is disabled.
func (b *BusyCell) Busy() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.busy
}

// Label returns the control's current label.
func (b *BusyCell) Label() string {
	if b.Busy() {
		return LabelBusy
	}
	return LabelIdle
}
