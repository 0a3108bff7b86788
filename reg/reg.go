// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package reg provides access to 8-bit memory-mapped peripheral registers.
//
// On TinyGo a Register8 is the register itself: a slice or array of them can
// be overlaid on the peripheral address space. On a regular Go toolchain it is
// backed by ordinary memory so the same code can be exercised by tests and the
// simulator.
package reg

// SetBits sets the bits of mask, leaving the other bits unchanged.
func (r *Register8) SetBits(mask uint8) {
	r.Set(r.Get() | mask)
}

// ClearBits clears the bits of mask, leaving the other bits unchanged.
func (r *Register8) ClearBits(mask uint8) {
	r.Set(r.Get() &^ mask)
}

// ToggleBits inverts the bits of mask, leaving the other bits unchanged.
func (r *Register8) ToggleBits(mask uint8) {
	r.Set(r.Get() ^ mask)
}

// HasBits returns true if any bit of mask is set.
func (r *Register8) HasBits(mask uint8) bool {
	return r.Get()&mask != 0
}
