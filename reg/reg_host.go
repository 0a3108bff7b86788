// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !tinygo

package reg

import "sync/atomic"

// Register8 is a single 8-bit register backed by process memory.
type Register8 struct {
	v atomic.Uint32

	// OnWrite is called after every Set. It must be installed before the
	// register is shared between goroutines.
	OnWrite func(r *Register8)
}

// Get loads the register value.
func (r *Register8) Get() uint8 {
	return uint8(r.v.Load())
}

// Set stores v in the register and calls OnWrite.
func (r *Register8) Set(v uint8) {
	r.v.Store(uint32(v))
	if r.OnWrite != nil {
		r.OnWrite(r)
	}
}

// Poke stores v without calling OnWrite. It is the peripheral side of the
// register: a simulated pin changing PxIN, or a latched flag.
func (r *Register8) Poke(v uint8) {
	r.v.Store(uint32(v))
}
