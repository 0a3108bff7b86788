// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build tinygo

package reg

import "runtime/volatile"

// Register8 is a single 8-bit hardware register.
type Register8 struct {
	Reg uint8
}

// Get loads the register value.
func (r *Register8) Get() uint8 {
	return volatile.LoadUint8(&r.Reg)
}

// Set stores v in the register.
func (r *Register8) Set(v uint8) {
	volatile.StoreUint8(&r.Reg, v)
}
