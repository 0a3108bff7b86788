// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build tinygo

package msp430g2553

import (
	"unsafe"

	"github.com/GermanBionicSystems/msp430/reg"
)

// At returns the register mapped at addr.
func At(addr uintptr) *reg.Register8 {
	return (*reg.Register8)(unsafe.Pointer(addr))
}
