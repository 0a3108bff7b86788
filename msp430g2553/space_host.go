// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !tinygo

package msp430g2553

import "github.com/GermanBionicSystems/msp430/reg"

// space stands in for the peripheral address space.
var space [Size]reg.Register8

// At returns the register at addr in the simulated address space. It panics
// if addr is not below Size.
func At(addr uintptr) *reg.Register8 {
	return &space[addr]
}

// Reset restores the power-on register values. It does not call any
// OnWrite hook.
func Reset() {
	for i := range space {
		space[i].Poke(0)
	}
	P2SEL.Poke(P2SELReset)
}

func init() {
	Reset()
}
