// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package iopin

import (
	"strconv"

	"github.com/GermanBionicSystems/msp430/msp430g2553"
	"github.com/GermanBionicSystems/msp430/reg"
)

// Port identifies a group of up to 8 pins sharing one set of registers.
type Port uint8

const (
	Port1 Port = 1 + iota
	Port2
	Port3
)

// NumPins is the number of pins in a port.
const NumPins = 8

// Ports lists every port of the device.
var Ports = [...]Port{Port1, Port2, Port3}

func (p Port) String() string {
	return "P" + strconv.Itoa(int(p))
}

// Valid returns true if p is a port of the device.
func (p Port) Valid() bool {
	return p >= Port1 && p <= Port3
}

// HasInterrupts returns true if the port has interrupt registers.
func (p Port) HasInterrupts() bool {
	return p == Port1 || p == Port2
}

// Registers is the register set that governs the pins of one port.
type Registers struct {
	Dir  *reg.Register8 // direction, 1 = output
	Sel  *reg.Register8 // function select 1
	Sel2 *reg.Register8 // function select 2
	Ren  *reg.Register8 // pull resistor enable
	In   *reg.Register8 // pin level
	Out  *reg.Register8 // output level, or pull direction while Ren is set
	IE   *reg.Register8 // interrupt enable
	IES  *reg.Register8 // interrupt edge select, 1 = high-to-low
	IFG  *reg.Register8 // latched interrupt flag
}

// Port 3 has no interrupt registers and borrows port 1's.
var registers = [...]Registers{
	{
		Dir: msp430g2553.P1DIR, Sel: msp430g2553.P1SEL, Sel2: msp430g2553.P1SEL2,
		Ren: msp430g2553.P1REN, In: msp430g2553.P1IN, Out: msp430g2553.P1OUT,
		IE: msp430g2553.P1IE, IES: msp430g2553.P1IES, IFG: msp430g2553.P1IFG,
	},
	{
		Dir: msp430g2553.P2DIR, Sel: msp430g2553.P2SEL, Sel2: msp430g2553.P2SEL2,
		Ren: msp430g2553.P2REN, In: msp430g2553.P2IN, Out: msp430g2553.P2OUT,
		IE: msp430g2553.P2IE, IES: msp430g2553.P2IES, IFG: msp430g2553.P2IFG,
	},
	{
		Dir: msp430g2553.P3DIR, Sel: msp430g2553.P3SEL, Sel2: msp430g2553.P3SEL2,
		Ren: msp430g2553.P3REN, In: msp430g2553.P3IN, Out: msp430g2553.P3OUT,
		IE: msp430g2553.P1IE, IES: msp430g2553.P1IES, IFG: msp430g2553.P1IFG,
	},
}

// Resolve returns the registers of port p.
//
// It never fails: a value outside of the known ports resolves to the last
// port, and the interrupt registers of a port without interrupt support are
// those of Port1. Use Port.Valid and Port.HasInterrupts to rule these cases
// out.
func Resolve(p Port) *Registers {
	switch p {
	case Port1:
		return &registers[0]
	case Port2:
		return &registers[1]
	default:
		return &registers[2]
	}
}
