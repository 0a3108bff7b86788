// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package msp430g2553 holds the digital I/O register map of the TI
// MSP430G2553.
//
// # Datasheet
//
// https://www.ti.com/lit/gpn/msp430g2553
//
// # User's guide
//
// https://www.ti.com/lit/ug/slau144j/slau144j.pdf (chapter 8, Digital I/O)
package msp430g2553

// Size is the length of the 8-bit peripheral address space.
const Size = 0x100

// Port 1.
const (
	AddrP1IN   = 0x20
	AddrP1OUT  = 0x21
	AddrP1DIR  = 0x22
	AddrP1IFG  = 0x23
	AddrP1IES  = 0x24
	AddrP1IE   = 0x25
	AddrP1SEL  = 0x26
	AddrP1REN  = 0x27
	AddrP1SEL2 = 0x41
)

// Port 2.
const (
	AddrP2IN   = 0x28
	AddrP2OUT  = 0x29
	AddrP2DIR  = 0x2A
	AddrP2IFG  = 0x2B
	AddrP2IES  = 0x2C
	AddrP2IE   = 0x2D
	AddrP2SEL  = 0x2E
	AddrP2REN  = 0x2F
	AddrP2SEL2 = 0x42
)

// Port 3 has no interrupt capability.
const (
	AddrP3REN  = 0x10
	AddrP3IN   = 0x18
	AddrP3OUT  = 0x19
	AddrP3DIR  = 0x1A
	AddrP3SEL  = 0x1B
	AddrP3SEL2 = 0x43
)

// P2SELReset is the power-on value of P2SEL: P2.6 and P2.7 come up as the
// XIN/XOUT crystal pins.
const P2SELReset = 0xC0

var (
	P1IN   = At(AddrP1IN)
	P1OUT  = At(AddrP1OUT)
	P1DIR  = At(AddrP1DIR)
	P1IFG  = At(AddrP1IFG)
	P1IES  = At(AddrP1IES)
	P1IE   = At(AddrP1IE)
	P1SEL  = At(AddrP1SEL)
	P1REN  = At(AddrP1REN)
	P1SEL2 = At(AddrP1SEL2)

	P2IN   = At(AddrP2IN)
	P2OUT  = At(AddrP2OUT)
	P2DIR  = At(AddrP2DIR)
	P2IFG  = At(AddrP2IFG)
	P2IES  = At(AddrP2IES)
	P2IE   = At(AddrP2IE)
	P2SEL  = At(AddrP2SEL)
	P2REN  = At(AddrP2REN)
	P2SEL2 = At(AddrP2SEL2)

	P3IN   = At(AddrP3IN)
	P3OUT  = At(AddrP3OUT)
	P3DIR  = At(AddrP3DIR)
	P3SEL  = At(AddrP3SEL)
	P3REN  = At(AddrP3REN)
	P3SEL2 = At(AddrP3SEL2)
)
