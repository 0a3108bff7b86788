// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !tinygo

package sim

import (
	"github.com/GermanBionicSystems/msp430/msp430g2553"
	"github.com/GermanBionicSystems/msp430/reg"
)

type port struct {
	in, out, dir, sel, sel2, ren *reg.Register8
	ifg, ies, ie                 *reg.Register8 // nil without interrupt support

	driveMask uint8 // pins driven from outside
	driveVal  uint8
	level     uint8 // last settled pin levels
	lastIES   uint8
}

func newPorts() [NumPorts]port {
	return [NumPorts]port{
		{
			in: msp430g2553.P1IN, out: msp430g2553.P1OUT, dir: msp430g2553.P1DIR,
			sel: msp430g2553.P1SEL, sel2: msp430g2553.P1SEL2, ren: msp430g2553.P1REN,
			ifg: msp430g2553.P1IFG, ies: msp430g2553.P1IES, ie: msp430g2553.P1IE,
		},
		{
			in: msp430g2553.P2IN, out: msp430g2553.P2OUT, dir: msp430g2553.P2DIR,
			sel: msp430g2553.P2SEL, sel2: msp430g2553.P2SEL2, ren: msp430g2553.P2REN,
			ifg: msp430g2553.P2IFG, ies: msp430g2553.P2IES, ie: msp430g2553.P2IE,
		},
		{
			in: msp430g2553.P3IN, out: msp430g2553.P3OUT, dir: msp430g2553.P3DIR,
			sel: msp430g2553.P3SEL, sel2: msp430g2553.P3SEL2, ren: msp430g2553.P3REN,
		},
	}
}

func (p *port) hasInterrupts() bool {
	return p.ifg != nil
}

func (p *port) registers() []*reg.Register8 {
	r := []*reg.Register8{p.in, p.out, p.dir, p.sel, p.sel2, p.ren}
	if p.hasInterrupts() {
		r = append(r, p.ifg, p.ies, p.ie)
	}
	return r
}

func (p *port) state() PortState {
	s := PortState{
		In:   p.in.Get(),
		Out:  p.out.Get(),
		Dir:  p.dir.Get(),
		Sel:  p.sel.Get(),
		Sel2: p.sel2.Get(),
		Ren:  p.ren.Get(),
	}
	if p.hasInterrupts() {
		s.IE = p.ie.Get()
		s.IES = p.ies.Get()
		s.IFG = p.ifg.Get()
	}
	return s
}

// settle computes the pin levels from the registers and the external drive,
// latches the interrupt flags and publishes the levels in PxIN.
func (p *port) settle() {
	dir := p.dir.Get()
	out := p.out.Get()
	ren := p.ren.Get()
	fn := p.sel.Get() | p.sel2.Get()

	driven := dir &^ fn
	external := p.driveMask &^ dir
	pulled := ren &^ (dir | p.driveMask)
	// Floating inputs and peripheral outputs keep their level.
	keep := ^(driven | external | pulled)

	// A pulled pin goes up while its Out bit is clear and down while set.
	level := driven&out | external&p.driveVal | pulled&^out | keep&p.level

	if p.hasInterrupts() {
		ies := p.ies.Get()
		falling := p.level &^ level
		rising := level &^ p.level
		flags := falling&ies | rising&^ies
		// Changing the edge select can set the flag by itself.
		flags |= (ies &^ p.lastIES) &^ level
		flags |= (p.lastIES &^ ies) & level
		p.lastIES = ies
		if flags != 0 {
			p.ifg.Poke(p.ifg.Get() | flags)
		}
	}
	p.level = level
	// PxIN is read-only; a software write is overwritten here.
	p.in.Poke(level)
}
