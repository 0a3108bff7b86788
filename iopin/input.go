// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package iopin

import "periph.io/x/conn/v3/gpio"

// Input is a handle to a pin sensed by the device, with the internal pull-up
// enabled.
type Input struct {
	v pinView
}

// NewInput configures pin of port p as a plain digital input with pull-up and
// returns its handle.
func NewInput(p Port, pin uint8) (Input, error) {
	v, err := newPinView(p, pin)
	if err != nil {
		return Input{}, err
	}
	v.regs.Dir.ClearBits(v.mask)
	v.regs.Sel.ClearBits(v.mask)
	v.regs.Sel2.ClearBits(v.mask)
	// With Ren set, Out selects the pull direction and a cleared bit pulls up.
	// Clear it before enabling the resistor.
	v.regs.Out.ClearBits(v.mask)
	v.regs.Ren.SetBits(v.mask)
	return Input{v: v}, nil
}

// MustInput is NewInput but panics on error.
func MustInput(p Port, pin uint8) Input {
	i, err := NewInput(p, pin)
	if err != nil {
		panic(err)
	}
	return i
}

// Level returns the level present on the pin.
func (i Input) Level() gpio.Level {
	return readLevel(i.v)
}

// ArmInterrupt enables the high-to-low edge interrupt of the pin.
func (i Input) ArmInterrupt() error {
	return armInterrupt(i.v)
}

// Port returns the port of the pin.
func (i Input) Port() Port { return i.v.port }

// Pin returns the pin index within its port.
func (i Input) Pin() uint8 { return i.v.pin }

// Mask returns the bit of the pin in the port registers.
func (i Input) Mask() uint8 { return i.v.mask }

func (i Input) String() string {
	return i.v.String()
}
