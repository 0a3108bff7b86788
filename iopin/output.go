// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package iopin

import "periph.io/x/conn/v3/gpio"

// Output is a handle to a pin driven by the device.
type Output struct {
	v pinView
}

// NewOutput configures pin of port p as a plain digital output and returns
// its handle. The output level is left as it was.
func NewOutput(p Port, pin uint8) (Output, error) {
	v, err := newPinView(p, pin)
	if err != nil {
		return Output{}, err
	}
	v.regs.Dir.SetBits(v.mask)
	v.regs.Sel.ClearBits(v.mask)
	v.regs.Sel2.ClearBits(v.mask)
	return Output{v: v}, nil
}

// NewOutputLevel is NewOutput followed by SetLevel(l).
func NewOutputLevel(p Port, pin uint8, l gpio.Level) (Output, error) {
	o, err := NewOutput(p, pin)
	if err != nil {
		return Output{}, err
	}
	o.SetLevel(l)
	return o, nil
}

// MustOutput is NewOutput but panics on error. It is meant for package level
// variables with constant arguments.
func MustOutput(p Port, pin uint8) Output {
	o, err := NewOutput(p, pin)
	if err != nil {
		panic(err)
	}
	return o
}

// MustOutputLevel is NewOutputLevel but panics on error.
func MustOutputLevel(p Port, pin uint8, l gpio.Level) Output {
	o, err := NewOutputLevel(p, pin, l)
	if err != nil {
		panic(err)
	}
	return o
}

// SetLevel drives the pin to l.
func (o Output) SetLevel(l gpio.Level) {
	o.Set(bool(l))
}

// Set drives the pin high if on is true, low otherwise.
func (o Output) Set(on bool) {
	if on {
		o.v.regs.Out.SetBits(o.v.mask)
	} else {
		o.v.regs.Out.ClearBits(o.v.mask)
	}
}

// Toggle inverts the output level.
func (o Output) Toggle() {
	o.v.regs.Out.ToggleBits(o.v.mask)
}

// Level returns the level present on the pin.
func (o Output) Level() gpio.Level {
	return readLevel(o.v)
}

// ArmInterrupt enables the high-to-low edge interrupt of the pin.
func (o Output) ArmInterrupt() error {
	return armInterrupt(o.v)
}

// Port returns the port of the pin.
func (o Output) Port() Port { return o.v.port }

// Pin returns the pin index within its port.
func (o Output) Pin() uint8 { return o.v.pin }

// Mask returns the bit of the pin in the port registers.
func (o Output) Mask() uint8 { return o.v.mask }

func (o Output) String() string {
	return o.v.String()
}
