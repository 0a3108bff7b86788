// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !tinygo

package main

import (
	"github.com/GermanBionicSystems/msp430/iopin"
	"periph.io/x/conn/v3/gpio"
)

// LaunchPad wiring.
const (
	redPin    = 0
	buttonPin = 3
	greenPin  = 6
)

type firmware struct {
	red    iopin.Output
	green  iopin.Output
	button iopin.Input

	presses int
}

func newFirmware(pins *iopin.Registry) (*firmware, error) {
	red, err := pins.OutputLevel(iopin.Port1, redPin, gpio.Low)
	if err != nil {
		return nil, err
	}
	green, err := pins.OutputLevel(iopin.Port1, greenPin, gpio.Low)
	if err != nil {
		return nil, err
	}
	button, err := pins.Input(iopin.Port1, buttonPin)
	if err != nil {
		return nil, err
	}
	if err := button.ArmInterrupt(); err != nil {
		return nil, err
	}
	return &firmware{red: red, green: green, button: button}, nil
}

// step runs one pass of the main loop. It returns true if a button press was
// handled.
func (f *firmware) step() bool {
	f.red.Toggle()
	// No vector is installed: the latched flag is polled.
	ifg := iopin.Resolve(f.button.Port()).IFG
	if !ifg.HasBits(f.button.Mask()) {
		return false
	}
	ifg.ClearBits(f.button.Mask())
	f.green.Toggle()
	f.presses++
	return true
}
