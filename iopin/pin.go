// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package iopin

import (
	"fmt"
	"strconv"

	"periph.io/x/conn/v3/gpio"
)

// pinView is the part shared by Output and Input: a pin's bit within the
// registers of its port.
type pinView struct {
	regs *Registers
	port Port
	pin  uint8
	mask uint8
}

func newPinView(p Port, pin uint8) (pinView, error) {
	if !p.Valid() {
		return pinView{}, fmt.Errorf("%w: %d", ErrInvalidPort, p)
	}
	if pin >= NumPins {
		return pinView{}, fmt.Errorf("%w: %s.%d", ErrInvalidPin, p, pin)
	}
	return pinView{regs: Resolve(p), port: p, pin: pin, mask: 1 << pin}, nil
}

func (v pinView) String() string {
	return v.port.String() + "." + strconv.Itoa(int(v.pin))
}

// readLevel reads the pin from PxIN, which tracks the pin level whatever the
// direction.
func readLevel(v pinView) gpio.Level {
	if v.regs.In.HasBits(v.mask) {
		return gpio.High
	}
	return gpio.Low
}

// armInterrupt enables the pin interrupt on the high-to-low edge. The flag is
// cleared last so a flag latched before arming, or set by the edge select
// write itself, is not seen as a new event.
func armInterrupt(v pinView) error {
	if !v.port.HasInterrupts() {
		return fmt.Errorf("%w: %s", ErrNoInterrupt, v)
	}
	v.regs.IE.SetBits(v.mask)
	v.regs.IES.SetBits(v.mask)
	v.regs.IFG.ClearBits(v.mask)
	return nil
}
