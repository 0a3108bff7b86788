// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package iopin provides output and input handles for the digital I/O pins
// of an MSP430G2xx3.
//
// A handle couples the bit mask of one pin with the registers of its port.
// Creating a handle configures the pin, once; afterwards each method is a
// single register access:
//
//	led := iopin.MustOutputLevel(iopin.Port1, 0, gpio.Low)
//	button := iopin.MustInput(iopin.Port1, 3)
//	if button.Level() == gpio.Low {
//		led.Toggle()
//	}
//
// Handles do not own their pin. Two handles for the same pin are allowed and
// both operate the same hardware; use a Registry when exclusive ownership is
// wanted.
//
// Interrupt delivery is not handled here: ArmInterrupt only enables the
// source, selects the high-to-low edge and clears a stale flag.
package iopin
