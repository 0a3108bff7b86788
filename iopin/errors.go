// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package iopin

import "errors"

var (
	// ErrInvalidPort is returned for a port the device does not have.
	ErrInvalidPort = errors.New("iopin: invalid port")
	// ErrInvalidPin is returned for a pin index outside of 0-7.
	ErrInvalidPin = errors.New("iopin: invalid pin")
	// ErrNoInterrupt is returned when arming a pin of a port without
	// interrupt registers.
	ErrNoInterrupt = errors.New("iopin: port has no interrupt support")
	// ErrPinBusy is returned by a Registry for a pin already handed out.
	ErrPinBusy = errors.New("iopin: pin already in use")
)
