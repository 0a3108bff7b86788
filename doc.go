// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package msp430 is a container for the MSP430G2xx3 digital I/O packages.
//
// Firmware uses iopin. The msp430g2553 package holds the register map, reg the
// register access, and sim, portview and periphpin let the same code run and
// be inspected on a host.
package msp430
