// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !tinygo

// Package sim models the digital I/O pins of an MSP430G2553 on the host.
//
// While a Sim is open, every write to a port register of the msp430g2553
// package settles the simulated pins: PxIN follows the driven outputs, the
// external drive applied with Drive, and the pull resistors. Ports 1 and 2
// latch PxIFG on the edge selected by PxIES. Interrupt vectors are not
// modelled, flags stay set until software clears them.
package sim

import (
	"errors"
	"fmt"
	"sync"

	"github.com/GermanBionicSystems/msp430/msp430g2553"
	"github.com/GermanBionicSystems/msp430/reg"
	"periph.io/x/conn/v3/gpio"
)

// NumPorts is the number of simulated ports.
const NumPorts = 3

var (
	// ErrBusy is returned by New while another Sim is open.
	ErrBusy = errors.New("sim: another simulator is open")
	// ErrInvalidPin is returned for a port or pin the device does not have.
	ErrInvalidPin = errors.New("sim: invalid pin")
)

// Opts represents the options of the simulator.
type Opts struct {
	// Float is the level an unconnected input without pull resistor
	// settles to after reset.
	Float gpio.Level

	_ struct{}
}

// PortState is the value of the registers of one port. Port 3 has no
// interrupt registers and reports zero for them.
type PortState struct {
	In, Out, Dir, Sel, Sel2, Ren, IE, IES, IFG uint8
}

// Snapshot is the register state of all ports, indexed by port number - 1.
type Snapshot [NumPorts]PortState

// Sim is the simulated pin electrical state.
type Sim struct {
	mu    sync.Mutex
	ports [NumPorts]port
}

var (
	openMu sync.Mutex
	open   *Sim
)

// New resets the registers to their power-on values and starts simulating
// them.
func New(opts *Opts) (*Sim, error) {
	openMu.Lock()
	defer openMu.Unlock()
	if open != nil {
		return nil, ErrBusy
	}
	if opts == nil {
		opts = &Opts{}
	}
	msp430g2553.Reset()
	s := &Sim{ports: newPorts()}
	var float uint8
	if opts.Float {
		float = 0xFF
	}
	for i := range s.ports {
		p := &s.ports[i]
		p.level = float
		for _, r := range p.registers() {
			r.OnWrite = s.onWrite
		}
	}
	s.mu.Lock()
	s.settle()
	s.mu.Unlock()
	open = s
	return s, nil
}

func (s *Sim) String() string {
	return "MSP430G2553 simulator"
}

// Close stops the simulation. The registers keep their last value.
func (s *Sim) Close() error {
	openMu.Lock()
	defer openMu.Unlock()
	if open != s {
		return nil
	}
	for i := range s.ports {
		for _, r := range s.ports[i].registers() {
			r.OnWrite = nil
		}
	}
	open = nil
	return nil
}

// Drive forces an external level on a pin, as a button or another chip
// would. It has no effect on the pin while it is an output.
func (s *Sim) Drive(port, pin uint8, l gpio.Level) error {
	p, mask, err := s.lookup(port, pin)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p.driveMask |= mask
	if l {
		p.driveVal |= mask
	} else {
		p.driveVal &^= mask
	}
	s.settle()
	return nil
}

// Release stops driving a pin externally.
func (s *Sim) Release(port, pin uint8) error {
	p, mask, err := s.lookup(port, pin)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p.driveMask &^= mask
	p.driveVal &^= mask
	s.settle()
	return nil
}

// Snapshot returns the current register values.
func (s *Sim) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	var snap Snapshot
	for i := range s.ports {
		snap[i] = s.ports[i].state()
	}
	return snap
}

func (s *Sim) lookup(port, pin uint8) (*port, uint8, error) {
	if port < 1 || port > NumPorts || pin > 7 {
		return nil, 0, fmt.Errorf("%w: P%d.%d", ErrInvalidPin, port, pin)
	}
	return &s.ports[port-1], 1 << pin, nil
}

func (s *Sim) onWrite(*reg.Register8) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settle()
}

func (s *Sim) settle() {
	for i := range s.ports {
		s.ports[i].settle()
	}
}
