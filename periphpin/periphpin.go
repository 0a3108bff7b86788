// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package periphpin exposes the MSP430G2xx3 digital I/O pins as periph.io
// gpio.PinIO, so code written against periph can drive them.
//
// Inputs always use the internal pull-up and only the high-to-low edge can be
// detected, as iopin handles do. Edges are found by polling the latched
// interrupt flag of the pin.
package periphpin

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/GermanBionicSystems/msp430/iopin"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/pin"
)

// PollInterval is how often WaitForEdge checks the interrupt flag.
var PollInterval = time.Millisecond

// Pin is one digital I/O pin.
type Pin struct {
	port iopin.Port
	num  uint8
	mask uint8

	mu   sync.Mutex
	fn   pin.Func
	pull gpio.Pull
	edge gpio.Edge
	out  iopin.Output
	in   iopin.Input
	halt chan struct{}
}

// New returns the pin num of port p. The pin is not configured until In or
// Out is called.
func New(p iopin.Port, num uint8) (*Pin, error) {
	if !p.Valid() {
		return nil, iopin.ErrInvalidPort
	}
	if num >= iopin.NumPins {
		return nil, iopin.ErrInvalidPin
	}
	return &Pin{
		port: p,
		num:  num,
		mask: 1 << num,
		pull: gpio.Float,
		halt: make(chan struct{}),
	}, nil
}

// Register creates every pin of the device and registers them with gpioreg
// as P<port>_<pin>.
func Register() ([]*Pin, error) {
	var pins []*Pin
	for _, p := range iopin.Ports {
		for n := uint8(0); n < iopin.NumPins; n++ {
			pp, err := New(p, n)
			if err != nil {
				return nil, err
			}
			if err := gpioreg.Register(pp); err != nil {
				_ = Unregister(pins)
				return nil, err
			}
			pins = append(pins, pp)
		}
	}
	return pins, nil
}

// Unregister removes the pins from gpioreg.
func Unregister(pins []*Pin) error {
	for _, p := range pins {
		if err := gpioreg.Unregister(p.Name()); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pin) String() string {
	return p.Name()
}

// Halt implements conn.Resource.
//
// It disarms the edge detection and unblocks WaitForEdge. The pin keeps its
// direction and level.
func (p *Pin) Halt() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.disarm()
	close(p.halt)
	p.halt = make(chan struct{})
	return nil
}

// Name returns the name of the pin, e.g. "P1_3".
func (p *Pin) Name() string {
	return p.port.String() + "_" + strconv.Itoa(int(p.num))
}

// Number returns the index of the pin across the ports, P1.0 being 0.
func (p *Pin) Number() int {
	return int(p.port-iopin.Port1)*iopin.NumPins + int(p.num)
}

// Deprecated: Use Func.
func (p *Pin) Function() string {
	return string(p.Func())
}

// In implements gpio.PinIn.
//
// Only gpio.PullUp is available; gpio.PullNoChange is accepted as such. Edge
// detection is limited to gpio.FallingEdge on ports 1 and 2.
func (p *Pin) In(pull gpio.Pull, edge gpio.Edge) error {
	switch pull {
	case gpio.PullUp, gpio.PullNoChange:
	case gpio.PullDown:
		return errors.New("periphpin: PullDown is not supported")
	case gpio.Float:
		return errors.New("periphpin: Float is not supported")
	default:
		return errors.New("periphpin: unknown pull " + pull.String())
	}
	switch edge {
	case gpio.NoEdge:
	case gpio.FallingEdge:
		if !p.port.HasInterrupts() {
			return iopin.ErrNoInterrupt
		}
	default:
		return errors.New("periphpin: only FallingEdge is supported")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	in, err := iopin.NewInput(p.port, p.num)
	if err != nil {
		return err
	}
	if edge == gpio.FallingEdge {
		if err := in.ArmInterrupt(); err != nil {
			return err
		}
	} else {
		p.disarm()
	}
	p.in = in
	p.fn = gpio.IN
	p.pull = gpio.PullUp
	p.edge = edge
	return nil
}

// Read implements gpio.PinIn.
func (p *Pin) Read() gpio.Level {
	p.mu.Lock()
	defer p.mu.Unlock()
	switch p.fn {
	case gpio.OUT:
		return p.out.Level()
	case gpio.IN:
		return p.in.Level()
	default:
		return gpio.Level(iopin.Resolve(p.port).In.HasBits(p.mask))
	}
}

// WaitForEdge implements gpio.PinIn.
//
// A negative timeout waits forever. The latched flag is cleared when an edge
// is reported.
func (p *Pin) WaitForEdge(timeout time.Duration) bool {
	p.mu.Lock()
	armed := p.edge == gpio.FallingEdge
	halt := p.halt
	p.mu.Unlock()
	if !armed {
		return false
	}

	var deadline <-chan time.Time
	if timeout >= 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		deadline = t.C
	}
	tick := time.NewTicker(PollInterval)
	defer tick.Stop()
	for {
		if p.takeEdge() {
			return true
		}
		select {
		case <-deadline:
			return p.takeEdge()
		case <-halt:
			return false
		case <-tick.C:
		}
	}
}

// Pull implements gpio.PinIn.
func (p *Pin) Pull() gpio.Pull {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pull
}

// DefaultPull implements gpio.PinIn. The pull resistors are disabled at reset.
func (p *Pin) DefaultPull() gpio.Pull {
	return gpio.Float
}

// Out implements gpio.PinOut.
//
// Edge detection is stopped.
func (p *Pin) Out(l gpio.Level) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.disarm()
	o, err := iopin.NewOutputLevel(p.port, p.num, l)
	if err != nil {
		return err
	}
	p.out = o
	p.fn = gpio.OUT
	p.pull = gpio.Float
	return nil
}

// PWM implements gpio.PinOut.
func (p *Pin) PWM(duty gpio.Duty, f physic.Frequency) error {
	return errors.New("periphpin: PWM is not supported")
}

// Func implements pin.PinFunc.
func (p *Pin) Func() pin.Func {
	r := iopin.Resolve(p.port)
	if r.Sel.HasBits(p.mask) || r.Sel2.HasBits(p.mask) {
		return pin.FuncNone
	}
	if r.Dir.HasBits(p.mask) {
		return gpio.OUT
	}
	return gpio.IN
}

// SupportedFuncs implements pin.PinFunc.
func (p *Pin) SupportedFuncs() []pin.Func {
	return supportedFuncs[:]
}

// SetFunc implements pin.PinFunc.
func (p *Pin) SetFunc(f pin.Func) error {
	switch f {
	case gpio.IN:
		return p.In(gpio.PullUp, gpio.NoEdge)
	case gpio.OUT:
		return p.Out(p.Read())
	default:
		return errors.New("periphpin: function not supported: " + string(f))
	}
}

// takeEdge reports and clears the latched flag of the pin.
func (p *Pin) takeEdge() bool {
	r := iopin.Resolve(p.port)
	if !r.IFG.HasBits(p.mask) {
		return false
	}
	r.IFG.ClearBits(p.mask)
	return true
}

// disarm turns off the pin interrupt. p.mu must be held.
func (p *Pin) disarm() {
	if p.edge == gpio.NoEdge || !p.port.HasInterrupts() {
		return
	}
	iopin.Resolve(p.port).IE.ClearBits(p.mask)
	p.edge = gpio.NoEdge
}

var supportedFuncs = [...]pin.Func{gpio.IN, gpio.OUT}

var _ gpio.PinIO = &Pin{}
