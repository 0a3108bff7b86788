// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package iopin

import (
	"fmt"
	"sync"

	"periph.io/x/conn/v3/gpio"
)

// Registry hands out at most one handle per pin.
//
// The zero value is ready to use. A firmware normally has a single Registry
// created at startup.
type Registry struct {
	mu      sync.Mutex
	claimed [len(Ports)]uint8
}

// Output claims the pin and returns NewOutput(p, pin).
func (r *Registry) Output(p Port, pin uint8) (Output, error) {
	if err := r.claim(p, pin); err != nil {
		return Output{}, err
	}
	return NewOutput(p, pin)
}

// OutputLevel claims the pin and returns NewOutputLevel(p, pin, l).
func (r *Registry) OutputLevel(p Port, pin uint8, l gpio.Level) (Output, error) {
	if err := r.claim(p, pin); err != nil {
		return Output{}, err
	}
	return NewOutputLevel(p, pin, l)
}

// Input claims the pin and returns NewInput(p, pin).
func (r *Registry) Input(p Port, pin uint8) (Input, error) {
	if err := r.claim(p, pin); err != nil {
		return Input{}, err
	}
	return NewInput(p, pin)
}

// Release makes the pin available again. The pin configuration is left as
// is.
func (r *Registry) Release(p Port, pin uint8) {
	if !p.Valid() || pin >= NumPins {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.claimed[p-Port1] &^= 1 << pin
}

// InUse returns true if the pin is claimed.
func (r *Registry) InUse(p Port, pin uint8) bool {
	if !p.Valid() || pin >= NumPins {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.claimed[p-Port1]&(1<<pin) != 0
}

func (r *Registry) claim(p Port, pin uint8) error {
	v, err := newPinView(p, pin)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.claimed[p-Port1]&v.mask != 0 {
		return fmt.Errorf("%w: %s", ErrPinBusy, v)
	}
	r.claimed[p-Port1] |= v.mask
	return nil
}
