// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !tinygo

package sim

import (
	"errors"
	"testing"

	"github.com/GermanBionicSystems/msp430/msp430g2553"
	"github.com/go-test/deep"
	"periph.io/x/conn/v3/gpio"
)

func newSim(t *testing.T, opts *Opts) *Sim {
	t.Helper()
	s, err := New(opts)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestNew_reset(t *testing.T) {
	msp430g2553.P1OUT.Set(0x55)
	s := newSim(t, nil)
	want := Snapshot{
		{},
		{Sel: msp430g2553.P2SELReset},
		{},
	}
	if diff := deep.Equal(s.Snapshot(), want); diff != nil {
		t.Error(diff)
	}
}

func TestNew_busy(t *testing.T) {
	newSim(t, nil)
	if _, err := New(nil); !errors.Is(err, ErrBusy) {
		t.Fatalf("got %v, want ErrBusy", err)
	}
}

func TestNew_float(t *testing.T) {
	s := newSim(t, &Opts{Float: gpio.High})
	snap := s.Snapshot()
	for i, p := range snap {
		if p.In != 0xFF {
			t.Errorf("port %d: In = %#02x, want 0xff", i+1, p.In)
		}
	}
}

func TestOutputFollowsOut(t *testing.T) {
	newSim(t, nil)
	msp430g2553.P1DIR.Set(0x01)
	msp430g2553.P1OUT.Set(0x01)
	if got := msp430g2553.P1IN.Get(); got != 0x01 {
		t.Fatalf("P1IN = %#02x, want 0x01", got)
	}
	msp430g2553.P1OUT.ClearBits(0x01)
	if got := msp430g2553.P1IN.Get(); got != 0x00 {
		t.Fatalf("P1IN = %#02x, want 0x00", got)
	}
}

func TestOutputIgnoresDrive(t *testing.T) {
	s := newSim(t, nil)
	msp430g2553.P2DIR.Set(0x02)
	if err := s.Drive(2, 1, gpio.High); err != nil {
		t.Fatal(err)
	}
	if msp430g2553.P2IN.HasBits(0x02) {
		t.Fatal("output should not follow the external drive")
	}
	msp430g2553.P2DIR.Set(0)
	if !msp430g2553.P2IN.HasBits(0x02) {
		t.Fatal("input should follow the external drive")
	}
}

func TestPull(t *testing.T) {
	s := newSim(t, nil)
	msp430g2553.P1REN.Set(0x08)
	if !msp430g2553.P1IN.HasBits(0x08) {
		t.Fatal("pull-up expected with P1OUT clear")
	}
	msp430g2553.P1OUT.Set(0x08)
	if msp430g2553.P1IN.HasBits(0x08) {
		t.Fatal("pull-down expected with P1OUT set")
	}
	msp430g2553.P1OUT.Set(0)
	if err := s.Drive(1, 3, gpio.Low); err != nil {
		t.Fatal(err)
	}
	if msp430g2553.P1IN.HasBits(0x08) {
		t.Fatal("external drive overrides the pull resistor")
	}
	if err := s.Release(1, 3); err != nil {
		t.Fatal(err)
	}
	if !msp430g2553.P1IN.HasBits(0x08) {
		t.Fatal("pull-up expected after release")
	}
}

func TestFloatingKeepsLevel(t *testing.T) {
	s := newSim(t, nil)
	if err := s.Drive(3, 7, gpio.High); err != nil {
		t.Fatal(err)
	}
	if err := s.Release(3, 7); err != nil {
		t.Fatal(err)
	}
	if !msp430g2553.P3IN.HasBits(0x80) {
		t.Fatal("floating pin should keep its last level")
	}
}

func TestInIsReadOnly(t *testing.T) {
	newSim(t, nil)
	msp430g2553.P1IN.Set(0xFF)
	if got := msp430g2553.P1IN.Get(); got != 0 {
		t.Fatalf("P1IN = %#02x, want 0", got)
	}
}

func TestEdgeFlags(t *testing.T) {
	for _, tc := range []struct {
		name    string
		ies     uint8
		from    gpio.Level
		to      gpio.Level
		flagged bool
	}{
		{"falling, high-to-low selected", 0x01, gpio.High, gpio.Low, true},
		{"rising, high-to-low selected", 0x01, gpio.Low, gpio.High, false},
		{"rising, low-to-high selected", 0x00, gpio.Low, gpio.High, true},
		{"falling, low-to-high selected", 0x00, gpio.High, gpio.Low, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := newSim(t, nil)
			if err := s.Drive(1, 0, tc.from); err != nil {
				t.Fatal(err)
			}
			msp430g2553.P1IES.Set(tc.ies)
			msp430g2553.P1IFG.Set(0)
			if err := s.Drive(1, 0, tc.to); err != nil {
				t.Fatal(err)
			}
			if got := msp430g2553.P1IFG.HasBits(0x01); got != tc.flagged {
				t.Fatalf("P1IFG.0 = %t, want %t", got, tc.flagged)
			}
		})
	}
}

func TestEdgeSelectSetsFlag(t *testing.T) {
	newSim(t, nil)
	// P2.4 floats low: switching to high-to-low latches the flag.
	msp430g2553.P2IES.SetBits(0x10)
	if !msp430g2553.P2IFG.HasBits(0x10) {
		t.Fatal("flag expected after selecting high-to-low on a low pin")
	}
	msp430g2553.P2IFG.ClearBits(0x10)
	if msp430g2553.P2IFG.HasBits(0x10) {
		t.Fatal("flag should stay clear")
	}
}

func TestFlagsStayLatched(t *testing.T) {
	s := newSim(t, nil)
	msp430g2553.P1IES.Set(0x01)
	msp430g2553.P1IFG.Set(0)
	if err := s.Drive(1, 0, gpio.High); err != nil {
		t.Fatal(err)
	}
	if err := s.Drive(1, 0, gpio.Low); err != nil {
		t.Fatal(err)
	}
	if err := s.Drive(1, 0, gpio.High); err != nil {
		t.Fatal(err)
	}
	if !msp430g2553.P1IFG.HasBits(0x01) {
		t.Fatal("flag should stay set until cleared")
	}
}

func TestInvalidPin(t *testing.T) {
	s := newSim(t, nil)
	for _, c := range []struct{ port, pin uint8 }{{0, 0}, {4, 0}, {1, 8}} {
		if err := s.Drive(c.port, c.pin, gpio.High); !errors.Is(err, ErrInvalidPin) {
			t.Errorf("Drive(%d, %d) = %v, want ErrInvalidPin", c.port, c.pin, err)
		}
		if err := s.Release(c.port, c.pin); !errors.Is(err, ErrInvalidPin) {
			t.Errorf("Release(%d, %d) = %v, want ErrInvalidPin", c.port, c.pin, err)
		}
	}
}

func TestClose(t *testing.T) {
	s, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	msp430g2553.P1DIR.Set(0x01)
	msp430g2553.P1OUT.Set(0x01)
	if msp430g2553.P1IN.HasBits(0x01) {
		t.Fatal("registers should not be simulated after Close")
	}
	s2, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	_ = s2.Close()
}
