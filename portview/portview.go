// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package portview displays the state of the digital I/O pins, either on the
// terminal using ANSI color codes or as an image.
//
// Useful to watch a firmware run in the simulator.
package portview

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/GermanBionicSystems/msp430/iopin"
	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Kind is what a pin is configured as, as seen from its registers.
type Kind int

const (
	Input Kind = iota
	PulledInput
	Output
	Peripheral
)

// PinState is the decoded state of one pin.
type PinState struct {
	Kind  Kind
	High  bool
	Armed bool // interrupt enabled
	Flag  bool // interrupt flag latched
}

// Colors used for the pins. High levels are brighter.
var (
	OutputHigh     = color.NRGBA{R: 255, G: 40, B: 40, A: 255}
	OutputLow      = color.NRGBA{R: 90, G: 0, B: 0, A: 255}
	InputHigh      = color.NRGBA{R: 40, G: 220, B: 40, A: 255}
	InputLow       = color.NRGBA{R: 0, G: 80, B: 0, A: 255}
	PeripheralFunc = color.NRGBA{R: 110, G: 110, B: 110, A: 255}
)

// Read decodes the state of the pins of port p.
func Read(p iopin.Port) [iopin.NumPins]PinState {
	r := iopin.Resolve(p)
	dir, ren, in := r.Dir.Get(), r.Ren.Get(), r.In.Get()
	fn := r.Sel.Get() | r.Sel2.Get()
	var ie, ifg uint8
	if p.HasInterrupts() {
		ie, ifg = r.IE.Get(), r.IFG.Get()
	}
	var s [iopin.NumPins]PinState
	for i := range s {
		m := uint8(1) << i
		switch {
		case fn&m != 0:
			s[i].Kind = Peripheral
		case dir&m != 0:
			s[i].Kind = Output
		case ren&m != 0:
			s[i].Kind = PulledInput
		default:
			s[i].Kind = Input
		}
		s[i].High = in&m != 0
		s[i].Armed = ie&m != 0
		s[i].Flag = ifg&m != 0
	}
	return s
}

// Color returns the color used for s.
func (s PinState) Color() color.NRGBA {
	switch {
	case s.Kind == Peripheral:
		return PeripheralFunc
	case s.Kind == Output && s.High:
		return OutputHigh
	case s.Kind == Output:
		return OutputLow
	case s.High:
		return InputHigh
	default:
		return InputLow
	}
}

// Rune returns the character used for s when colors are not available: H/L
// for outputs, h/l for inputs and - for pins assigned to a peripheral.
func (s PinState) Rune() rune {
	switch {
	case s.Kind == Peripheral:
		return '-'
	case s.Kind == Output && s.High:
		return 'H'
	case s.Kind == Output:
		return 'L'
	case s.High:
		return 'h'
	default:
		return 'l'
	}
}

// Opts represents the options available for this display.
type Opts struct {
	// Ports to display; all of them when empty.
	Ports   []iopin.Port
	Palette *ansi256.Palette

	_ struct{}
}

// Dev is a one line pin state display.
type Dev struct {
	w       io.Writer
	ports   []iopin.Port
	palette ansi256.Palette
	color   bool

	buf bytes.Buffer
}

// New returns a Dev that displays at the console. Colors are only used when
// stdout is a terminal.
func New(opts *Opts) *Dev {
	fd := os.Stdout.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	return NewWriter(colorable.NewColorableStdout(), tty, opts)
}

// NewWriter returns a Dev that writes to w.
func NewWriter(w io.Writer, color bool, opts *Opts) *Dev {
	if opts == nil {
		opts = &Opts{}
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	ports := opts.Ports
	if len(ports) == 0 {
		ports = iopin.Ports[:]
	}
	return &Dev{w: w, ports: ports, palette: *p, color: color}
}

func (d *Dev) String() string {
	return "PortView"
}

// Halt implements conn.Resource.
//
// It ends the line and resets the terminal attributes.
func (d *Dev) Halt() error {
	s := "\n"
	if d.color {
		s += "\033[0m"
	}
	_, err := io.WriteString(d.w, s)
	return err
}

// Refresh redraws the line with the current pin states. Pins are shown from
// 0 to 7, a latched interrupt flag is marked with '*'.
func (d *Dev) Refresh() error {
	// This code is designed to minimize the amount of memory allocated per call.
	d.buf.Reset()
	_, _ = d.buf.WriteString("\r")
	if d.color {
		_, _ = d.buf.WriteString("\033[0m")
	}
	for _, p := range d.ports {
		_, _ = fmt.Fprintf(&d.buf, "%s ", p)
		flagged := false
		for _, s := range Read(p) {
			if d.color {
				_, _ = io.WriteString(&d.buf, d.palette.Block(s.Color()))
			} else {
				_, _ = d.buf.WriteRune(s.Rune())
			}
			flagged = flagged || s.Flag
		}
		if d.color {
			_, _ = d.buf.WriteString("\033[0m")
		}
		if flagged {
			_, _ = d.buf.WriteString("* ")
		} else {
			_, _ = d.buf.WriteString("  ")
		}
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ fmt.Stringer = &Dev{}
