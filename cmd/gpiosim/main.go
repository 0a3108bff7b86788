// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !tinygo

// gpiosim runs a LaunchPad style blink and button firmware against the
// simulated MSP430G2553 pins and shows port 1 on the terminal.
//
// The red LED on P1.0 toggles every step. Pressing S2 on P1.3 latches its
// high-to-low interrupt flag; the loop then toggles the green LED on P1.6.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/GermanBionicSystems/msp430/iopin"
	"github.com/GermanBionicSystems/msp430/periphpin"
	"github.com/GermanBionicSystems/msp430/portview"
	"github.com/GermanBionicSystems/msp430/sim"
	"github.com/davecgh/go-spew/spew"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/pin"
	"periph.io/x/host/v3"
)

func mainImpl() error {
	steps := flag.Int("steps", 20, "number of steps to run")
	interval := flag.Duration("interval", 200*time.Millisecond, "delay between steps")
	press := flag.String("press", "4,11", "comma separated steps at which S2 is pressed")
	pngPath := flag.String("png", "", "write the final pin state to this PNG file")
	dump := flag.Bool("dump", false, "dump the registers when done")
	list := flag.Bool("list", false, "list the GPIO pins known to periph, host and simulated, and exit")
	verbose := flag.Bool("v", false, "verbose mode")
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}
	log.SetFlags(log.Lmicroseconds)
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}
	pressed, err := parseSteps(*press)
	if err != nil {
		return err
	}

	// The host pins are registered in gpioreg next to the simulated ones.
	state, err := host.Init()
	if err != nil {
		return err
	}
	log.Printf("host drivers loaded: %d", len(state.Loaded))

	s, err := sim.New(nil)
	if err != nil {
		return err
	}
	defer s.Close()
	if *list {
		pins, err := periphpin.Register()
		if err != nil {
			return err
		}
		defer periphpin.Unregister(pins)
		return listPins(os.Stdout)
	}

	var pins iopin.Registry
	fw, err := newFirmware(&pins)
	if err != nil {
		return err
	}

	view := portview.New(&portview.Opts{Ports: []iopin.Port{iopin.Port1}})
	defer view.Halt()
	for i := 0; i < *steps; i++ {
		if err := pushButton(s, pressed[i]); err != nil {
			return err
		}
		if fw.step() {
			log.Printf("step %d: S2 pressed, %s is %s", i, fw.green, fw.green.Level())
		}
		if err := view.Refresh(); err != nil {
			return err
		}
		time.Sleep(*interval)
	}
	if *pngPath != "" {
		if err := portview.SavePNG(*pngPath, nil); err != nil {
			return err
		}
	}
	if *dump {
		_ = view.Halt()
		spew.Fdump(os.Stdout, s.Snapshot())
	}
	return nil
}

// pushButton holds S2 down or releases it. The switch shorts P1.3 to ground.
func pushButton(s *sim.Sim, down bool) error {
	if down {
		return s.Drive(uint8(iopin.Port1), buttonPin, gpio.Low)
	}
	return s.Release(uint8(iopin.Port1), buttonPin)
}

// listPins writes the name and function of every pin in gpioreg.
func listPins(w io.Writer) error {
	for _, p := range gpioreg.All() {
		fn := "?"
		if f, ok := p.(pin.PinFunc); ok {
			fn = string(f.Func())
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", p.Name(), fn); err != nil {
			return err
		}
	}
	return nil
}

// parseSteps parses a comma separated list of step numbers.
func parseSteps(s string) (map[int]bool, error) {
	out := map[int]bool{}
	if s == "" {
		return out, nil
	}
	for _, f := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid step %q: %w", f, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("invalid step %d", n)
		}
		out[n] = true
	}
	return out, nil
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "gpiosim: %s.\n", err)
		os.Exit(1)
	}
}
