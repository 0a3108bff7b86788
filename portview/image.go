// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package portview

import (
	"image"
	"strconv"

	"github.com/GermanBionicSystems/msp430/iopin"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

// Cell is the size in pixels of one pin in the image.
const Cell = 32

const labelWidth = 48

// Render draws the pins of ports, one row per port, pin 0 on the left.
// Armed pins are outlined in white, latched flags in yellow.
func Render(ports []iopin.Port) (image.Image, error) {
	if len(ports) == 0 {
		ports = iopin.Ports[:]
	}
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	w := labelWidth + iopin.NumPins*Cell
	h := (len(ports) + 1) * Cell
	dc := gg.NewContext(w, h)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: Cell / 2}))

	dc.SetRGB(0.8, 0.8, 0.8)
	for i := 0; i < iopin.NumPins; i++ {
		x := float64(labelWidth + i*Cell + Cell/2)
		dc.DrawStringAnchored(strconv.Itoa(i), x, Cell/2, 0.5, 0.5)
	}
	for row, p := range ports {
		y := float64((row + 1) * Cell)
		dc.SetRGB(0.8, 0.8, 0.8)
		dc.DrawStringAnchored(p.String(), labelWidth/2, y+Cell/2, 0.5, 0.5)
		for i, s := range Read(p) {
			x := float64(labelWidth + i*Cell)
			dc.DrawRectangle(x+2, y+2, Cell-4, Cell-4)
			dc.SetColor(s.Color())
			dc.Fill()
			switch {
			case s.Flag:
				dc.SetRGB(1, 0.9, 0)
			case s.Armed:
				dc.SetRGB(1, 1, 1)
			default:
				continue
			}
			dc.SetLineWidth(2)
			dc.DrawRectangle(x+2, y+2, Cell-4, Cell-4)
			dc.Stroke()
		}
	}
	return dc.Image(), nil
}

// SavePNG renders the ports and writes the image to path.
func SavePNG(path string, ports []iopin.Port) error {
	img, err := Render(ports)
	if err != nil {
		return err
	}
	return gg.SavePNG(path, img)
}
