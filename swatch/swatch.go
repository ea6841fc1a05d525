// seehuhn.de/go/contrast - readable foreground colors
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package swatch renders legibility sheets: sample text in a number of
// foreground colors on a common background.
package swatch

import (
	"errors"
	"image"
	"sync"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/contrast"
)

// Row is one line of a legibility sheet.
type Row struct {
	Label string
	Color contrast.RGB
}

// Options control the layout of a sheet.
// The zero value, or a nil pointer, selects the defaults.
type Options struct {
	// FontSize is the text size in pixels.  The default is 18.
	FontSize float64

	// Padding is the space around each line, in pixels.  The default is 8.
	Padding int

	// Scale enlarges the finished sheet by an integer factor, without
	// smoothing.  Values below 2 leave the image unchanged.
	Scale int
}

var regular = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// FamilyRows returns one row for each family, labeled by the family's
// display name and colored with the foreground color for bg.
func FamilyRows(bg contrast.RGB, families []contrast.Family) []Row {
	rows := make([]Row, len(families))
	for i, f := range families {
		rows[i] = Row{
			Label: f.DisplayName(),
			Color: contrast.Foreground(bg, f),
		}
	}
	return rows
}

// Render draws the rows onto an image filled with the background color bg.
func Render(bg contrast.RGB, rows []Row, opt *Options) (*image.RGBA, error) {
	if len(rows) == 0 {
		return nil, errors.New("swatch: no rows")
	}
	if opt == nil {
		opt = &Options{}
	}
	size := opt.FontSize
	if size <= 0 {
		size = 18
	}
	pad := opt.Padding
	if pad <= 0 {
		pad = 8
	}

	fnt, err := regular()
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	defer face.Close()

	m := face.Metrics()
	lineHeight := m.Height.Ceil() + pad
	textWidth := 0
	for _, row := range rows {
		textWidth = max(textWidth, font.MeasureString(face, row.Label).Ceil())
	}
	width := textWidth + 2*pad
	height := len(rows)*lineHeight + pad

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, xdraw.Src)

	d := &font.Drawer{Dst: img, Face: face}
	for i, row := range rows {
		d.Src = image.NewUniform(row.Color)
		d.Dot = fixed.P(pad, pad+i*lineHeight+m.Ascent.Ceil())
		d.DrawString(row.Label)
	}

	if opt.Scale < 2 {
		return img, nil
	}
	big := image.NewRGBA(image.Rect(0, 0, width*opt.Scale, height*opt.Scale))
	xdraw.NearestNeighbor.Scale(big, big.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return big, nil
}
