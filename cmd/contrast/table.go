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

package main

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"seehuhn.de/go/contrast"
	"seehuhn.de/go/contrast/cielab"
	"seehuhn.de/go/contrast/internal/termcolor"
)

// table writes one line per entry, with the columns aligned.
type table struct {
	bg      contrast.RGB
	colors  bool
	profile termcolor.Profile
}

const sampleText = " Sample "

func (t *table) write(w io.Writer, entries []entry) {
	nameWidth := runewidth.StringWidth("name")
	for _, e := range entries {
		nameWidth = max(nameWidth, runewidth.StringWidth(e.name))
	}

	bgLab := t.bg.Lab()
	bg8 := rgb8(t.bg)

	fmt.Fprintf(w, "%s  %-7s  %6s %7s %7s  %6s  %5s",
		runewidth.FillRight("name", nameWidth), "color", "L", "a", "b", "ΔE", "ratio")
	if t.colors {
		fmt.Fprint(w, "  sample")
	}
	fmt.Fprintln(w)

	for _, e := range entries {
		fg := contrast.Foreground(t.bg, e.family)
		lab := fg.Lab()
		fmt.Fprintf(w, "%s  %-7s  %6.1f %7.1f %7.1f  %6.1f  %5.2f",
			runewidth.FillRight(e.name, nameWidth),
			fg.Hex(),
			lab.L, lab.A, lab.B,
			cielab.Distance(bgLab, lab),
			contrast.Ratio(fg, t.bg))
		if t.colors {
			fmt.Fprint(w, "  ", termcolor.Swatch(t.profile, rgb8(fg), bg8, sampleText))
		}
		fmt.Fprintln(w)
	}
}

func rgb8(c contrast.RGB) [3]uint8 {
	r, g, b := c.RGB8()
	return [3]uint8{r, g, b}
}
