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

package termcolor

import (
	"fmt"
	"strings"
)

// Swatch returns text drawn in the foreground color fg on the background
// color bg.  The colors are given as 8-bit sRGB triples.
//
// The basic 8-color profile cannot show arbitrary colors, and the text is
// returned unchanged.
func Swatch(p Profile, fg, bg [3]uint8, text string) string {
	var codes []string
	switch p {
	case ProfileTrueColor:
		codes = []string{
			fmt.Sprintf("38;2;%d;%d;%d", fg[0], fg[1], fg[2]),
			fmt.Sprintf("48;2;%d;%d;%d", bg[0], bg[1], bg[2]),
		}
	case ProfileANSI256:
		codes = []string{
			fmt.Sprintf("38;5;%d", ToANSI256(fg)),
			fmt.Sprintf("48;5;%d", ToANSI256(bg)),
		}
	default:
		return text
	}
	return "\x1b[" + strings.Join(codes, ";") + "m" + text + "\x1b[0m"
}

// ToANSI256 maps a color to the closest entry of the xterm 256-color table,
// using the grey ramp for neutral colors and the 6x6x6 cube otherwise.
func ToANSI256(c [3]uint8) int {
	r, g, b := c[0], c[1], c[2]
	if r == g && g == b {
		switch {
		case r < 8:
			return 16
		case r > 248:
			return 231
		}
		return 232 + (int(r)-8)*24/247
	}
	return 16 + 36*cubeIndex(r) + 6*cubeIndex(g) + cubeIndex(b)
}

func cubeIndex(v uint8) int {
	return (int(v)*5 + 127) / 255
}
