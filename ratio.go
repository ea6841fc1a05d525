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

package contrast

import "math"

// Ratio returns the WCAG 2 contrast ratio between two colors.
//
// The result lies between 1 (no contrast) and 21 (black on white), and does
// not depend on the order of the arguments.  [Foreground] does not use this
// value; it is provided to judge the result.
func Ratio(fg, bg RGB) float64 {
	l1 := luminance(fg)
	l2 := luminance(bg)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

func luminance(c RGB) float64 {
	r := linear(c.R)
	g := linear(c.G)
	b := linear(c.B)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func linear(v uint16) float64 {
	x := float64(v) / 0xFFFF
	if x <= 0.04045 {
		return x / 12.92
	}
	return math.Pow((x+0.055)/1.055, 2.4)
}
