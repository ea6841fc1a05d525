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

import (
	"fmt"

	"seehuhn.de/go/contrast/cielab"
)

// Region is an axis-aligned box in the CIE L*a*b* color space.
//
// All colors inside a region are recognized as members of the corresponding
// color family.  The boxes are not meant to cover all such colors.
type Region struct {
	LMin, LMax float64
	AMin, AMax float64
	BMin, BMax float64
}

// regions holds the box for each family, indexed by Family.
//
// The values are a matter of taste and have not been calibrated.
// Entries are only ever appended, see [Family].
var regions = [numFamilies]Region{
	Aqua:       {40, 60, -100, -80, -10, 20},
	Black:      {0, 30, 0, 0, 0, 0},
	Blue:       {25, 35, -100, 0, -100, -50},
	Brown:      {30, 60, 30, 50, 70, 100},
	Cyan:       {50, 65, -100, -30, -100, -50},
	DarkBlue:   {0, 20, -40, 50, -100, -60},
	DarkGreen:  {20, 35, -100, -70, 60, 100},
	DarkGrey:   {20, 40, 0, 0, 0, 0},
	DarkRed:    {10, 40, 90, 100, 70, 100},
	Green:      {15, 40, -100, -80, 80, 100},
	Grey:       {35, 60, 0, 0, 0, 0},
	LightBlue:  {40, 50, -100, 0, -100, -60},
	LightBrown: {60, 75, 30, 50, 80, 100},
	LightGreen: {80, 90, -100, -70, 70, 100},
	LightGrey:  {50, 80, 0, 0, 0, 0},
	LightRed:   {55, 65, 80, 90, 75, 100},
	Magenta:    {40, 55, 90, 100, -50, 0},
	Orange:     {65, 80, 20, 65, 90, 100},
	Purple:     {35, 45, 85, 100, -90, -80},
	Red:        {40, 50, 80, 100, 75, 100},
	Violet:     {70, 95, 90, 100, -100, 0},
	White:      {75, 100, 0, 0, 0, 0},
	Yellow:     {90, 100, 5, 15, 92.5, 105},
}

// Region returns the L*a*b* box of the family.
// It panics if f is not a valid family.
func (f Family) Region() Region {
	if !f.IsValid() {
		panic(fmt.Sprintf("contrast: invalid family %d", int(f)))
	}
	return regions[f]
}

// Corners returns the eight corners of the box.
//
// The corners are ordered by L first, then by a, then by b, each starting
// with the lower bound.
func (r Region) Corners() [8]cielab.Lab {
	var res [8]cielab.Lab
	i := 0
	for _, L := range [2]float64{r.LMin, r.LMax} {
		for _, a := range [2]float64{r.AMin, r.AMax} {
			for _, b := range [2]float64{r.BMin, r.BMax} {
				res[i] = cielab.Lab{L: L, A: a, B: b}
				i++
			}
		}
	}
	return res
}

// Contains reports whether c lies inside the closed box.
func (r Region) Contains(c cielab.Lab) bool {
	return c.L >= r.LMin && c.L <= r.LMax &&
		c.A >= r.AMin && c.A <= r.AMax &&
		c.B >= r.BMin && c.B <= r.BMax
}

// Farthest returns the corner of the box with the largest distance to bg,
// together with this distance.  If several corners have the same distance,
// the first one in the order of [Region.Corners] is returned.
func (r Region) Farthest(bg cielab.Lab) (cielab.Lab, float64) {
	corners := r.Corners()
	best := corners[0]
	bestDist := cielab.Distance(bg, best)
	for _, c := range corners[1:] {
		if d := cielab.Distance(bg, c); d > bestDist {
			best, bestDist = c, d
		}
	}
	return best, bestDist
}
