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
	"math"

	"seehuhn.de/go/contrast/cielab"
)

// If the farthest corner is closer to the background than this, both in
// lightness and in the a*b* plane, the result is moved further out.
const (
	lowContrastLightness = 10.0
	lowContrastChroma    = 60.0

	lightnessStretch = 4.0
	chromaStretch    = 1.5
)

// Foreground returns a color of family f which is readable on the given
// background.
//
// It panics if f is not a valid family.
func Foreground(background RGB, f Family) RGB {
	r := f.Region()
	return FromLab(r.foreground(background.Lab()))
}

// ForegroundLab is like [Foreground], but works directly with L*a*b* colors.
func ForegroundLab(background cielab.Lab, f Family) cielab.Lab {
	return f.Region().foreground(background)
}

func (r Region) foreground(bg cielab.Lab) cielab.Lab {
	corner, _ := r.Farthest(bg)

	ld := math.Abs(bg.L - corner.L)
	cd := cielab.ChromaDistance(bg, corner)
	if ld >= lowContrastLightness || cd >= lowContrastChroma {
		return corner
	}

	// This may leave the region, but keeps the text readable when the
	// background is close to the requested color.
	ab := bg.Chroma().Add(corner.Chroma().Sub(bg.Chroma()).Mul(chromaStretch))
	return cielab.Lab{
		L: bg.L + lightnessStretch*(corner.L-bg.L),
		A: ab.X,
		B: ab.Y,
	}
}
