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

// Package contrast computes foreground colors which are readable on a given
// background.
//
// Each foreground color is requested by its color family, for example
// [Red] or [LightBlue].  A family is represented by a box in the CIE
// L*a*b* color space (see [Region]).  [Foreground] picks the corner of this
// box which is farthest from the background.  If the background already lies
// close to the chosen corner, the result is pushed further away from the
// background, possibly leaving the box:
//
//	bg := contrast.RGB{R: 0xffff, G: 0xffff, B: 0xffff}
//	fg := contrast.Foreground(bg, contrast.Blue)
//
// All functions in this package are pure and can be used concurrently.
//
// The numeric values of the [Family] constants are stable.  New families
// are only ever appended.
package contrast
