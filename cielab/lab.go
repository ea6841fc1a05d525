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

// Package cielab converts 16-bit sRGB colors to and from the CIE 1976
// L*a*b* color space.
//
// The conversion uses a fixed reference white point close to D65, see
// [WhitePoint].  Distances are measured with the CIE76 formula, i.e. as the
// Euclidean distance in L*a*b* space.
package cielab

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Lab is a color in the CIE 1976 L*a*b* color space.
//
// L is the lightness, nominally in the range [0, 100].  A is the green-red
// axis and B is the blue-yellow axis.
type Lab struct {
	L, A, B float64
}

// WhitePoint is the reference white used for all conversions, given in CIE
// 1931 XYZ coordinates.
var WhitePoint = [3]float64{0.93819, 0.98705, 1.07475}

// srgbToXYZ maps linear sRGB to CIE XYZ.
var srgbToXYZ = [3][3]float64{
	{0.412424, 0.357579, 0.180464},
	{0.212656, 0.715158, 0.072186},
	{0.019332, 0.119193, 0.950444},
}

// xyzToSRGB is the inverse of srgbToXYZ.
var xyzToSRGB = [3][3]float64{
	{3.240707852, -1.537258986, -0.4985696418},
	{-0.969257341, 1.875995284, 0.04155474829},
	{0.05563644575, -0.203996464, 1.057069447},
}

const maxChannel = 65535

// FromSRGB16 converts a 16-bit sRGB color to L*a*b*.
func FromSRGB16(r, g, b uint16) Lab {
	lr := srgbDecode(float64(r) / maxChannel)
	lg := srgbDecode(float64(g) / maxChannel)
	lb := srgbDecode(float64(b) / maxChannel)

	m := &srgbToXYZ
	x := m[0][0]*lr + m[0][1]*lg + m[0][2]*lb
	y := m[1][0]*lr + m[1][1]*lg + m[1][2]*lb
	z := m[2][0]*lr + m[2][1]*lg + m[2][2]*lb

	fx := labF(x / WhitePoint[0])
	fy := labF(y / WhitePoint[1])
	fz := labF(z / WhitePoint[2])

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// SRGB16 converts c to 16-bit sRGB.
// Colors outside the sRGB gamut are clamped channel by channel.
func (c Lab) SRGB16() (r, g, b uint16) {
	fy := (c.L + 16) / 116
	fx := fy + c.A/500
	fz := fy - c.B/200

	x := labFInv(fx) * WhitePoint[0]
	y := labFInv(fy) * WhitePoint[1]
	z := labFInv(fz) * WhitePoint[2]

	m := &xyzToSRGB
	r = toChannel(m[0][0]*x + m[0][1]*y + m[0][2]*z)
	g = toChannel(m[1][0]*x + m[1][1]*y + m[1][2]*z)
	b = toChannel(m[2][0]*x + m[2][1]*y + m[2][2]*z)
	return r, g, b
}

// Distance returns the CIE76 color difference between p and q.
func Distance(p, q Lab) float64 {
	dL := p.L - q.L
	da := p.A - q.A
	db := p.B - q.B
	return math.Sqrt(dL*dL + da*da + db*db)
}

// ChromaDistance returns the distance between p and q in the a*b* plane,
// ignoring lightness.
func ChromaDistance(p, q Lab) float64 {
	return p.Chroma().Sub(q.Chroma()).Length()
}

// Chroma returns the a*b* coordinates of c as a vector.
func (c Lab) Chroma() vec.Vec2 {
	return vec.Vec2{X: c.A, Y: c.B}
}

// srgbDecode removes the sRGB transfer curve.
func srgbDecode(v float64) float64 {
	if v > 0.04045 {
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return v / 12.92
}

// srgbEncode applies the sRGB transfer curve.
func srgbEncode(v float64) float64 {
	if v > 0.00304 {
		return 1.055*math.Pow(v, 1/2.4) - 0.055
	}
	return 12.92 * v
}

func toChannel(linear float64) uint16 {
	v := math.Round(srgbEncode(linear) * maxChannel)
	switch {
	case v <= 0 || math.IsNaN(v):
		return 0
	case v >= maxChannel:
		return maxChannel
	}
	return uint16(v)
}

func labF(t float64) float64 {
	if t > 0.008856 {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116.0
}

func labFInv(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta {
		return t * t * t
	}
	return (t - 16.0/116.0) * 3 * delta * delta
}
