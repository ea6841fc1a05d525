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

package cielab

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestRoundTrip(t *testing.T) {
	check := func(r, g, b uint16) {
		t.Helper()
		r2, g2, b2 := FromSRGB16(r, g, b).SRGB16()
		if absDiff(r, r2) > 1 || absDiff(g, g2) > 1 || absDiff(b, b2) > 1 {
			t.Errorf("round trip (%d, %d, %d) -> (%d, %d, %d)", r, g, b, r2, g2, b2)
		}
	}

	for r := 0; r <= 0xFFFF; r += 0x1111 {
		for g := 0; g <= 0xFFFF; g += 0x1111 {
			for b := 0; b <= 0xFFFF; b += 0x1111 {
				check(uint16(r), uint16(g), uint16(b))
			}
		}
	}

	rng := rand.New(rand.NewPCG(1, 2))
	for range 20000 {
		check(uint16(rng.UintN(0x10000)), uint16(rng.UintN(0x10000)), uint16(rng.UintN(0x10000)))
	}
}

func TestGammaEdges(t *testing.T) {
	threshold := uint16(math.Round(0.04045 * maxChannel))
	values := []uint16{0, 1, threshold - 1, threshold, threshold + 1, maxChannel - 1, maxChannel}
	for _, v := range values {
		for _, c := range []Lab{
			FromSRGB16(v, v, v),
			FromSRGB16(v, 0, 0),
			FromSRGB16(0, v, 0),
			FromSRGB16(0, 0, v),
		} {
			for _, x := range []float64{c.L, c.A, c.B} {
				if math.IsNaN(x) || math.IsInf(x, 0) {
					t.Errorf("value %d: got %v", v, c)
				}
			}
		}
	}
}

func TestKnownValues(t *testing.T) {
	cases := []struct {
		r, g, b uint16
		want    Lab
	}{
		{0, 0, 0, Lab{0, 0, 0}},
		{maxChannel, maxChannel, maxChannel, Lab{100.5051, -0.0056, -0.0073}},
		{0x8000, 0x8000, 0x8000, Lab{53.6919, -0.0034, -0.0044}},
	}
	approx := cmpopts.EquateApprox(0, 1e-3)
	for _, c := range cases {
		got := FromSRGB16(c.r, c.g, c.b)
		if d := cmp.Diff(c.want, got, approx); d != "" {
			t.Errorf("FromSRGB16(%d, %d, %d) (-want +got):\n%s", c.r, c.g, c.b, d)
		}
	}
}

func TestSRGB16Clamp(t *testing.T) {
	cases := []struct {
		in   Lab
		want [3]uint16
	}{
		{Lab{50, 100, 100}, [3]uint16{maxChannel, 0, 0}},
		{Lab{-50, 0, 0}, [3]uint16{0, 0, 0}},
		{Lab{200, 0, 0}, [3]uint16{maxChannel, maxChannel, maxChannel}},
	}
	for _, c := range cases {
		r, g, b := c.in.SRGB16()
		got := [3]uint16{r, g, b}
		if got != c.want {
			t.Errorf("%v.SRGB16() = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestDistance(t *testing.T) {
	p := Lab{10, 3, 4}
	q := Lab{10, 0, 0}
	if d := Distance(p, q); math.Abs(d-5) > 1e-12 {
		t.Errorf("Distance = %g, want 5", d)
	}
	if d := Distance(q, p); math.Abs(d-5) > 1e-12 {
		t.Errorf("Distance is not symmetric: %g", d)
	}

	r := Lab{70, 3, 4}
	if d := ChromaDistance(r, q); math.Abs(d-5) > 1e-12 {
		t.Errorf("ChromaDistance = %g, want 5", d)
	}
	if d := Distance(r, r); d != 0 {
		t.Errorf("Distance(r, r) = %g", d)
	}
}

func absDiff(a, b uint16) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}
