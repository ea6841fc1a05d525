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
	"image/color"
	"strconv"
	"strings"

	"seehuhn.de/go/contrast/cielab"
)

// RGB is an sRGB color with 16 bits per channel.
//
// RGB implements the [color.Color] interface.  The color is always opaque.
type RGB struct {
	R, G, B uint16
}

// DefaultBackground is used when the actual background color is not known.
var DefaultBackground = RGB{R: 0xFFFF, G: 0xFFFF, B: 0xFFFF}

// Model converts arbitrary colors to [RGB].
var Model color.Model = color.ModelFunc(rgbModel)

func rgbModel(c color.Color) color.Color {
	if _, ok := c.(RGB); ok {
		return c
	}
	return FromColor(c)
}

// RGBA implements the [color.Color] interface.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return uint32(c.R), uint32(c.G), uint32(c.B), 0xFFFF
}

// FromColor converts c to an RGB color.
//
// Translucent colors are un-premultiplied.  Fully transparent colors map to
// black.
func FromColor(c color.Color) RGB {
	r, g, b, a := c.RGBA()
	switch a {
	case 0:
		return RGB{}
	case 0xFFFF:
		// already opaque
	default:
		r = r * 0xFFFF / a
		g = g * 0xFFFF / a
		b = b * 0xFFFF / a
	}
	return RGB{R: uint16(r), G: uint16(g), B: uint16(b)}
}

// FromLab converts an L*a*b* color to RGB, clamping out-of-gamut colors.
func FromLab(c cielab.Lab) RGB {
	r, g, b := c.SRGB16()
	return RGB{R: r, G: g, B: b}
}

// Lab returns the L*a*b* representation of c.
func (c RGB) Lab() cielab.Lab {
	return cielab.FromSRGB16(c.R, c.G, c.B)
}

// String returns the color in the form "#rrrrggggbbbb".
func (c RGB) String() string {
	return fmt.Sprintf("#%04x%04x%04x", c.R, c.G, c.B)
}

// Hex returns the color, rounded to 8 bits per channel, in the form
// "#rrggbb".
func (c RGB) Hex() string {
	r, g, b := c.RGB8()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// RGB8 returns the channels rounded to 8 bits.
func (c RGB) RGB8() (r, g, b uint8) {
	return to8(c.R), to8(c.G), to8(c.B)
}

func to8(v uint16) uint8 {
	return uint8((uint32(v)*0xFF + 0x7FFF) / 0xFFFF)
}

// ParseRGB parses a color in one of the forms "#rgb", "#rrggbb",
// "#rrrgggbbb" or "#rrrrggggbbbb".  The leading "#" is optional.
func ParseRGB(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	n := len(hex) / 3
	if n < 1 || n > 4 || len(hex) != 3*n {
		return RGB{}, fmt.Errorf("ParseRGB: invalid color %q", s)
	}

	var ch [3]uint16
	scale := uint64(1)<<(4*n) - 1
	for i := range ch {
		v, err := strconv.ParseUint(hex[i*n:(i+1)*n], 16, 16)
		if err != nil {
			return RGB{}, fmt.Errorf("ParseRGB: invalid color %q", s)
		}
		ch[i] = uint16((v*0xFFFF + scale/2) / scale)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// MarshalText implements [encoding.TextMarshaler].
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *RGB) UnmarshalText(text []byte) error {
	v, err := ParseRGB(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
