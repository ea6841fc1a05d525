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

// Package iccprofile checks display profiles before they are used together
// with sRGB based color computations.
package iccprofile

import (
	"errors"
	"fmt"
	"os"

	"seehuhn.de/go/icc"
)

// ErrNotRGB is returned for profiles which do not describe an RGB device.
var ErrNotRGB = errors.New("not an RGB profile")

// Check decodes an ICC profile and verifies that it describes a
// three-channel RGB device.
func Check(data []byte) error {
	if len(data) == 0 {
		return errors.New("ICC profile: no data")
	}
	p, err := icc.Decode(data)
	if err != nil {
		return fmt.Errorf("ICC profile: %w", err)
	}
	if p.ColorSpace != icc.RGBSpace || p.ColorSpace.NumComponents() != 3 {
		return fmt.Errorf("ICC profile: %w (color space %v)", ErrNotRGB, p.ColorSpace)
	}
	return nil
}

// CheckFile reads the named file and calls [Check] on its contents.
func CheckFile(fname string) error {
	data, err := os.ReadFile(fname)
	if err != nil {
		return err
	}
	if err := Check(data); err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	return nil
}
